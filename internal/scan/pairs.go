package scan

import "strings"

// Pair maps a backup-file suffix to the original-file suffix it shadows.
type Pair struct {
	// BackupExt is the backup suffix, lowercased, with leading dot.
	BackupExt string

	// OriginalExt is the suffix of the live file the backup shadows.
	OriginalExt string
}

// DefaultPairs is the ordered table of recognized backup kinds: AutoCAD
// .bak files backing .dwg drawings and SketchUp .skb files backing .skp
// models. Supporting another tool means adding one row.
var DefaultPairs = []Pair{
	{BackupExt: ".bak", OriginalExt: ".dwg"},
	{BackupExt: ".skb", OriginalExt: ".skp"},
}

// Match tests a file name against the pair table. The suffix comparison is
// case-insensitive; the first matching row wins.
func Match(pairs []Pair, name string) (Pair, bool) {
	lower := strings.ToLower(name)
	for _, p := range pairs {
		if strings.HasSuffix(lower, p.BackupExt) {
			return p, true
		}
	}
	return Pair{}, false
}

// OriginalPath derives the original file's path from a backup path by
// substituting the suffix. The stem keeps its original casing.
func (p Pair) OriginalPath(backupPath string) string {
	return backupPath[:len(backupPath)-len(p.BackupExt)] + p.OriginalExt
}
