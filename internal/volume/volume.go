package volume

import (
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// Volume is a writable mount point usable as a scan root.
type Volume struct {
	// Root is the mount point path (e.g., `C:\` or `/mnt/data`).
	Root string

	// Device is the underlying device as reported by the environment.
	Device string

	// Fstype is the filesystem name (NTFS, ext4, ...).
	Fstype string

	// Label is the volume label. Best effort, Windows only, may be empty.
	Label string
}

// Describe renders the volume for display: "C:\ (Data, NTFS)". Label
// and filesystem are omitted when unknown.
func (v Volume) Describe() string {
	var details []string
	if v.Label != "" {
		details = append(details, v.Label)
	}
	if v.Fstype != "" {
		details = append(details, v.Fstype)
	}
	if len(details) == 0 {
		return v.Root
	}
	return fmt.Sprintf("%s (%s)", v.Root, strings.Join(details, ", "))
}

// Usage holds capacity figures for one volume.
type Usage struct {
	Total       uint64
	Free        uint64
	UsedPercent float64
}

// Enumerate returns all writable, accessible volumes in the order the
// environment reports them. A non-nil error means the enumeration call
// itself failed and no volume list is usable.
func Enumerate() ([]Volume, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("enumerate partitions: %w", err)
	}

	vols := filterWritable(parts, func(path string) bool {
		info, statErr := os.Stat(path)
		return statErr == nil && info.IsDir()
	})
	attachLabels(vols)

	return vols, nil
}

// GetUsage reports capacity for one volume root.
func GetUsage(root string) (Usage, error) {
	u, err := disk.Usage(root)
	if err != nil {
		return Usage{}, fmt.Errorf("usage of %s: %w", root, err)
	}
	return Usage{Total: u.Total, Free: u.Free, UsedPercent: u.UsedPercent}, nil
}

// filterWritable keeps partitions that are mounted read-write and whose
// mount point resolves to an accessible directory. Order is preserved.
func filterWritable(parts []disk.PartitionStat, isDir func(string) bool) []Volume {
	var vols []Volume
	for _, p := range parts {
		if !hasOpt(p.Opts, "rw") {
			continue
		}
		if !isDir(p.Mountpoint) {
			continue
		}
		vols = append(vols, Volume{
			Root:   p.Mountpoint,
			Device: p.Device,
			Fstype: p.Fstype,
		})
	}
	return vols
}

func hasOpt(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}
