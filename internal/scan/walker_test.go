package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/baksweep/internal/exclude"
)

// touch creates a file with the given content, making parent
// directories as needed.
func touch(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func paths(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Path
	}
	return out
}

func TestWalkPairsBackupsWithOriginals(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "drawing.dwg"), "dwg")
	touch(t, filepath.Join(root, "drawing.bak"), "bak")
	touch(t, filepath.Join(root, "model.skp"), "skp")
	touch(t, filepath.Join(root, "model.skb"), "skb")
	touch(t, filepath.Join(root, "orphan.bak"), "no original")
	touch(t, filepath.Join(root, "notes.txt"), "ignored")

	got := NewWalker(nil, nil).Walk(root)

	want := map[string]string{
		filepath.Join(root, "drawing.bak"): filepath.Join(root, "drawing.dwg"),
		filepath.Join(root, "model.skb"):   filepath.Join(root, "model.skp"),
	}
	if len(got) != len(want) {
		t.Fatalf("Walk found %d candidates %v, want %d", len(got), paths(got), len(want))
	}
	for _, c := range got {
		orig, ok := want[c.Path]
		if !ok {
			t.Errorf("unexpected candidate %q", c.Path)
			continue
		}
		if c.Original != orig {
			t.Errorf("candidate %q original = %q, want %q", c.Path, c.Original, orig)
		}
	}
}

func TestWalkRequiresMatchingOriginal(t *testing.T) {
	root := t.TempDir()
	// The original must carry the paired extension, not just share the stem.
	touch(t, filepath.Join(root, "plan.bak"), "bak")
	touch(t, filepath.Join(root, "plan.skp"), "wrong pair")
	touch(t, filepath.Join(root, "plan.txt"), "wrong pair")

	if got := NewWalker(nil, nil).Walk(root); len(got) != 0 {
		t.Errorf("Walk found %v, want none", paths(got))
	}
}

func TestWalkCaseInsensitiveSuffix(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "PLAN.BAK"), "bak")
	touch(t, filepath.Join(root, "PLAN.dwg"), "dwg")

	got := NewWalker(nil, nil).Walk(root)
	if len(got) != 1 {
		t.Fatalf("Walk found %d candidates, want 1", len(got))
	}
	if got[0].Path != filepath.Join(root, "PLAN.BAK") {
		t.Errorf("candidate = %q, want PLAN.BAK", got[0].Path)
	}
}

func TestWalkRecordsSize(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.dwg"), "x")
	touch(t, filepath.Join(root, "a.bak"), "12345")

	got := NewWalker(nil, nil).Walk(root)
	if len(got) != 1 {
		t.Fatalf("Walk found %d candidates, want 1", len(got))
	}
	if got[0].Size != 5 {
		t.Errorf("Size = %d, want 5", got[0].Size)
	}
}

func TestWalkPrunesExcludedSubtrees(t *testing.T) {
	root := t.TempDir()
	excluded := filepath.Join(root, "excluded")
	touch(t, filepath.Join(excluded, "deep", "x.bak"), "bak")
	touch(t, filepath.Join(excluded, "deep", "x.dwg"), "dwg")
	touch(t, filepath.Join(root, "kept", "y.bak"), "bak")
	touch(t, filepath.Join(root, "kept", "y.dwg"), "dwg")

	w := NewWalker(exclude.NewSet([]string{excluded}, false), nil)
	var entered []string
	w.OnDir = func(path string) { entered = append(entered, path) }

	got := w.Walk(root)
	if len(got) != 1 || got[0].Path != filepath.Join(root, "kept", "y.bak") {
		t.Fatalf("Walk found %v, want only kept/y.bak", paths(got))
	}

	// Pruning happens during the walk: the excluded directory and
	// everything below it must never be entered.
	for _, dir := range entered {
		if dir == excluded || strings.HasPrefix(dir, excluded+string(filepath.Separator)) {
			t.Errorf("walk entered excluded directory %q", dir)
		}
	}
}

func TestWalkMissingRootIsIsolated(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "vanished")
	good := t.TempDir()
	touch(t, filepath.Join(good, "b.bak"), "bak")
	touch(t, filepath.Join(good, "b.dwg"), "dwg")

	w := NewWalker(nil, nil)
	if got := w.Walk(missing); len(got) != 0 {
		t.Fatalf("Walk(missing) found %v, want none", paths(got))
	}
	if warns := w.Warnings(); len(warns) != 1 {
		t.Fatalf("Warnings() = %v, want one entry", warns)
	}

	// A failed root must not poison later walks.
	if got := w.Walk(good); len(got) != 1 {
		t.Errorf("Walk(good) found %d candidates, want 1", len(got))
	}
}

func TestWalkUnreadableSubtreeIsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits do not restrict directory reads on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	touch(t, filepath.Join(locked, "z.bak"), "bak")
	touch(t, filepath.Join(locked, "z.dwg"), "dwg")
	touch(t, filepath.Join(root, "open", "a.bak"), "bak")
	touch(t, filepath.Join(root, "open", "a.dwg"), "dwg")

	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	w := NewWalker(nil, nil)
	got := w.Walk(root)
	if len(got) != 1 || got[0].Path != filepath.Join(root, "open", "a.bak") {
		t.Fatalf("Walk found %v, want only open/a.bak", paths(got))
	}
	if len(w.Warnings()) == 0 {
		t.Error("expected a warning for the unreadable directory")
	}
}

func TestWalkDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.bak"), "bak")
	touch(t, filepath.Join(root, "a.dwg"), "dwg")
	touch(t, filepath.Join(root, "sub", "b.bak"), "bak")
	touch(t, filepath.Join(root, "sub", "b.dwg"), "dwg")
	touch(t, filepath.Join(root, "z.bak"), "bak")
	touch(t, filepath.Join(root, "z.dwg"), "dwg")

	got := paths(NewWalker(nil, nil).Walk(root))
	want := []string{
		filepath.Join(root, "a.bak"),
		filepath.Join(root, "sub", "b.bak"),
		filepath.Join(root, "z.bak"),
	}
	if len(got) != len(want) {
		t.Fatalf("Walk found %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkStop(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.bak"), "bak")
	touch(t, filepath.Join(root, "a.dwg"), "dwg")

	stop := make(chan struct{})
	close(stop)

	w := NewWalker(nil, nil)
	w.Stop = stop
	if got := w.Walk(root); len(got) != 0 {
		t.Errorf("Walk with closed Stop found %v, want none", paths(got))
	}
}

func TestWalkStreamsCandidates(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.bak"), "bak")
	touch(t, filepath.Join(root, "a.dwg"), "dwg")
	touch(t, filepath.Join(root, "b.skb"), "skb")
	touch(t, filepath.Join(root, "b.skp"), "skp")

	w := NewWalker(nil, nil)
	var streamed []Candidate
	w.OnFound = func(c Candidate) { streamed = append(streamed, c) }

	got := w.Walk(root)
	if len(streamed) != len(got) {
		t.Fatalf("OnFound saw %d candidates, Walk returned %d", len(streamed), len(got))
	}
	for i := range got {
		if streamed[i] != got[i] {
			t.Errorf("streamed[%d] = %+v, want %+v", i, streamed[i], got[i])
		}
	}
	if w.Visited() == 0 {
		t.Error("Visited() = 0, want at least the root directory")
	}
}
