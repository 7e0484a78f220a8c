//go:build !windows

package trash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// xdgTrash implements the freedesktop.org trash layout: moved files
// land under <root>/files and each gets a <root>/info/<name>.trashinfo
// record so desktop environments can restore them.
type xdgTrash struct {
	root string // trash directory; resolved on first use
	now  func() time.Time
}

// New returns a Mover backed by the user's XDG trash directory,
// $XDG_DATA_HOME/Trash or ~/.local/share/Trash.
func New() Mover {
	return &xdgTrash{now: time.Now}
}

func (x *xdgTrash) Move(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}

	root := x.rootDir()
	filesDir := filepath.Join(root, "files")
	infoDir := filepath.Join(root, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("prepare trash: %w", err)
		}
	}

	// The .trashinfo file doubles as a name reservation, so write it
	// before moving anything.
	name, info, err := reserve(infoDir, filepath.Base(abs))
	if err != nil {
		return fmt.Errorf("reserve trash slot: %w", err)
	}
	record := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		abs, x.now().Format("2006-01-02T15:04:05"))
	if _, err := info.WriteString(record); err != nil {
		info.Close()
		os.Remove(info.Name())
		return err
	}
	if err := info.Close(); err != nil {
		os.Remove(info.Name())
		return err
	}

	if err := moveFile(abs, filepath.Join(filesDir, name)); err != nil {
		os.Remove(info.Name())
		return err
	}
	return nil
}

func (x *xdgTrash) rootDir() string {
	if x.root != "" {
		return x.root
	}
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		x.root = filepath.Join(data, "Trash")
		return x.root
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	x.root = filepath.Join(home, ".local", "share", "Trash")
	return x.root
}

// reserve creates <base>.trashinfo with O_EXCL, appending a counter to
// the name until an unused slot is found.
func reserve(infoDir, base string) (string, *os.File, error) {
	name := base
	for i := 1; ; i++ {
		f, err := os.OpenFile(filepath.Join(infoDir, name+".trashinfo"),
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			return name, f, nil
		}
		if !os.IsExist(err) {
			return "", nil, err
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}

// moveFile renames src into the trash, falling back to copy-and-remove
// when the trash lives on a different filesystem.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	st, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return os.Remove(src)
}
