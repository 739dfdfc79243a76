// Package fileio holds the file helpers shared by the pack and unpack
// paths. Every operation names the role of the file it touches
// ("segment", "ticket", "manifest", ...) so a failure anywhere in a
// multi-file operation reads back as a usable message.
package fileio

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ReadFile reads the whole file at path.
func ReadFile(role, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s %q: %w", role, path, err)
	}
	return data, nil
}

// Create opens a new file for writing. Unless overwrite is set, an
// existing file is refused; errors.Is(err, fs.ErrExist) identifies that
// case for callers that want to prompt or retry.
func Create(role, path string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s %q: %w", role, path, err)
	}
	return f, nil
}

// SaveFile writes data to a new file at path, honouring the overwrite
// semantics of Create.
func SaveFile(role, path string, data []byte, overwrite bool) error {
	f, err := Create(role, path, overwrite)
	if err != nil {
		return err
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write %s %q: %w", role, path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("write %s %q: %w", role, path, cerr)
	}
	return nil
}

// SaveFileAtomic writes data next to path under a unique temporary name
// and renames it into place, so a crash mid-write never leaves a
// half-written file at path. The overwrite check runs up front; the
// rename itself always replaces.
func SaveFileAtomic(role, path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Lstat(path); err == nil {
			return fmt.Errorf("create %s %q: %w", role, path, fs.ErrExist)
		}
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := SaveFile(role, tmp, data, false); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s %q: %w", role, path, err)
	}
	return nil
}

// QualifyPath resolves path against dir: absolute paths and an empty
// dir pass through unchanged.
func QualifyPath(path, dir string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
