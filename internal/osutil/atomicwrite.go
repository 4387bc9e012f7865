// Package osutil holds small filesystem helpers shared by the CLI
// layer. Nothing in here is used by the validation core, which does no
// I/O.
package osutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to filename in a crash-safe way: the
// content goes to a temporary file in the same directory which is then
// renamed over the target, so readers observe either the old or the
// new content, never a partial write.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	f, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filename)
}
