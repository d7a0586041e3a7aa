package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write encodes rows as UTF-8 CSV.
func Write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// FileMode is the permission of a newly created export.
const FileMode os.FileMode = 0o644

// WriteFile writes rows to path. The file is written to a temporary sibling
// and renamed into place, so a failed write never leaves a partial export.
// An existing file keeps its permission bits, a new one gets FileMode.
func WriteFile(path string, rows [][]string) (err error) {
	mode := FileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, rows); err != nil {
		return err
	}
	// CreateTemp opens with 0600.
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod csv: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename csv: %w", err)
	}
	return nil
}
