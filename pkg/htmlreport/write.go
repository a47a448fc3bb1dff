package htmlreport

import (
	"os"
	"path/filepath"
)

// reportMode is the permission of a newly created report.
const reportMode os.FileMode = 0o644

// WriteFile writes doc to path, replacing any existing file. The document is
// written to a temporary file in the same directory and renamed into place,
// so a failed write never leaves a partial report behind. A replaced report
// keeps its permissions; a new one gets reportMode.
func WriteFile(path, doc string) (err error) {
	mode := reportMode
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".epiccheck-report-*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(doc); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
