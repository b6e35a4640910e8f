package validate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// LogPath returns the error log path for a document named stem.
func LogPath(dir, stem string) string {
	return filepath.Join(dir, stem+".error.log")
}

// WriteLog writes one line per error to the error log of stem in dir,
// creating dir as needed.  Nothing is written, and any stale log from a
// previous run is removed, when errs is empty.  WriteLog returns the path
// written, or "" if there was nothing to write.
func WriteLog(dir, stem string, errs []Error) (string, error) {
	p := LogPath(dir, stem)
	if len(errs) == 0 {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return "", err
		}
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range errs {
		fmt.Fprintln(w, e.String())
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return p, f.Close()
}
