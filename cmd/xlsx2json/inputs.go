package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// collectInputs expands paths into .xlsx files.  Directories contribute
// the .xlsx files directly inside them, in name order.  Paths that are
// neither are skipped with a warning.
func collectInputs(log *slog.Logger, paths []string) []string {
	var res []string
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			log.Warn("skipping input", "path", p, "error", err)
			continue
		}
		if !st.IsDir() {
			if isXLSX(p) {
				res = append(res, p)
				continue
			}
			log.Warn("skipping input: not an .xlsx file", "path", p)
			continue
		}
		ents, err := os.ReadDir(p)
		if err != nil {
			log.Warn("skipping input", "path", p, "error", err)
			continue
		}
		for _, ent := range ents {
			if ent.IsDir() || !isXLSX(ent.Name()) {
				continue
			}
			res = append(res, filepath.Join(p, ent.Name()))
		}
	}
	return res
}

func isXLSX(p string) bool {
	base := filepath.Base(p)
	// lock files left by spreadsheet editors
	if strings.HasPrefix(base, "~$") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".xlsx")
}

func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
