package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the zip files directly inside localDir (non-recursive).
// Extension matching is case-insensitive. Order is directory enumeration
// order as returned by os.ReadDir.
func Discover(localDir string) ([]string, error) {
	entries, err := os.ReadDir(localDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".zip") {
			files = append(files, filepath.Join(localDir, e.Name()))
		}
	}
	return files, nil
}
