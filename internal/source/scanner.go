package source

import (
	"os"
	"path/filepath"
	"strings"
)

// Discover resolves a path to statement files: a file path yields itself, a
// directory is walked for supported statement formats.
func Discover(path string) ([]DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if df, ok := classify(path); ok {
			return []DiscoveredFile{df}, nil
		}
		return nil, nil
	}

	var files []DiscoveredFile
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if df, ok := classify(p); ok {
			files = append(files, df)
		}
		return nil
	})

	return files, err
}

func classify(path string) (DiscoveredFile, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return DiscoveredFile{Path: path, Format: FormatCSV}, true
	case ".xlsx":
		return DiscoveredFile{Path: path, Format: FormatXLSX}, true
	}
	return DiscoveredFile{}, false
}
