package library

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Scan walks root and returns the absolute paths of files whose extension is
// one of exts, ordered by file name. Directories that cannot be read are
// skipped.
func Scan(root string, exts []string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[e] = struct{}{}
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Printf("scan: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if _, ok := want[strings.ToLower(filepath.Ext(path))]; ok {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(found, func(a, b string) int {
		return strings.Compare(sortKey(filepath.Base(a)), sortKey(filepath.Base(b)))
	})
	return found, nil
}
