package media

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scan lists the files under root. With recursive set it walks the whole
// tree, otherwise only the top level. Dotfiles, hidden directories, and
// entries whose base name appears in skipNames (the progress sentinel, lock
// files) are omitted.
func Scan(root string, recursive bool, skipNames ...string) ([]string, error) {
	skip := make(map[string]struct{}, len(skipNames))
	for _, name := range skipNames {
		skip[name] = struct{}{}
	}
	skipped := func(name string) bool {
		if strings.HasPrefix(name, ".") {
			return true
		}
		_, ok := skip[name]
		return ok
	}

	var paths []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if skipped(d.Name()) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || skipped(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	return paths, nil
}
