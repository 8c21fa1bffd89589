package observation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".brandaudit":  true,
}

// Discover walks root and returns every observation file (.json, .html,
// .htm) in lexical order. Hidden directories and skipDirs are not entered.
func Discover(root string, excludeDirs ...string) ([]string, error) {
	extraSkip := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		extraSkip[strings.TrimSuffix(d, "/")] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (skipDirs[name] || extraSkip[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".json", ".html", ".htm":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Expand replaces directory arguments with the observation files inside them.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("opening observation: %w", err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		found, err := Discover(p)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no observation files in %s", p)
		}
		out = append(out, found...)
	}
	return out, nil
}
