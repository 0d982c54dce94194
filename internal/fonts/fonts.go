package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns the directories searched for overlay fonts, relative to the working
// directory (repo root first, then from cmd/museum).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the font files under dir as slash-separated paths relative to dir,
// sorted. A missing dir yields no fonts and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// First returns the full path of the preferred font in the first directory that has any.
// A file with "regular" in its name wins over the alphabetical first.
func First(dirs ...string) (string, bool) {
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil || len(list) == 0 {
			continue
		}
		pick := list[0]
		for _, rel := range list {
			if strings.Contains(strings.ToLower(rel), "regular") {
				pick = rel
				break
			}
		}
		return filepath.Join(dir, filepath.FromSlash(pick)), true
	}
	return "", false
}
