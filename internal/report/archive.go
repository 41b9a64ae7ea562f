package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Years lists the archive's year directories in ascending order. A missing
// base directory reads as an empty archive, not an error.
func (g *Generator) Years() ([]string, error) {
	entries, err := os.ReadDir(g.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read archive directory: %w", err)
	}
	years := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			years = append(years, e.Name())
		}
	}
	sort.Strings(years)
	return years, nil
}

// Reports lists the PDF files for one year, empty when the year is absent.
func (g *Generator) Reports(year string) ([]string, error) {
	dir, err := g.yearDir(year)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read year directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".pdf") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// FilePath resolves one archived report, refusing names that escape the
// archive tree. The boolean reports whether the file exists.
func (g *Generator) FilePath(year, file string) (string, bool, error) {
	dir, err := g.yearDir(year)
	if err != nil {
		return "", false, err
	}
	if file != filepath.Base(file) || strings.HasPrefix(file, ".") {
		return "", false, fmt.Errorf("invalid file name %q", file)
	}
	path := filepath.Join(dir, file)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	return path, true, nil
}

func (g *Generator) yearDir(year string) (string, error) {
	if year != filepath.Base(year) || strings.HasPrefix(year, ".") {
		return "", fmt.Errorf("invalid year %q", year)
	}
	return filepath.Join(g.baseDir, year), nil
}
