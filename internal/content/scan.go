package content

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ScanCategory enumerates and parses every document of one category in a
// content library. Enumeration is non-recursive and considers only files
// with the content extension. The returned units are sorted by name.
//
// A name collision within the category is an error: enumeration is by
// filename and filenames are unique per directory, so a collision can only
// come from case-folding or metadata disagreement, and either breaks the
// registry's uniqueness invariant.
func ScanCategory(fsys fs.FS, category Category) ([]Unit, error) {
	entries, err := fs.ReadDir(fsys, category.Dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s directory", category.Dir())
	}

	seen := map[string]string{}
	units := make([]Unit, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		raw, err := fs.ReadFile(fsys, category.Dir()+"/"+entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", entry.Name())
		}

		unit, err := ParseUnit(category, entry.Name(), raw)
		if err != nil {
			return nil, err
		}

		key := strings.ToLower(unit.Name)
		if prev, ok := seen[key]; ok {
			return nil, errors.Newf("%s: name %q collides with %q", category.Dir(), unit.Name, prev)
		}
		seen[key] = unit.Name

		units = append(units, *unit)
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, nil
}

// ScanLibrary enumerates all categories of a content library.
func ScanLibrary(fsys fs.FS) (map[Category][]Unit, error) {
	byCategory := make(map[Category][]Unit, len(Categories()))
	for _, category := range Categories() {
		units, err := ScanCategory(fsys, category)
		if err != nil {
			return nil, err
		}
		byCategory[category] = units
	}
	return byCategory, nil
}
