// Package registry builds and serves the content registry: a per-category,
// name-ordered index of every content unit in a library, plus the generator
// that publishes the statically-typed lookup artifact.
package registry

import (
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/internal/content"
)

// Registry is an immutable per-category index of content units. It is built
// offline by the generator and rebuilt from the embedded library at install
// time; installs never mutate it.
type Registry struct {
	byCategory map[content.Category][]content.Unit
	index      map[content.Category]map[string]*content.Unit
	catalog    *content.Catalog
}

// FromLibrary scans a content library filesystem into a Registry. The
// library holds one directory per category and an optional catalog.toml
// naming the curated default selections. Catalog entries that do not
// resolve to a scanned unit are an error.
func FromLibrary(fsys fs.FS) (*Registry, error) {
	byCategory, err := content.ScanLibrary(fsys)
	if err != nil {
		return nil, err
	}

	catalog := &content.Catalog{}
	data, err := fs.ReadFile(fsys, content.CatalogFileName)
	if err == nil {
		catalog, err = content.ParseCatalog(data)
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "reading catalog")
	}

	r := &Registry{
		byCategory: byCategory,
		index:      make(map[content.Category]map[string]*content.Unit, len(byCategory)),
		catalog:    catalog,
	}
	for category, units := range byCategory {
		m := make(map[string]*content.Unit, len(units))
		for i := range units {
			m[units[i].Name] = &units[i]
		}
		r.index[category] = m
	}

	for _, category := range content.Categories() {
		for _, name := range catalog.Selections(category) {
			if _, ok := r.index[category][name]; !ok {
				return nil, errors.Newf("catalog names unknown %s %q", category, name)
			}
		}
	}

	return r, nil
}

// Units returns the category's units in name order.
func (r *Registry) Units(category content.Category) []content.Unit {
	return r.byCategory[category]
}

// Get returns the named unit, or false when it is not in the registry.
func (r *Registry) Get(category content.Category, name string) (*content.Unit, bool) {
	u, ok := r.index[category][name]
	return u, ok
}

// Names returns the category's unit names in order.
func (r *Registry) Names(category content.Category) []string {
	units := r.byCategory[category]
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name
	}
	return names
}

// Defaults returns the curated default selection for a category.
func (r *Registry) Defaults(category content.Category) []string {
	return r.catalog.Selections(category)
}

// Len returns the total number of units across all categories.
func (r *Registry) Len() int {
	n := 0
	for _, units := range r.byCategory {
		n += len(units)
	}
	return n
}
