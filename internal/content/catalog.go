package content

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Catalog describes the curated portion of a content library. It lives as
// catalog.toml next to the category directories and names the units that
// default-mode installs select.
type Catalog struct {
	Defaults CatalogDefaults `toml:"defaults"`
}

// CatalogDefaults lists the curated unit names per category.
type CatalogDefaults struct {
	Agents    []string `toml:"agents"`
	Commands  []string `toml:"commands"`
	Knowledge []string `toml:"knowledge"`
}

// CatalogFileName is the catalog's location within a content library.
const CatalogFileName = "catalog.toml"

// ParseCatalog decodes a catalog.toml document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parsing catalog")
	}
	return &c, nil
}

// Selections returns the curated names for a category.
func (c *Catalog) Selections(category Category) []string {
	switch category {
	case CategoryAgent:
		return c.Defaults.Agents
	case CategoryCommand:
		return c.Defaults.Commands
	case CategoryKnowledge:
		return c.Defaults.Knowledge
	}
	return nil
}
