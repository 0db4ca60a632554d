// Package content defines the content unit model: categorized prompt
// documents with YAML metadata blocks, and the rules for parsing and
// validating them.
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/pkg/frontmatter"
)

// Category identifies the kind of content unit.
type Category string

// Category constants, in installation order.
const (
	CategoryAgent     Category = "agent"
	CategoryCommand   Category = "command"
	CategoryKnowledge Category = "knowledge"
)

// Extension is the single file extension content documents use.
const Extension = ".md"

// Categories returns all categories in their fixed installation order:
// agents, then commands, then knowledge docs.
func Categories() []Category {
	return []Category{CategoryAgent, CategoryCommand, CategoryKnowledge}
}

// Dir returns the directory name used for this category, both in the source
// library and under an installation root.
func (c Category) Dir() string {
	switch c {
	case CategoryAgent:
		return "agents"
	case CategoryCommand:
		return "commands"
	case CategoryKnowledge:
		return "knowledge"
	}
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAgent, CategoryCommand, CategoryKnowledge:
		return true
	}
	return false
}

// Unit is one named, described document of a given category.
type Unit struct {
	// Category is the kind of content unit.
	Category Category

	// Name uniquely identifies the unit within its category. It derives
	// from the source filename.
	Name string

	// Description is the required human-readable summary from the
	// metadata block.
	Description string

	// Metadata holds the full parsed metadata block.
	Metadata map[string]string

	// Body is the document content after the metadata block.
	Body []byte

	// Raw is the complete source document, metadata block included. This
	// is what gets materialized on install.
	Raw []byte
}

// TargetRelPath returns the unit's installation path relative to the
// target root.
func (u *Unit) TargetRelPath() string {
	return path.Join(u.Category.Dir(), u.Name+Extension)
}

// SourceHash returns the hex-encoded SHA256 hash of the raw source document.
func (u *Unit) SourceHash() string {
	sum := sha256.Sum256(u.Raw)
	return hex.EncodeToString(sum[:])
}

// ParseUnit parses a source document into a Unit and validates its metadata
// against the category schema: every unit requires a description, and agents
// additionally require a name matching the filename stem.
func ParseUnit(category Category, fileName string, raw []byte) (*Unit, error) {
	if !strings.HasSuffix(fileName, Extension) {
		return nil, errors.Newf("%s: content documents must use the %s extension", fileName, Extension)
	}
	stem := strings.TrimSuffix(fileName, Extension)

	meta := map[string]string{}
	body, err := frontmatter.Parse(strings.NewReader(string(raw)), &meta)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing metadata block of %s", fileName)
	}

	if meta["description"] == "" {
		return nil, errors.Newf("%s: metadata key %q is required", fileName, "description")
	}
	if category == CategoryAgent {
		name, ok := meta["name"]
		if !ok || name == "" {
			return nil, errors.Newf("%s: agents require the metadata key %q", fileName, "name")
		}
		if name != stem {
			return nil, errors.Newf("%s: metadata name %q does not match filename", fileName, name)
		}
	}

	return &Unit{
		Category:    category,
		Name:        stem,
		Description: meta["description"],
		Metadata:    meta,
		Body:        body,
		Raw:         raw,
	}, nil
}
