package registry

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/internal/content"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/pkg/fileutil"
)

// artifactHeader marks the lookup artifact as generated output.
const artifactHeader = "// Code generated by promptpack generate. DO NOT EDIT.\n"

// Generate scans the content library at sourceDir, validates every document,
// and publishes the statically-typed lookup artifact to outPath. It reports
// whether the artifact changed on disk; identical content is not rewritten.
//
// Any validation failure (missing metadata, name collision, catalog entry
// without a unit) aborts the whole generation.
func Generate(sourceDir, outPath string) (bool, error) {
	reg, err := FromLibrary(os.DirFS(sourceDir))
	if err != nil {
		return false, errors.Mark(err, pperrors.ErrGeneration)
	}

	artifact := RenderArtifact(reg)
	wrote, err := fileutil.WriteFileIfChanged(outPath, artifact, 0o644)
	if err != nil {
		return false, errors.Wrap(err, "writing registry artifact")
	}
	return wrote, nil
}

// RenderArtifact renders the generated Go source for a registry: one
// name-to-document map per category and a derived enumeration of valid
// names. Output is deterministic; units are already name-sorted.
func RenderArtifact(reg *Registry) []byte {
	var buf bytes.Buffer
	buf.WriteString(artifactHeader)
	buf.WriteString("\npackage library\n")

	for _, category := range content.Categories() {
		units := reg.Units(category)
		ident := artifactIdent(category)

		fmt.Fprintf(&buf, "\n// %sFiles maps %s names to their source document paths.\n", ident, category)
		fmt.Fprintf(&buf, "var %sFiles = map[string]string{\n", ident)
		for _, u := range units {
			fmt.Fprintf(&buf, "\t%q: %q,\n", u.Name, u.TargetRelPath())
		}
		buf.WriteString("}\n")

		fmt.Fprintf(&buf, "\n// %sNames enumerates the valid %s names, in order.\n", ident, category)
		fmt.Fprintf(&buf, "var %sNames = []string{\n", ident)
		for _, u := range units {
			fmt.Fprintf(&buf, "\t%q,\n", u.Name)
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// The template is static; a formatting failure means a unit name
		// broke quoting, which ParseUnit should have rejected.
		return buf.Bytes()
	}
	return src
}

func artifactIdent(category content.Category) string {
	switch category {
	case content.CategoryAgent:
		return "Agent"
	case content.CategoryCommand:
		return "Command"
	case content.CategoryKnowledge:
		return "Knowledge"
	}
	return string(category)
}
