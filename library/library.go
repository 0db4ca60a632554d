// Package library embeds the promptpack content library: the prompt
// documents themselves plus the catalog of curated defaults.
//
// The registry_gen.go artifact in this package is produced by
// `promptpack generate` from the documents below; regenerate it whenever a
// document is added, removed or renamed.
package library

import "embed"

// FS holds the published content library.
//
//go:embed agents commands knowledge catalog.toml
var FS embed.FS
