// Package configs provides embedded default configuration for lexsearch.
//
// Files are embedded at build time with //go:embed so they are available
// in all distributions (source builds and binary releases). The source
// registry can be overridden at runtime via the registry_path config
// setting; the embedded copy is the fallback covering every supported
// jurisdiction.
package configs

import _ "embed"

// DefaultSources is the embedded default source registry definition.
// Loaded by internal/registry.LoadDefault when no registry_path is set.
//
//go:embed sources.yaml
var DefaultSources string
