// Package languages embeds the language-definition resources the registry
// is built from. Each YAML file describes one language module and lists its
// locale variants in the order they are reported.
package languages

import "embed"

// FS is an embed.FS containing every *.yaml file in this directory.
//
//go:embed *.yaml
var FS embed.FS
