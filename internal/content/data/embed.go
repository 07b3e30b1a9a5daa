// Package data embeds the per-locale portfolio datasets.
package data

import "embed"

// FS holds <locale>/<dataset>.yaml files.
//
//go:embed */*.yaml
var FS embed.FS
