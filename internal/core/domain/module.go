package domain

import "strings"

// PragmaMarker is the legacy JSX pragma looked for in module sources.
const PragmaMarker = "@jsx React.DOM"

const pragmaLine = "/** " + PragmaMarker + " */\n"

// EnsureExtension appends ext to name unless name already ends with it.
func EnsureExtension(name, ext string) string {
	if ext == "" || strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// EnsurePragma prepends the JSX pragma line when enabled and the content
// does not already carry the marker.
func EnsurePragma(content string, enabled bool) string {
	if !enabled || strings.Contains(content, PragmaMarker) {
		return content
	}
	return pragmaLine + content
}
