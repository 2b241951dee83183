// Package lang provides a language registry mapping file extensions to
// per-language lexical rules for definition and doc-block detection.
//
// Detection is deliberately lexical: a line "matches" a definition when it
// starts with one of a fixed set of keyword tokens after leading whitespace
// is stripped. There is no parsing, so multi-line signatures and decorated
// declarations are missed, and keyword tokens inside strings or comments
// false-positive. Callers depend on that contract; do not replace it with a
// parser.
package lang

import (
	"regexp"
	"strings"
	"sync"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Language holds the lexical rules for a supported language.
type Language struct {
	Name       string
	Extensions []string

	// MatchDefinition reports whether a raw source line introduces a
	// function, class, module, interface, or method definition.
	MatchDefinition func(line string) bool

	// BlockStart reports whether a raw source line opens a doc block.
	BlockStart func(line string) bool

	// BlockEnd reports whether a raw source line closes an open doc block.
	// Never consulted for the line that opened the block.
	BlockEnd func(line string) bool
}

// Languages maps language names to their rules.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language name for a file extension, or "" if unsupported.
func ForExtension(ext string) string {
	return getExtensionMap()[ext]
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// prefixMatcher returns a MatchDefinition func that strips leading whitespace
// and tests the line against each keyword prefix in turn.
func prefixMatcher(prefixes ...string) func(string) bool {
	return func(line string) bool {
		trimmed := strings.TrimLeft(line, " \t")
		for _, p := range prefixes {
			if strings.HasPrefix(trimmed, p) {
				return true
			}
		}
		return false
	}
}

// starBlockStart matches a line whose first non-whitespace characters open a
// /** doc comment.
func starBlockStart(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "/**")
}

// starBlockEnd matches a line ending with */ (ignoring trailing whitespace).
func starBlockEnd(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t\r"), "*/")
}
