package lang

import (
	"regexp"
	"strings"
)

// An optional visibility modifier, then a type keyword or class-like keyword,
// then an identifier. Purely lexical: annotations, generics on their own
// line, and multi-line signatures are not recognized.
var javaDefRe = regexp.MustCompile(`^(?:public|protected|private)?\s*(?:class|interface|enum|void|int|String|double|float|char|boolean|byte|short|long)\s+[A-Za-z_$][A-Za-z0-9_$]*`)

func init() {
	Languages["java"] = &Language{
		Name:            "java",
		Extensions:      []string{".java"},
		MatchDefinition: javaMatchDefinition,
		BlockStart:      starBlockStart,
		BlockEnd:        starBlockEnd,
	}
}

func javaMatchDefinition(line string) bool {
	return javaDefRe.MatchString(strings.TrimLeft(line, " \t"))
}
