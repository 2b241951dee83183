package lang

import "strings"

func init() {
	Languages["python"] = &Language{
		Name:            "python",
		Extensions:      []string{".py"},
		MatchDefinition: prefixMatcher("def ", "class "),
		BlockStart:      pythonBlockStart,
		BlockEnd:        pythonBlockEnd,
	}
}

// A docstring opens at a line whose first non-whitespace characters are a
// triple-quote marker. The opening line is never treated as its own
// terminator, so a bare `"""` line starts a multi-line block.
func pythonBlockStart(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''")
}

func pythonBlockEnd(line string) bool {
	trimmed := strings.TrimRight(line, " \t\r")
	return strings.HasSuffix(trimmed, `"""`) || strings.HasSuffix(trimmed, "'''")
}
