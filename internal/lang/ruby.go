package lang

import "strings"

func init() {
	Languages["ruby"] = &Language{
		Name:            "ruby",
		Extensions:      []string{".rb"},
		MatchDefinition: prefixMatcher("def ", "class ", "module "),
		BlockStart:      rubyBlockStart,
		BlockEnd:        rubyBlockEnd,
	}
}

// Ruby block comments require =begin/=end at column zero; only a trailing
// carriage return is tolerated.
func rubyBlockStart(line string) bool {
	return strings.TrimRight(line, "\r") == "=begin"
}

func rubyBlockEnd(line string) bool {
	return strings.TrimRight(line, "\r") == "=end"
}
