package lang

func init() {
	Languages["javascript"] = &Language{
		Name:            "javascript",
		Extensions:      []string{".js"},
		MatchDefinition: prefixMatcher("function ", "class "),
		BlockStart:      starBlockStart,
		BlockEnd:        starBlockEnd,
	}
}
