package lang

func init() {
	Languages["php"] = &Language{
		Name:            "php",
		Extensions:      []string{".php"},
		MatchDefinition: prefixMatcher("function ", "class "),
		BlockStart:      starBlockStart,
		BlockEnd:        starBlockEnd,
	}
}
