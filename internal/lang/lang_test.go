package lang

import "testing"

func TestForExtension(t *testing.T) {
	t.Parallel()
	cases := []struct {
		ext  string
		want string
	}{
		{".py", "python"},
		{".js", "javascript"},
		{".rb", "ruby"},
		{".php", "php"},
		{".java", "java"},
		{".go", ""},
		{".txt", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ForExtension(tc.ext); got != tc.want {
			t.Errorf("ForExtension(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"def  foo( a,  b ):", "def foo( a, b ):"},
		{"   class\tBar:  ", "class Bar:"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CollapseWhitespace(tc.in); got != tc.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchDefinition(t *testing.T) {
	t.Parallel()
	cases := []struct {
		language string
		line     string
		want     bool
	}{
		{"python", "def foo():", true},
		{"python", "    def method(self):", true},
		{"python", "class Bar:", true},
		{"python", "deferred = True", false},
		{"python", "# def commented():", false},

		{"javascript", "function handler(req) {", true},
		{"javascript", "  class Widget extends Base {", true},
		{"javascript", "const f = () => {}", false},

		{"ruby", "def save!", true},
		{"ruby", "module Admin", true},
		{"ruby", "class User < ApplicationRecord", true},
		{"ruby", "defaults = {}", false},

		{"php", "function render($view) {", true},
		{"php", "class Controller {", true},
		{"php", "$function = null;", false},

		{"java", "public class Main {", true},
		{"java", "interface Shape {", true},
		{"java", "private void helper() {", true},
		{"java", "  protected String name() {", true},
		{"java", "enum Color { RED }", true},
		{"java", "int count = 0;", true},
		{"java", "return value;", false},
		{"java", "// void comment", false},
	}
	for _, tc := range cases {
		rules := Languages[tc.language]
		if rules == nil {
			t.Fatalf("no rules for %q", tc.language)
		}
		if got := rules.MatchDefinition(tc.line); got != tc.want {
			t.Errorf("%s: MatchDefinition(%q) = %v, want %v", tc.language, tc.line, got, tc.want)
		}
	}
}

func TestBlockMarkers(t *testing.T) {
	t.Parallel()
	cases := []struct {
		language  string
		line      string
		wantStart bool
		wantEnd   bool
	}{
		{"python", `"""`, true, true},
		{"python", `    '''Summary.`, true, false},
		{"python", `Ends here."""`, false, true},
		{"python", "plain line", false, false},

		{"javascript", "/** Doc comment", true, false},
		{"javascript", "  /** indented */", true, true},
		{"javascript", " */ ", false, true},
		{"javascript", "/* plain block */", false, true},

		{"ruby", "=begin", true, false},
		{"ruby", "=end", false, true},
		{"ruby", "  =begin", false, false},
		{"ruby", "=begin extra", false, false},
	}
	for _, tc := range cases {
		rules := Languages[tc.language]
		if got := rules.BlockStart(tc.line); got != tc.wantStart {
			t.Errorf("%s: BlockStart(%q) = %v, want %v", tc.language, tc.line, got, tc.wantStart)
		}
		if got := rules.BlockEnd(tc.line); got != tc.wantEnd {
			t.Errorf("%s: BlockEnd(%q) = %v, want %v", tc.language, tc.line, got, tc.wantEnd)
		}
	}
}
