// Package scan implements the per-file extraction passes: raw line counts,
// lexical definition detection, and doc-block collection.
package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phobologic/codescan/internal/lang"
	"github.com/phobologic/codescan/internal/model"
)

// File reads one source file and runs every pass over it. A read failure is
// not an error: the file simply contributes nothing to any report, matching
// the behavior for a file with zero matches. The failure is visible only at
// debug level.
func File(root string, sf model.SourceFile, log *logrus.Logger) (model.FileResult, bool) {
	source, err := os.ReadFile(filepath.Join(root, sf.Path))
	if err != nil {
		log.WithError(err).WithField("path", sf.Path).Debug("skipping unreadable file")
		return model.FileResult{}, false
	}

	rules := lang.Languages[sf.Language]
	lines := SplitLines(source)

	blocks, unterminated := ExtractDocBlocks(lines, rules)
	if unterminated {
		log.WithField("path", sf.Path).Debug("dropped unterminated doc block at end of file")
	}

	return model.FileResult{
		File:        sf,
		Lines:       CountLines(source),
		Definitions: ExtractDefinitions(lines, rules),
		DocBlocks:   blocks,
	}, true
}

// CountLines returns the number of newline-terminated records in source.
// A final line without a trailing newline is not counted, matching wc -l.
func CountLines(source []byte) int {
	return bytes.Count(source, []byte("\n"))
}

// SplitLines splits source on newlines. A trailing newline does not produce
// an empty final line.
func SplitLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// ExtractDefinitions returns, in file order, every line the language rules
// recognize as a definition, with internal whitespace collapsed to single
// spaces and leading/trailing whitespace trimmed.
func ExtractDefinitions(lines []string, rules *lang.Language) []string {
	var defs []string
	for _, line := range lines {
		if rules.MatchDefinition(line) {
			defs = append(defs, lang.CollapseWhitespace(line))
		}
	}
	return defs
}

// ExtractDocBlocks scans lines with a two-state machine. While idle, a line
// matching BlockStart opens a block; the opening line is never tested
// against BlockEnd, so a bare `"""` still begins a multi-line docstring.
// While inside a block, lines accumulate (original line breaks preserved)
// until a BlockEnd line closes it, inclusive. Start markers are not
// recognized inside a block, and a block still open at end of file is
// dropped; unterminated reports that case.
func ExtractDocBlocks(lines []string, rules *lang.Language) (blocks []string, unterminated bool) {
	var acc []string
	inBlock := false

	for _, line := range lines {
		if !inBlock {
			if rules.BlockStart(line) {
				inBlock = true
				acc = []string{line}
			}
			continue
		}

		acc = append(acc, line)
		if rules.BlockEnd(line) {
			blocks = append(blocks, strings.Join(acc, "\n"))
			acc = nil
			inBlock = false
		}
	}

	return blocks, inBlock
}
