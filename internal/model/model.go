// Package model defines core data structures for codescan.
package model

// SourceFile is a discovered source file, path relative to the scan root.
type SourceFile struct {
	Path     string
	Language string
}

// FileStat holds the raw line count for a single scanned file.
type FileStat struct {
	Path  string
	Lines int
}

// FileResult holds everything extracted from a single source file.
// Definitions and DocBlocks preserve file order; either may be empty,
// in which case the file contributes nothing to the matching report.
type FileResult struct {
	File        SourceFile
	Lines       int
	Definitions []string
	DocBlocks   []string
}

// ToolVersion records a locally installed runtime and its self-reported
// version string (first line only).
type ToolVersion struct {
	Name    string
	Version string
}
