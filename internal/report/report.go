// Package report builds and serializes the output artifacts of a scan.
//
// Per-file reports are collected into typed builders during the scan and
// serialized exactly once at the end, so no artifact is ever observable in a
// half-written state short of process death.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phobologic/codescan/internal/model"
)

// Artifact file names written into the output directory.
const (
	TechnicalInfoFile  = "technical_info.txt"
	CodeStatisticsFile = "code_statistics.txt"
	DefinitionsFile    = "code_definitions.json"
	DocBlocksFile      = "docstrings.json"
	DependenciesFile   = "dependencies.txt"
	ReadmeFile         = "README.md"
)

// OrderedMap is a string-to-string-list mapping that marshals its keys in
// insertion order. Report keys follow file enumeration order, which the
// stock map type would sort away.
type OrderedMap struct {
	keys   []string
	values map[string][]string
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string][]string)}
}

// Set adds or replaces a key. A new key goes at the end of the order.
func (m *OrderedMap) Set(key string, value []string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key, or nil.
func (m *OrderedMap) Get(key string) []string {
	return m.values[key]
}

// Len returns the number of keys.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion
// order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Artifacts holds everything the writer serializes at the end of a run.
type Artifacts struct {
	Tools        []model.ToolVersion
	Stats        []model.FileStat
	Definitions  *OrderedMap
	DocBlocks    *OrderedMap
	Dependencies string
	// ReadmeSource is the path of the scan root's README.md, or "" when the
	// root has none.
	ReadmeSource string
}

// Build folds per-file scan results into report builders. Files with no
// definitions or no doc blocks are absent from the corresponding map rather
// than present with an empty list.
func Build(results []model.FileResult) (stats []model.FileStat, defs, docs *OrderedMap) {
	defs = NewOrderedMap()
	docs = NewOrderedMap()

	for _, r := range results {
		stats = append(stats, model.FileStat{Path: r.File.Path, Lines: r.Lines})
		if len(r.Definitions) > 0 {
			defs.Set(r.File.Path, r.Definitions)
		}
		if len(r.DocBlocks) > 0 {
			docs.Set(r.File.Path, r.DocBlocks)
		}
	}
	return stats, defs, docs
}

// Writer serializes artifacts into a single output directory.
type Writer struct {
	OutputDir string
}

// WriteAll creates the output directory and writes every artifact.
func (w Writer) WriteAll(a Artifacts) error {
	if err := os.MkdirAll(w.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := w.writeText(TechnicalInfoFile, encodeTools(a.Tools)); err != nil {
		return err
	}
	if err := w.writeText(CodeStatisticsFile, encodeStats(a.Stats)); err != nil {
		return err
	}
	if err := w.writeJSON(DefinitionsFile, a.Definitions); err != nil {
		return err
	}
	if err := w.writeJSON(DocBlocksFile, a.DocBlocks); err != nil {
		return err
	}
	if err := w.writeText(DependenciesFile, a.Dependencies); err != nil {
		return err
	}
	if a.ReadmeSource != "" {
		if err := w.copyFile(a.ReadmeSource, ReadmeFile); err != nil {
			return err
		}
	}
	return nil
}

func encodeTools(tools []model.ToolVersion) string {
	var b strings.Builder
	for _, t := range tools {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Version)
	}
	return b.String()
}

func encodeStats(stats []model.FileStat) string {
	var b strings.Builder
	total := 0
	for _, s := range stats {
		fmt.Fprintf(&b, "%d %s\n", s.Lines, s.Path)
		total += s.Lines
	}
	fmt.Fprintf(&b, "%d total\n", total)
	return b.String()
}

func (w Writer) writeText(name, content string) error {
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (w Writer) writeJSON(name string, m *OrderedMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	indented.WriteByte('\n')

	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, indented.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (w Writer) copyFile(src, name string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(filepath.Join(w.OutputDir, name))
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}
	return out.Close()
}
