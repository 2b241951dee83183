package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/codescan/internal/model"
)

func TestOrderedMapMarshalPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	m := NewOrderedMap()
	m.Set("z.py", []string{"def z():"})
	m.Set("a.py", []string{"def a():"})
	m.Set("m.py", []string{"def m():"})

	data, err := json.Marshal(m)
	require.NoError(t, err)

	s := string(data)
	zi := strings.Index(s, `"z.py"`)
	ai := strings.Index(s, `"a.py"`)
	mi := strings.Index(s, `"m.py"`)
	assert.True(t, zi < ai && ai < mi, "keys out of order: %s", s)

	// Still valid JSON with the right values.
	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"def a():"}, decoded["a.py"])
}

func TestOrderedMapSetReplaces(t *testing.T) {
	t.Parallel()
	m := NewOrderedMap()
	m.Set("a", []string{"one"})
	m.Set("a", []string{"two"})

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"two"}, m.Get("a"))
}

func TestOrderedMapEmptyMarshal(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(NewOrderedMap())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestBuildOmitsEmptyFiles(t *testing.T) {
	t.Parallel()
	results := []model.FileResult{
		{
			File:        model.SourceFile{Path: "a.py", Language: "python"},
			Lines:       10,
			Definitions: []string{"def a():"},
		},
		{
			File:  model.SourceFile{Path: "b.py", Language: "python"},
			Lines: 3,
		},
		{
			File:      model.SourceFile{Path: "c.py", Language: "python"},
			Lines:     7,
			DocBlocks: []string{"\"\"\"\ndoc\n\"\"\""},
		},
	}

	stats, defs, docs := Build(results)

	assert.Len(t, stats, 3, "every scanned file gets a line count")
	assert.Equal(t, []string{"a.py"}, defs.Keys())
	assert.Equal(t, []string{"c.py"}, docs.Keys())
	assert.Nil(t, defs.Get("b.py"))
}

func TestWriteAll(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	readme := filepath.Join(root, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Project\n"), 0o644))

	defs := NewOrderedMap()
	defs.Set("a.py", []string{"def a():"})
	docs := NewOrderedMap()

	out := filepath.Join(root, "project_analysis")
	w := Writer{OutputDir: out}
	err := w.WriteAll(Artifacts{
		Tools: []model.ToolVersion{
			{Name: "python3", Version: "Python 3.12.1"},
		},
		Stats: []model.FileStat{
			{Path: "a.py", Lines: 12},
			{Path: "b.py", Lines: 8},
		},
		Definitions:  defs,
		DocBlocks:    docs,
		Dependencies: "## Python (requirements.txt)\n\nflask\n",
		ReadmeSource: readme,
	})
	require.NoError(t, err)

	tech, err := os.ReadFile(filepath.Join(out, TechnicalInfoFile))
	require.NoError(t, err)
	assert.Equal(t, "- python3: Python 3.12.1\n", string(tech))

	stats, err := os.ReadFile(filepath.Join(out, CodeStatisticsFile))
	require.NoError(t, err)
	assert.Equal(t, "12 a.py\n8 b.py\n20 total\n", string(stats))

	var decoded map[string][]string
	data, err := os.ReadFile(filepath.Join(out, DefinitionsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"def a():"}, decoded["a.py"])

	docData, err := os.ReadFile(filepath.Join(out, DocBlocksFile))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(docData))

	depData, err := os.ReadFile(filepath.Join(out, DependenciesFile))
	require.NoError(t, err)
	assert.Contains(t, string(depData), "requirements.txt")

	copied, err := os.ReadFile(filepath.Join(out, ReadmeFile))
	require.NoError(t, err)
	assert.Equal(t, "# Project\n", string(copied))
}

func TestWriteAllNoReadme(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "reports")
	w := Writer{OutputDir: out}
	require.NoError(t, w.WriteAll(Artifacts{
		Definitions: NewOrderedMap(),
		DocBlocks:   NewOrderedMap(),
	}))

	_, err := os.Stat(filepath.Join(out, ReadmeFile))
	assert.True(t, os.IsNotExist(err), "no README artifact without a source")

	stats, err := os.ReadFile(filepath.Join(out, CodeStatisticsFile))
	require.NoError(t, err)
	assert.Equal(t, "0 total\n", string(stats))
}
