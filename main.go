// codescan walks a project directory and writes static analysis reports:
// line counts, lexically detected definitions and doc blocks, dependency
// manifests, and installed runtime versions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/phobologic/codescan/internal/config"
	"github.com/phobologic/codescan/internal/deps"
	"github.com/phobologic/codescan/internal/discover"
	"github.com/phobologic/codescan/internal/lang"
	"github.com/phobologic/codescan/internal/model"
	"github.com/phobologic/codescan/internal/report"
	"github.com/phobologic/codescan/internal/scan"
	"github.com/phobologic/codescan/internal/tools"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "init" {
		return runInit(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("codescan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		outputDir   string
		langs       string
		exclude     string
		noGitignore bool
		verbose     bool
		showVersion bool
	)

	fs.StringVar(&outputDir, "o", "", "output directory (default <root>/project_analysis)")
	fs.StringVar(&outputDir, "output", "", "output directory (default <root>/project_analysis)")
	fs.StringVar(&langs, "l", "", "comma-separated languages to include")
	fs.StringVar(&langs, "langs", "", "comma-separated languages to include")
	fs.StringVar(&exclude, "exclude", "", "comma-separated extra directory names to skip")
	fs.BoolVar(&noGitignore, "no-gitignore", false, "do not honor the root .gitignore")
	fs.BoolVar(&verbose, "v", false, "verbose output")
	fs.BoolVar(&verbose, "verbose", false, "verbose output")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "codescan %s\n", version)
		return nil
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("missing required argument: root directory")
	}

	root, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	// Flags override the config file.
	if outputDir != "" {
		cfg.OutputDir, err = filepath.Abs(outputDir)
		if err != nil {
			return fmt.Errorf("resolving output directory: %w", err)
		}
	}
	if exclude != "" {
		for _, name := range strings.Split(exclude, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.ExcludedDirs = append(cfg.ExcludedDirs, name)
			}
		}
	}
	if langs != "" {
		cfg.Languages = nil
		for _, name := range strings.Split(langs, ",") {
			name = strings.TrimSpace(name)
			if _, ok := lang.Languages[name]; !ok {
				return fmt.Errorf("unsupported language %q", name)
			}
			cfg.Languages = append(cfg.Languages, name)
		}
	}
	if noGitignore {
		cfg.RespectGitignore = false
	}

	log := newLogger(stderr, verbose)

	files, err := discover.Files(cfg, log)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	log.WithField("files", len(files)).Debug("enumeration complete")

	results := scanFiles(cfg, files, log)
	stats, defs, docs := report.Build(results)

	arts := report.Artifacts{
		Tools:        tools.Probe(context.Background(), tools.Candidates, log),
		Stats:        stats,
		Definitions:  defs,
		DocBlocks:    docs,
		Dependencies: deps.Collect(cfg.Root, log),
	}
	if readme := filepath.Join(cfg.Root, "README.md"); fileExists(readme) {
		arts.ReadmeSource = readme
	}

	w := report.Writer{OutputDir: cfg.OutputDir}
	if err := w.WriteAll(arts); err != nil {
		return err
	}

	printSummary(stderr, results, defs, docs, cfg.OutputDir)
	return nil
}

// scanFiles runs the per-file passes over a bounded worker pool. Results are
// collected by enumeration index so report ordering is identical to a
// sequential pass; files that could not be read drop out here.
func scanFiles(cfg config.Config, files []model.SourceFile, log *logrus.Logger) []model.FileResult {
	results := make([]model.FileResult, len(files))
	valid := make([]bool, len(files))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i], valid[i] = scan.File(cfg.Root, f, log)
			return nil
		})
	}
	_ = g.Wait()

	var kept []model.FileResult
	for i, ok := range valid {
		if ok {
			kept = append(kept, results[i])
		}
	}
	return kept
}

func printSummary(stderr io.Writer, results []model.FileResult, defs, docs *report.OrderedMap, outputDir string) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	totalDefs := 0
	for _, key := range defs.Keys() {
		totalDefs += len(defs.Get(key))
	}
	totalDocs := 0
	for _, key := range docs.Keys() {
		totalDocs += len(docs.Get(key))
	}

	_, _ = fmt.Fprintf(stderr, "%s scanned %d files: %d definitions, %d doc blocks\n",
		green("done:"), len(results), totalDefs, totalDocs)
	_, _ = fmt.Fprintf(stderr, "reports written to %s\n", cyan(outputDir))
}

func newLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-o": true, "--o": true,
	"-output": true, "--output": true,
	"-l": true, "--l": true,
	"-langs": true, "--langs": true,
	"-exclude": true, "--exclude": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
