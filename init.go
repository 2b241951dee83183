package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phobologic/codescan/internal/config"
)

// runInit implements the `codescan init` subcommand, which writes a
// commented default .codescan.yml into a project directory.
func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("codescan init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		dryRun bool
		force  bool
	)
	fs.BoolVar(&dryRun, "dry-run", false, "print the config without writing it")
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: codescan init [flags] [project-dir]

Write a default %s config file into a project directory so later scans pick
up project-specific settings (output directory, extra excluded directories,
language filter). Refuses to overwrite an existing file unless --force is
given.

project-dir defaults to the current directory.

Flags:
`, config.FileName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	content := defaultConfigYAML()

	if dryRun {
		_, _ = fmt.Fprint(stdout, content)
		return nil
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}
	path := filepath.Join(dir, config.FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stderr, "wrote %s\n", path)
	return nil
}

// defaultConfigYAML returns the commented starter config. Every setting is
// commented out so a fresh file changes nothing about scan behavior.
func defaultConfigYAML() string {
	return `# codescan project configuration.
# Command-line flags override anything set here.

# Where report artifacts go. Relative paths are resolved against the scan
# root.
#output_dir: project_analysis

# Extra directory names to prune during enumeration, in addition to the
# built-in version-control, dependency-cache, and virtualenv names.
#exclude:
#  - generated
#  - fixtures

# Restrict the scan to these languages. Omit to scan all of:
# python, javascript, ruby, php, java.
#languages:
#  - python

# Honor the root .gitignore when enumerating files.
#respect_gitignore: true
`
}
