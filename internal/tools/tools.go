// Package tools probes the host for installed language runtimes.
package tools

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phobologic/codescan/internal/model"
)

const probeTimeout = 5 * time.Second

// Candidate names a runtime binary and the argument that makes it print its
// version.
type Candidate struct {
	Name        string
	VersionFlag string
}

// Candidates is the fixed probe list, one entry per recognized language
// (python twice, for hosts that only install one spelling).
var Candidates = []Candidate{
	{Name: "python3", VersionFlag: "--version"},
	{Name: "python", VersionFlag: "--version"},
	{Name: "node", VersionFlag: "--version"},
	{Name: "ruby", VersionFlag: "--version"},
	{Name: "php", VersionFlag: "--version"},
	{Name: "java", VersionFlag: "-version"},
}

// Probe runs each candidate and records the first line of its version
// output. Tools absent from PATH, and tools that fail or time out, are
// omitted rather than reported as missing. Output is combined stdout+stderr
// because some runtimes (older JVMs) print versions to stderr.
func Probe(ctx context.Context, candidates []Candidate, log *logrus.Logger) []model.ToolVersion {
	var found []model.ToolVersion

	for _, c := range candidates {
		if _, err := exec.LookPath(c.Name); err != nil {
			continue
		}

		version, ok := probeOne(ctx, c, log)
		if !ok {
			continue
		}
		found = append(found, model.ToolVersion{Name: c.Name, Version: version})
	}

	return found
}

func probeOne(ctx context.Context, c Candidate, log *logrus.Logger) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Name, c.VersionFlag)
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) == 0 {
		log.WithError(err).WithField("tool", c.Name).Debug("version probe failed")
		return "", false
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}
