// Package deps gathers dependency manifests from the scan root into a
// single labeled text report.
package deps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Collect checks the scan root for known dependency manifests and returns a
// report with one labeled section per manifest found. Absent manifests
// contribute nothing. For Python, requirements.txt wins: Pipfile is only
// consulted when requirements.txt does not exist.
func Collect(root string, log *logrus.Logger) string {
	var sections []string

	if content, ok := readManifest(root, "requirements.txt", log); ok {
		sections = append(sections, section("Python (requirements.txt)", content))
	} else if content, ok := readManifest(root, "Pipfile", log); ok {
		sections = append(sections, section("Python (Pipfile)", content))
	}

	if content, ok := jsonField(root, "package.json", "dependencies", log); ok {
		sections = append(sections, section("JavaScript (package.json dependencies)", content))
	}

	if content, ok := readManifest(root, "Gemfile", log); ok {
		sections = append(sections, section("Ruby (Gemfile)", content))
	}

	if content, ok := jsonField(root, "composer.json", "require", log); ok {
		sections = append(sections, section("PHP (composer.json require)", content))
	}

	return strings.Join(sections, "\n")
}

func section(label, content string) string {
	return fmt.Sprintf("## %s\n\n%s\n", label, strings.TrimRight(content, "\n"))
}

func readManifest(root, name string, log *logrus.Logger) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("manifest", name).Debug("skipping unreadable manifest")
		}
		return "", false
	}
	return string(data), true
}

// jsonField reads a JSON manifest and pretty-prints a single top-level
// field. A manifest without the field, or one that does not parse, is
// treated the same as an absent manifest.
func jsonField(root, name, field string, log *logrus.Logger) (string, bool) {
	data, ok := readManifest(root, name, log)
	if !ok {
		return "", false
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		log.WithError(err).WithField("manifest", name).Debug("skipping malformed manifest")
		return "", false
	}

	raw, ok := doc[field]
	if !ok {
		return "", false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", false
	}
	return string(pretty), true
}
