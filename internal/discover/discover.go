// Package discover finds recognized source files under a scan root.
package discover

import (
	"fmt"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"

	"github.com/phobologic/codescan/internal/config"
	"github.com/phobologic/codescan/internal/lang"
	"github.com/phobologic/codescan/internal/model"
)

// Files enumerates source files of recognized languages under cfg.Root.
// Subtrees whose directory name matches an excluded name are pruned at any
// depth. Results come back in filesystem traversal order; per-file report
// keys downstream follow this order, so it is not sorted here.
//
// Enumeration fails only when the root is missing or not a directory;
// errors inside the tree skip the affected entry.
func Files(cfg config.Config, log *logrus.Logger) ([]model.SourceFile, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", cfg.Root)
	}

	var gi *ignore.GitIgnore
	if cfg.RespectGitignore {
		gi = loadGitignore(cfg.Root)
	}

	var results []model.SourceFile

	err = filepath.WalkDir(cfg.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("skipping unreadable entry")
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == cfg.Root {
				return nil
			}
			if cfg.IsExcluded(name) {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			log.WithField("path", rel).Debug("gitignored")
			return nil
		}

		langName := lang.ForExtension(filepath.Ext(name))
		if langName == "" {
			return nil
		}
		if !cfg.WantsLanguage(langName) {
			return nil
		}

		results = append(results, model.SourceFile{Path: rel, Language: langName})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
