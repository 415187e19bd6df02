// Package scan walks a migration tree and feeds every file of interest into
// a resolve.Run. All interpretation is left to the run; the scanner only
// decides which files matter and loads fragment text.
package scan

import (
	"io/fs"
	"path"

	"github.com/rs/zerolog"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/config"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/errors"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/logging"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/resolve"
)

// Scanner collects source files and configuration fragments from a tree.
type Scanner struct {
	fsys         fs.FS
	fragmentName string
	extensions   map[string]struct{}
	skipDirs     map[string]struct{}
	logger       zerolog.Logger
}

// Result summarizes one scan.
type Result struct {
	SourceFiles int
	Fragments   int
}

// New creates a scanner over fsys using the tool configuration.
func New(fsys fs.FS, cfg config.Config) *Scanner {
	extensions := make(map[string]struct{}, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[ext] = struct{}{}
	}
	skipDirs := make(map[string]struct{}, len(cfg.SkipDirs))
	for _, dir := range cfg.SkipDirs {
		skipDirs[dir] = struct{}{}
	}
	return &Scanner{
		fsys:         fsys,
		fragmentName: cfg.FragmentFile,
		extensions:   extensions,
		skipDirs:     skipDirs,
		logger:       logging.GetLogger("scan"),
	}
}

// Populate ingests every file of interest under the scanner's root into run.
// Files and fragments may be encountered in any order; the run defers all
// interpretation until commit.
func (s *Scanner) Populate(run *resolve.Run) (Result, error) {
	var res Result
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := s.skipDirs[d.Name()]; skip && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == s.fragmentName {
			content, err := fs.ReadFile(s.fsys, p)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to read fragment %s", p)
			}
			if err := run.AddFragment(p, string(content)); err != nil {
				return err
			}
			res.Fragments++
			return nil
		}
		if _, ok := s.extensions[path.Ext(p)]; ok {
			if err := run.AddPath(p); err != nil {
				return err
			}
			res.SourceFiles++
		}
		return nil
	})
	if err != nil {
		return res, errors.Wrap(err, errors.ErrScanFailed, "tree scan failed")
	}
	s.logger.Info().
		Int("sourceFiles", res.SourceFiles).
		Int("fragments", res.Fragments).
		Msg("Scan completed")
	return res, nil
}

// ArtifactProbe returns the already-has-artifact predicate for run options.
// It reports whether artifactFile exists directly under a candidate root.
func (s *Scanner) ArtifactProbe(artifactFile string) func(root string) bool {
	return func(root string) bool {
		p := artifactFile
		if root != "" {
			p = path.Join(root, artifactFile)
		}
		_, err := fs.Stat(s.fsys, p)
		return err == nil
	}
}
