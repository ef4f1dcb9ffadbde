// Package collector resolves an extension directory into the list of
// File records destined for the package, honoring ignore rules.
package collector

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/extpack/extpack/pkg/errors"
	"github.com/extpack/extpack/pkg/logging"
	"github.com/extpack/extpack/pkg/types"
)

// IgnoreFileName is the per-extension ignore file, one glob per line
const IgnoreFileName = ".vsixignore"

// LogicalPrefix is prepended to every collected file's package path
const LogicalPrefix = "extension/"

// vcsDirs are always pruned from the walk
var vcsDirs = map[string]bool{
	".git": true,
	".svn": true,
	".hg":  true,
}

// Collect walks dir and returns one File record per packaged file, in
// lexical walk order. The ignore file, version-control directories,
// pre-existing archives and descriptor files are never collected.
func Collect(dir string) ([]types.File, error) {
	logger := logging.GetLogger("collector")

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "extension directory does not exist").
				WithDetail("path", dir)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access extension directory").
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "extension path is not a directory").
			WithDetail("path", dir)
	}

	patterns, err := readIgnorePatterns(filepath.Join(dir, IgnoreFileName))
	if err != nil {
		return nil, err
	}

	var collected []types.File
	walkErr := filepath.WalkDir(dir, func(fullPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "cannot walk extension directory").
				WithDetail("path", fullPath)
		}

		rel, err := filepath.Rel(dir, fullPath)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot relativize path").
				WithDetail("path", fullPath)
		}
		rel = types.NormalizePath(rel)

		if entry.IsDir() {
			if vcsDirs[entry.Name()] || matchesAny(patterns, rel+"/") {
				logger.Trace().Str("dir", rel).Msg("pruning directory")
				return filepath.SkipDir
			}
			return nil
		}

		if skipAlways(rel) || matchesAny(patterns, rel) {
			logger.Trace().Str("file", rel).Msg("skipping ignored file")
			return nil
		}

		collected = append(collected, types.NewLocalFile(LogicalPrefix+rel, fullPath))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debug().Int("files", len(collected)).Str("dir", dir).Msg("Collected extension files")
	return collected, nil
}

// skipAlways covers the files that are never packaged regardless of
// ignore rules: the ignore file itself, the tool's own config files,
// previous archives, and any descriptor left over from an earlier run.
func skipAlways(rel string) bool {
	base := path.Base(rel)
	if base == IgnoreFileName {
		return true
	}
	if base == "extpack.toml" || base == "extpack.yaml" {
		return true
	}
	if strings.HasSuffix(base, ".vsix") {
		return true
	}
	if base == "extension.vsixmanifest" || base == "[Content_Types].xml" {
		return true
	}
	return false
}

// readIgnorePatterns loads the ignore globs, one per line. Blank lines
// and #-comments are skipped. A missing file yields no patterns.
func readIgnorePatterns(ignorePath string) ([]string, error) {
	data, err := os.ReadFile(ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileRead, "cannot read ignore file").
			WithDetail("path", ignorePath)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, types.NormalizePath(line))
	}
	return patterns, nil
}

// matchesAny reports whether rel matches any of the ignore patterns.
// Patterns match against the full relative path and against the base
// name; a pattern ending in "/" matches a whole directory subtree.
func matchesAny(patterns []string, rel string) bool {
	isDir := strings.HasSuffix(rel, "/")
	relPath := strings.TrimSuffix(rel, "/")

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/") {
			prefix := strings.TrimSuffix(pattern, "/")
			if isDir && relPath == prefix {
				return true
			}
			if strings.HasPrefix(relPath, prefix+"/") {
				return true
			}
			continue
		}
		// Slash-free patterns match files and directories alike; a
		// directory match excludes the whole subtree, gitignore-style.
		if ok, _ := path.Match(pattern, relPath); ok {
			return true
		}
		if ok, _ := path.Match(pattern, path.Base(relPath)); ok {
			return true
		}
	}
	return false
}
