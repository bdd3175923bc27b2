package plotlog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/models"
)

// Discover returns the SVG files under root in walk order. A root that is a
// symlink to a directory is followed; returned paths keep the root as given.
func Discover(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, root)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	skip := opts.ShouldSkipConverted()
	suffix := opts.OutputSuffix()

	// WalkDir does not follow a symlinked root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			// Unreadable entries are skipped rather than ending the walk.
			opts.Logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !strings.EqualFold(ext, Extension) {
			return nil
		}
		if skip && strings.HasSuffix(strings.TrimSuffix(filepath.Base(path), ext), suffix) {
			return nil
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ProcessDir converts every SVG plot under root, one file at a time. A
// failure on one file is logged and recorded in the summary; it never stops
// the batch. ErrNoFiles is returned when root contains no plots.
//
// Cancellation of ctx is checked between files.
func ProcessDir(ctx context.Context, root string, opts Options) (models.Summary, error) {
	var summary models.Summary

	files, err := Discover(root, opts)
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		return summary, fmt.Errorf("%w in %s", ErrNoFiles, root)
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res, err := ProcessFile(path, "", opts)
		if err != nil {
			opts.Logger.Error().Err(err).Str("file", path).Msg("error processing file")
			summary.Fail(err)
			continue
		}
		summary.Add(res)
	}

	opts.Logger.Info().
		Int("examined", summary.Examined).
		Int("converted", summary.Converted).
		Int("failed", summary.Failed).
		Msg("batch complete")
	return summary, nil
}
