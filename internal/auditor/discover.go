package auditor

import (
	"context"
	"io/fs"
	"linkaudit/pkg/logger"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Discover lists the files under root whose base name matches the configured
// pattern. Symlinks are followed when they point at a regular file. Only the top level of root is searched unless the
// auditor is recursive. A missing or unreadable root is an error.
func (a *auditor) Discover(ctx context.Context, root string) ([]string, error) {
	if _, err := filepath.Match(a.options.Pattern, ""); err != nil {
		return nil, errors.Wrapf(err, "invalid notebook pattern %q", a.options.Pattern)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, "stat notebook root")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("notebook root %q is not a directory", root)
	}

	var notebooks []string
	if a.options.Recursive {
		notebooks, err = a.walk(root)
	} else {
		notebooks, err = a.list(root)
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(notebooks)

	logger.Debug(ctx, "discovered notebooks",
		zap.String("root", root),
		zap.Int("count", len(notebooks)))

	return notebooks, nil
}

func (a *auditor) list(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, "read notebook root")
	}

	var out []string
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if a.matches(path, e) {
			out = append(out, path)
		}
	}

	return out, nil
}

func (a *auditor) walk(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if a.matches(path, d) {
			out = append(out, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk notebook root")
	}

	return out, nil
}

// matches reports whether the entry at path is a notebook. Symlinked
// directories are never descended into.
func (a *auditor) matches(path string, d fs.DirEntry) bool {
	if ok, _ := filepath.Match(a.options.Pattern, d.Name()); !ok {
		return false
	}

	switch t := d.Type(); {
	case t.IsRegular():
		return true
	case t&fs.ModeSymlink != 0:
		info, err := os.Stat(path)

		return err == nil && info.Mode().IsRegular()
	default:
		return false
	}
}
