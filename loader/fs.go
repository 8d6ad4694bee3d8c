package loader

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/lingokit/lingo"
)

// bundleExtensions are tried in order when resolving a locale's file.
var bundleExtensions = []string{".json", ".yaml", ".yml"}

// FS loads bundles from a filesystem tree laid out as <dir>/<locale>.json
// (or .yaml/.yml). It works with embed.FS, os.DirFS and test fixtures alike.
type FS struct {
	fsys fs.FS
	dir  string
}

// FSOption configures an FS loader.
type FSOption func(*FS)

// WithDir sets the subdirectory bundle files live in.
func WithDir(dir string) FSOption {
	return func(l *FS) {
		l.dir = dir
	}
}

// NewFS creates a filesystem-backed bundle loader.
func NewFS(fsys fs.FS, opts ...FSOption) *FS {
	l := &FS{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the bundle file for a locale.
func (l *FS) Load(ctx context.Context, locale string) (lingo.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ext := range bundleExtensions {
		name := locale + ext
		if l.dir != "" {
			name = l.dir + "/" + name
		}

		data, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			continue
		}
		return decodeBundle(name, data)
	}

	return nil, fmt.Errorf("%w: locale %q", ErrBundleNotFound, locale)
}

var _ lingo.Loader = (*FS)(nil)
