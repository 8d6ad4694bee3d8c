package loader_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo"
	"github.com/lingokit/lingo/loader"
)

func TestFSLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{
			"title": "Home",
			"itemCount": {"one": "{count} item", "other": "{count} items"}
		}`)},
		"de.yaml": &fstest.MapFile{Data: []byte("title: Startseite\n")},
		"locales/fr.json": &fstest.MapFile{Data: []byte(`{"title": "Accueil"}`)},
		"broken.json":     &fstest.MapFile{Data: []byte(`{"title":`)},
	}

	t.Run("loads json bundle", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys)

		bundle, err := l.Load(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, lingo.Leaf("Home"), bundle["title"])
		assert.Equal(t, lingo.PluralLeaf{
			"one":   "{count} item",
			"other": "{count} items",
		}, bundle["itemCount"])
	})

	t.Run("loads yaml bundle", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys)

		bundle, err := l.Load(context.Background(), "de")
		require.NoError(t, err)
		assert.Equal(t, lingo.Leaf("Startseite"), bundle["title"])
	})

	t.Run("subdirectory via WithDir", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys, loader.WithDir("locales"))

		bundle, err := l.Load(context.Background(), "fr")
		require.NoError(t, err)
		assert.Equal(t, lingo.Leaf("Accueil"), bundle["title"])
	})

	t.Run("missing locale", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys)

		_, err := l.Load(context.Background(), "pt")
		require.ErrorIs(t, err, loader.ErrBundleNotFound)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys)

		_, err := l.Load(context.Background(), "broken")
		require.ErrorIs(t, err, loader.ErrDecode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		l := loader.NewFS(fsys)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := l.Load(ctx, "en")
		require.ErrorIs(t, err, context.Canceled)
	})
}
