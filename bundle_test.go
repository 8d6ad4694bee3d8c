package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingokit/lingo"
)

func TestParseBundle(t *testing.T) {
	t.Parallel()

	t.Run("strings become leaves", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{"hello": "Hello"})
		require.NoError(t, err)
		assert.Equal(t, lingo.Leaf("Hello"), bundle["hello"])
	})

	t.Run("nested maps become branches", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{
			"menu": map[string]any{
				"file": map[string]any{"open": "Open"},
			},
		})
		require.NoError(t, err)

		menu, ok := bundle["menu"].(lingo.Branch)
		require.True(t, ok)
		file, ok := menu["file"].(lingo.Branch)
		require.True(t, ok)
		assert.Equal(t, lingo.Leaf("Open"), file["open"])
	})

	t.Run("all-category string maps become plural leaves", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{
			"items": map[string]any{
				"one":   "1 item",
				"other": "{count} items",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, lingo.PluralLeaf{"one": "1 item", "other": "{count} items"}, bundle["items"])
	})

	t.Run("category names mixed with other keys stay a branch", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{
			"page": map[string]any{
				"one":   "First",
				"title": "Title",
			},
		})
		require.NoError(t, err)

		page, ok := bundle["page"].(lingo.Branch)
		require.True(t, ok)
		assert.Equal(t, lingo.Leaf("First"), page["one"])
		assert.Equal(t, lingo.Leaf("Title"), page["title"])
	})

	t.Run("category keys with non-string values stay a branch", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{
			"weird": map[string]any{
				"one":   map[string]any{"deep": "x"},
				"other": "y",
			},
		})
		require.NoError(t, err)
		_, ok := bundle["weird"].(lingo.Branch)
		assert.True(t, ok)
	})

	t.Run("scalars are stringified", func(t *testing.T) {
		t.Parallel()
		bundle, err := lingo.ParseBundle(map[string]any{
			"answer":  42,
			"enabled": true,
		})
		require.NoError(t, err)
		assert.Equal(t, lingo.Leaf("42"), bundle["answer"])
		assert.Equal(t, lingo.Leaf("true"), bundle["enabled"])
	})

	t.Run("arrays are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := lingo.ParseBundle(map[string]any{"bad": []any{"a", "b"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, lingo.ErrInvalidBundle)
	})
}
