package lingo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lingokit/lingo"
)

var renderClock = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testFormatter() *lingo.Formatter {
	return lingo.NewFormatter(lingo.WithNow(func() time.Time { return renderClock }))
}

func TestRender(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	t.Run("template without placeholders is unchanged", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("Nothing to see here.", lingo.M{"name": "x"}, "en", f, false)
		assert.Equal(t, "Nothing to see here.", out)
	})

	t.Run("plain substitution", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{count} items", lingo.M{"count": 5}, "en", f, false)
		assert.Equal(t, "5 items", out)
	})

	t.Run("missing parameter renders empty", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("Hello, {name}!", lingo.M{}, "en", f, false)
		assert.Equal(t, "Hello, !", out)
	})

	t.Run("missing parameter is visible in debug mode", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("Hello, {name}!", lingo.M{}, "en", f, true)
		assert.Contains(t, out, "name")
		assert.NotEqual(t, "Hello, !", out)
	})

	t.Run("nil parameter renders empty regardless of spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("at {when:date}", lingo.M{"when": nil}, "en", f, false)
		assert.Equal(t, "at ", out)
	})

	t.Run("multiple placeholders", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{a} and {b}", lingo.M{"a": "x", "b": "y"}, "en", f, false)
		assert.Equal(t, "x and y", out)
	})
}

func TestRenderDates(t *testing.T) {
	t.Parallel()

	f := testFormatter()
	when := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	t.Run("date spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": when}, "en", f, false)
		assert.Equal(t, "03/01/2024", out)
	})

	t.Run("date spec respects locale", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": when}, "de", f, false)
		assert.Equal(t, "01.03.2024", out)
	})

	t.Run("time spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:time}", lingo.M{"when": when}, "en", f, false)
		assert.Equal(t, "2:30 PM", out)
	})

	t.Run("datetime spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:datetime}", lingo.M{"when": when}, "de", f, false)
		assert.Equal(t, "01.03.2024 14:30", out)
	})

	t.Run("numeric timestamp in seconds", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": when.Unix()}, "en", f, false)
		assert.Equal(t, "03/01/2024", out)
	})

	t.Run("numeric timestamp in milliseconds", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": when.UnixMilli()}, "en", f, false)
		assert.Equal(t, "03/01/2024", out)
	})

	t.Run("parseable string date", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": "2024-03-01"}, "en", f, false)
		assert.Equal(t, "03/01/2024", out)
	})

	t.Run("unparseable string degrades to raw value", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:date}", lingo.M{"when": "not a date"}, "en", f, false)
		assert.Equal(t, "not a date", out)
	})

	t.Run("json layout options", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render(`{when:{"layout":"2006-01-02"}}`, lingo.M{"when": when}, "en", f, false)
		assert.Equal(t, "2024-03-01", out)
	})

	t.Run("unknown spec falls back to full datetime", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:whatever}", lingo.M{"when": when}, "en", f, false)
		assert.Equal(t, "03/01/2024 2:30 PM", out)
	})
}

func TestRenderRelative(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	cases := []struct {
		name string
		when time.Time
		want string
	}{
		{"seconds ago", renderClock.Add(-30 * time.Second), "just now"},
		{"minutes ago", renderClock.Add(-5 * time.Minute), "5 minutes ago"},
		{"one minute ago", renderClock.Add(-90 * time.Second), "1 minute ago"},
		{"hours ago", renderClock.Add(-3 * time.Hour), "3 hours ago"},
		{"days ago", renderClock.Add(-48 * time.Hour), "2 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := lingo.Render("{when:relative}", lingo.M{"when": tc.when}, "en", f, false)
			assert.Equal(t, tc.want, out)
		})
	}

	t.Run("older than thirty days is an absolute date", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{when:relative}", lingo.M{"when": renderClock.Add(-45 * 24 * time.Hour)}, "en", f, false)
		assert.Equal(t, "05/01/2024", out)
	})
}

func TestRenderNumbers(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	t.Run("integer spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:integer}", lingo.M{"v": 1234.4}, "en", f, false)
		assert.Equal(t, "1,234", out)
	})

	t.Run("percent spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:percent}", lingo.M{"v": 0.5}, "en", f, false)
		assert.Equal(t, "50%", out)
	})

	t.Run("currency spec uses default currency", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:currency}", lingo.M{"v": 12.5}, "en", f, false)
		assert.Contains(t, out, "$")
		assert.Contains(t, out, "12.50")
	})

	t.Run("fixed fraction digits", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:2}", lingo.M{"v": 3.14159}, "en", f, false)
		assert.Equal(t, "3.14", out)
	})

	t.Run("json options with currency style", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render(`{v:{"style":"currency","currency":"EUR"}}`, lingo.M{"v": 9.99}, "en", f, false)
		assert.Contains(t, out, "9.99")
	})

	t.Run("invalid json options degrade to plain value", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render(`{v:{"style":}}`, lingo.M{"v": 7.5}, "en", f, false)
		assert.Equal(t, "7.5", out)
	})

	t.Run("unrecognized spec falls back to locale default", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:wibble}", lingo.M{"v": 1234.5}, "en", f, false)
		assert.Equal(t, "1,234.5", out)
	})

	t.Run("locale-sensitive separators", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:wibble}", lingo.M{"v": 1234.5}, "de", f, false)
		assert.Equal(t, "1.234,5", out)
	})
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	t.Run("list spec joins with comma and space", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:list}", lingo.M{"v": []string{"a", "b", "c"}}, "en", f, false)
		assert.Equal(t, "a, b, c", out)
	})

	t.Run("arrays join regardless of spec", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:integer}", lingo.M{"v": []any{1, 2, 3}}, "en", f, false)
		assert.Equal(t, "1, 2, 3", out)
	})

	t.Run("typed slices join", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v}", lingo.M{"v": []int{4, 5}}, "en", f, false)
		assert.Equal(t, "4, 5", out)
	})

	t.Run("byte slices render as text", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v}", lingo.M{"v": []byte("hello")}, "en", f, false)
		assert.Equal(t, "hello", out)
	})
}

func TestRenderOtherKinds(t *testing.T) {
	t.Parallel()

	f := testFormatter()

	t.Run("bool with spec is stringified", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:integer}", lingo.M{"v": true}, "en", f, false)
		assert.Equal(t, "true", out)
	})

	t.Run("string with numeric spec stays plain", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v:integer}", lingo.M{"v": "abc"}, "en", f, false)
		assert.Equal(t, "abc", out)
	})

	t.Run("json-decoded float renders without exponent", func(t *testing.T) {
		t.Parallel()
		out := lingo.Render("{v}", lingo.M{"v": float64(5)}, "en", f, false)
		assert.Equal(t, "5", out)
	})
}
