package lingo

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"golang.org/x/text/number"
)

// M is the parameter map passed to translation calls.
type M map[string]any

// placeholderPattern matches {identifier} and {identifier:formatSpec}
// placeholders. Identifiers are alphanumeric/underscore; the spec portion may
// contain anything but braces except a trailing JSON object, which is handled
// by the scanner below.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)(?::([^{}]*(?:\{[^{}]*\})?[^{}]*))?\}`)

// Render substitutes every placeholder in template with its formatted
// parameter value. Missing parameters render as an empty string, or as a
// visible marker in debug mode. A placeholder that cannot be formatted
// degrades to the plain stringified value; errors never escape.
func Render(template string, params M, locale string, f *Formatter, debug bool) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name, spec := groups[1], groups[2]

		value, ok := params[name]
		if !ok {
			if debug {
				return "[missing param: " + name + "]"
			}
			return ""
		}
		if value == nil {
			return ""
		}

		return f.formatValue(value, spec, locale)
	})
}

// formatValue renders one parameter value according to its detected kind and
// the placeholder's format spec.
func (f *Formatter) formatValue(value any, spec, locale string) string {
	// []byte is text, not a list of numbers.
	if b, ok := value.([]byte); ok {
		value = string(b)
	}

	if items, ok := asList(value); ok {
		// Arrays always join with ", "; there is no locale-aware list
		// primitive to defer to.
		return strings.Join(items, ", ")
	}

	if spec == "" {
		return plainString(value)
	}

	if t, ok := value.(time.Time); ok {
		return f.formatDateValue(t, spec, locale)
	}
	if t, ok := value.(*time.Time); ok && t != nil {
		return f.formatDateValue(*t, spec, locale)
	}

	if n, ok := toFloat(value); ok {
		if isDateSpec(spec) {
			return f.formatDateValue(timeFromStamp(n), spec, locale)
		}
		return f.formatNumberValue(n, spec, locale)
	}

	if s, ok := value.(string); ok {
		if isDateSpec(spec) {
			t, err := dateparse.ParseAny(s)
			if err != nil {
				return s
			}
			return f.formatDateValue(t, spec, locale)
		}
		return s
	}

	return plainString(value)
}

func (f *Formatter) formatDateValue(t time.Time, spec, locale string) string {
	switch spec {
	case "date":
		return f.Date(locale, t)
	case "time":
		return f.Time(locale, t)
	case "datetime":
		return f.DateTime(locale, t)
	case "relative":
		return f.Relative(locale, t)
	}

	// Anything else is tried as a JSON options object, then falls back to a
	// full locale-aware date-time string.
	var opts dateOptions
	if err := json.Unmarshal([]byte(spec), &opts); err == nil {
		if opts.Layout != "" {
			return t.Format(opts.Layout)
		}
		switch opts.Style {
		case "date":
			return f.Date(locale, t)
		case "time":
			return f.Time(locale, t)
		}
	}
	return f.DateTime(locale, t)
}

func (f *Formatter) formatNumberValue(n float64, spec, locale string) string {
	switch spec {
	case "integer":
		return f.Integer(locale, n)
	case "percent":
		return f.Percent(locale, n)
	case "currency":
		return f.Currency(locale, "", n)
	}

	if digits, err := strconv.Atoi(spec); err == nil && digits >= 0 {
		return f.Number(locale, n, number.Scale(digits))
	}

	if strings.HasPrefix(spec, "{") {
		var opts numberOptions
		if err := json.Unmarshal([]byte(spec), &opts); err == nil {
			return f.formatWithNumberOptions(n, opts, locale)
		}
		return plainString(n)
	}

	// Unrecognized specs fall back to default locale-aware formatting.
	return f.Number(locale, n)
}

func (f *Formatter) formatWithNumberOptions(n float64, opts numberOptions, locale string) string {
	switch opts.Style {
	case "currency":
		return f.Currency(locale, opts.Currency, n)
	case "percent":
		return f.Percent(locale, n)
	}

	var numOpts []number.Option
	if opts.MinimumFractionDigits != nil {
		numOpts = append(numOpts, number.MinFractionDigits(*opts.MinimumFractionDigits))
	}
	if opts.MaximumFractionDigits != nil {
		numOpts = append(numOpts, number.MaxFractionDigits(*opts.MaximumFractionDigits))
	}
	return f.Number(locale, n, numOpts...)
}

// dateOptions is the JSON options shape accepted in a date placeholder spec.
type dateOptions struct {
	Layout string `json:"layout"`
	Style  string `json:"style"`
}

// numberOptions is the JSON options shape accepted in a numeric placeholder
// spec. Field names follow the bundle file convention.
type numberOptions struct {
	Style                 string `json:"style"`
	Currency              string `json:"currency"`
	MinimumFractionDigits *int   `json:"minimumFractionDigits"`
	MaximumFractionDigits *int   `json:"maximumFractionDigits"`
}

func isDateSpec(spec string) bool {
	switch spec {
	case "date", "time", "datetime", "relative":
		return true
	}
	return false
}

// timeFromStamp interprets a numeric timestamp as Unix milliseconds when it is
// too large to be a plausible seconds value.
func timeFromStamp(n float64) time.Time {
	v := int64(n)
	if v >= 1e12 {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func asList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = plainString(item)
		}
		return items, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]string, rv.Len())
	for i := range rv.Len() {
		items[i] = plainString(rv.Index(i).Interface())
	}
	return items, true
}

func plainString(value any) string {
	if value == nil {
		return ""
	}
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprintf("%v", value)
}
