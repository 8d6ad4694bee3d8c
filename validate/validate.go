// Package validate checks the structure of a translation bundle before it
// ships: plural-object completeness, allowed date-format tokens and
// placeholder syntax. It works on the raw decoded file (map[string]any), is
// independent of the runtime, and is meant for build or CI steps.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Issue is one structural problem found in a bundle. Path addresses the
// offending node as a sequence of keys and array indices.
type Issue struct {
	Path    []string
	Message string

	// Token is set for date-format issues and carries the offending token.
	Token string
}

func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// Config controls what the validator accepts.
type Config struct {
	// PluralKeys names the keys whose children are plural containers.
	PluralKeys []string

	// IsPluralKey is a predicate alternative to PluralKeys; when set it takes
	// precedence.
	IsPluralKey func(key string) bool

	// RequiredCategories must all be present in a plural container.
	// Defaults to one and other.
	RequiredCategories []string

	// OptionalCategories may be present in a plural container. Defaults to
	// zero, two, few and many.
	OptionalCategories []string

	// AllowedDateFormats are the tokens accepted in {date:token} placeholders.
	// Defaults to date and relative.
	AllowedDateFormats []string

	// CheckPlaceholders additionally validates that placeholder identifiers
	// are alphanumeric/underscore. Placeholders that do not match the {...}
	// shape at all are not flagged; only tokens that already look like
	// placeholders are checked.
	CheckPlaceholders bool
}

var (
	dateTokenPattern   = regexp.MustCompile(`\{date:([^{}]*)\}`)
	placeholderShape   = regexp.MustCompile(`\{([^{}]+)\}`)
	identifierPattern  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	defaultRequired    = []string{"one", "other"}
	defaultOptional    = []string{"zero", "two", "few", "many"}
	defaultDateFormats = []string{"date", "relative"}
)

// Validate walks the bundle tree and returns every structural issue found.
// An empty result means the bundle is valid. The bundle is never mutated.
func Validate(bundle map[string]any, cfg Config) []Issue {
	w := newWalker(cfg)
	w.walkMap(bundle, nil)
	return w.issues
}

type walker struct {
	isPlural   func(string) bool
	allowedCat map[string]bool
	required   []string
	dateTokens map[string]bool
	checkPH    bool
	issues     []Issue
}

func newWalker(cfg Config) *walker {
	required := cfg.RequiredCategories
	if required == nil {
		required = defaultRequired
	}
	optional := cfg.OptionalCategories
	if optional == nil {
		optional = defaultOptional
	}
	dateFormats := cfg.AllowedDateFormats
	if dateFormats == nil {
		dateFormats = defaultDateFormats
	}

	allowed := make(map[string]bool, len(required)+len(optional))
	for _, cat := range required {
		allowed[cat] = true
	}
	for _, cat := range optional {
		allowed[cat] = true
	}

	tokens := make(map[string]bool, len(dateFormats))
	for _, t := range dateFormats {
		tokens[t] = true
	}

	isPlural := cfg.IsPluralKey
	if isPlural == nil {
		names := make(map[string]bool, len(cfg.PluralKeys))
		for _, k := range cfg.PluralKeys {
			names[k] = true
		}
		isPlural = func(key string) bool { return names[key] }
	}

	return &walker{
		isPlural:   isPlural,
		allowedCat: allowed,
		required:   required,
		dateTokens: tokens,
		checkPH:    cfg.CheckPlaceholders,
	}
}

func (w *walker) walkMap(node map[string]any, path []string) {
	for _, key := range sortedKeys(node) {
		childPath := append(path, key)
		child := node[key]

		if w.isPlural(key) {
			w.checkPluralContainer(child, childPath)
			continue
		}

		w.walkValue(child, childPath)
	}
}

func (w *walker) walkValue(value any, path []string) {
	switch v := value.(type) {
	case string:
		w.checkTemplate(v, path)
	case map[string]any:
		w.walkMap(v, path)
	case []any:
		// The runtime bundle parser rejects arrays, so the offline gate must
		// too. Items are still walked for any further issues they contain.
		w.report(path, "arrays are not allowed in bundles")
		for i, item := range v {
			w.walkValue(item, append(path, strconv.Itoa(i)))
		}
	}
}

func (w *walker) checkPluralContainer(value any, path []string) {
	container, ok := value.(map[string]any)
	if !ok {
		w.report(path, "plural key must map categories to strings")
		return
	}

	for _, category := range sortedKeys(container) {
		catPath := append(path, category)

		if !w.allowedCat[category] {
			w.report(catPath, fmt.Sprintf("invalid plural category %q", category))
		}

		s, isString := container[category].(string)
		if !isString {
			w.report(catPath, "must be a string")
			continue
		}
		w.checkTemplate(s, catPath)
	}

	var missing []string
	for _, category := range w.required {
		if _, present := container[category]; !present {
			missing = append(missing, category)
		}
	}
	if len(missing) > 0 {
		w.report(path, "missing required categories: "+strings.Join(missing, ", "))
	}
}

func (w *walker) checkTemplate(template string, path []string) {
	for _, match := range dateTokenPattern.FindAllStringSubmatch(template, -1) {
		token := match[1]
		if !w.dateTokens[token] {
			w.issues = append(w.issues, Issue{
				Path:    clonePath(path),
				Message: fmt.Sprintf("unknown date format %q", token),
				Token:   token,
			})
		}
	}

	if !w.checkPH {
		return
	}

	for _, match := range placeholderShape.FindAllStringSubmatch(template, -1) {
		identifier, _, _ := strings.Cut(match[1], ":")
		if !identifierPattern.MatchString(identifier) {
			w.report(path, fmt.Sprintf("malformed placeholder identifier %q", identifier))
		}
	}
}

func (w *walker) report(path []string, message string) {
	w.issues = append(w.issues, Issue{Path: clonePath(path), Message: message})
}

func clonePath(path []string) []string {
	return append([]string(nil), path...)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
