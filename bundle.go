package lingo

import (
	"fmt"
	"strconv"
)

// Node is one node of a translation bundle tree. A node is exactly one of:
//
//   - Leaf: a template string
//   - PluralLeaf: a map from plural category to template string
//   - Branch: a map from key to sub-tree
//
// The resolver and renderer switch on the concrete type rather than
// re-inspecting raw map shapes on every lookup.
type Node interface {
	isNode()
}

// Leaf is a single template string.
type Leaf string

// PluralLeaf maps plural category names (zero, one, two, few, many, other)
// to template strings.
type PluralLeaf map[string]string

// Branch is an interior node mapping keys to sub-trees.
type Branch map[string]Node

func (Leaf) isNode()       {}
func (PluralLeaf) isNode() {}
func (Branch) isNode()     {}

// Bundle is the full translation tree for one locale.
type Bundle = Branch

// ParseBundle converts a raw decoded translation file (JSON or YAML) into a
// typed bundle tree. A mapping whose keys are all plural categories and whose
// values are all strings becomes a PluralLeaf; any other mapping becomes a
// Branch. Scalar values are stringified into leaves so that numeric or boolean
// file entries still resolve.
func ParseBundle(data map[string]any) (Bundle, error) {
	return parseBranch(data, "")
}

func parseBranch(data map[string]any, path string) (Branch, error) {
	branch := make(Branch, len(data))
	for key, value := range data {
		node, err := parseNode(value, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		branch[key] = node
	}
	return branch, nil
}

func parseNode(value any, path string) (Node, error) {
	switch v := value.(type) {
	case string:
		return Leaf(v), nil
	case map[string]any:
		if pl, ok := asPluralLeaf(v); ok {
			return pl, nil
		}
		return parseBranch(v, path)
	case map[string]string:
		if pl, ok := asPluralStringLeaf(v); ok {
			return pl, nil
		}
		branch := make(Branch, len(v))
		for key, s := range v {
			branch[key] = Leaf(s)
		}
		return branch, nil
	case bool:
		return Leaf(strconv.FormatBool(v)), nil
	case nil:
		return Leaf(""), nil
	case []any:
		return nil, fmt.Errorf("%w: array at %q", ErrInvalidBundle, path)
	default:
		return Leaf(fmt.Sprintf("%v", v)), nil
	}
}

// asPluralLeaf reports whether a raw mapping is a plural container: non-empty,
// every key a plural category, every value a string.
func asPluralLeaf(m map[string]any) (PluralLeaf, bool) {
	if len(m) == 0 {
		return nil, false
	}
	pl := make(PluralLeaf, len(m))
	for key, value := range m {
		s, isString := value.(string)
		if !isString || !isPluralCategory(key) {
			return nil, false
		}
		pl[key] = s
	}
	return pl, true
}

func asPluralStringLeaf(m map[string]string) (PluralLeaf, bool) {
	if len(m) == 0 {
		return nil, false
	}
	for key := range m {
		if !isPluralCategory(key) {
			return nil, false
		}
	}
	return PluralLeaf(m), true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
