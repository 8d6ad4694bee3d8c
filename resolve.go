package lingo

import "strings"

// Resolve looks up a dot-path key, first in the active locale's bundle and
// then, when the key is absent and the locales differ, in the fallback
// locale's bundle. The returned node is a Leaf or PluralLeaf; a path that
// ends on a branch, passes through a leaf, or misses entirely yields ok=false.
//
// Resolution is always fresh: no value caching, so edits to loaded bundles
// are observed by the next call.
func Resolve(key, activeLocale, fallbackLocale string, store *Store) (Node, bool) {
	if bundle, ok := store.Get(activeLocale); ok {
		if node, found := lookup(bundle, key); found {
			return node, true
		}
	}

	if activeLocale != fallbackLocale {
		if bundle, ok := store.Get(fallbackLocale); ok {
			return lookup(bundle, key)
		}
	}

	return nil, false
}

func lookup(bundle Bundle, key string) (Node, bool) {
	var current Node = bundle

	for segment := range strings.SplitSeq(key, ".") {
		branch, ok := current.(Branch)
		if !ok {
			return nil, false
		}
		current, ok = branch[segment]
		if !ok {
			return nil, false
		}
	}

	switch current.(type) {
	case Leaf, PluralLeaf:
		return current, true
	default:
		return nil, false
	}
}
