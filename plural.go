package lingo

// Plural category constants as defined by Unicode CLDR.
// Bundles may carry any of these; selection only ever picks between
// PluralOne and PluralOther (see SelectPlural).
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategories lists every category a bundle may carry, in CLDR order.
func PluralCategories() []string {
	return []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}
}

func isPluralCategory(key string) bool {
	switch key {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

// SelectPlural picks the template to render for a count. The rule is the
// two-bucket one/other split: richer categories (zero, two, few, many) are
// stored but never chosen by count alone. If the chosen category is absent
// the "other" template is used; if that is also absent, ok is false.
func SelectPlural(pl PluralLeaf, count int) (string, bool) {
	category := PluralOther
	if count == 1 {
		category = PluralOne
	}

	if tmpl, exists := pl[category]; exists {
		return tmpl, true
	}
	if tmpl, exists := pl[PluralOther]; exists {
		return tmpl, true
	}
	return "", false
}
