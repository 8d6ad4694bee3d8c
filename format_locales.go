package lingo

import "strings"

// fallbackDateLayouts is used for locales with no registry entry.
var fallbackDateLayouts = DateLayouts{
	Date:     "01/02/2006",
	Time:     "3:04 PM",
	DateTime: "01/02/2006 3:04 PM",
}

// defaultDateLayouts returns the built-in layout registry. Entries are keyed
// by base language unless a region changes the convention (en-GB, pt-BR).
func defaultDateLayouts() map[string]DateLayouts {
	return map[string]DateLayouts{
		"en": {
			Date:     "01/02/2006",
			Time:     "3:04 PM",
			DateTime: "01/02/2006 3:04 PM",
		},
		"en-GB": {
			Date:     "02/01/2006",
			Time:     "15:04",
			DateTime: "02/01/2006 15:04",
		},
		"de": {
			Date:     "02.01.2006",
			Time:     "15:04",
			DateTime: "02.01.2006 15:04",
		},
		"fr": {
			Date:     "02/01/2006",
			Time:     "15:04",
			DateTime: "02/01/2006 15:04",
		},
		"es": {
			Date:     "02/01/2006",
			Time:     "15:04",
			DateTime: "02/01/2006 15:04",
		},
		"it": {
			Date:     "02/01/2006",
			Time:     "15:04",
			DateTime: "02/01/2006 15:04",
		},
		"pt-BR": {
			Date:     "02/01/2006",
			Time:     "15:04",
			DateTime: "02/01/2006 15:04",
		},
		"pl": {
			Date:     "02.01.2006",
			Time:     "15:04",
			DateTime: "02.01.2006 15:04",
		},
		"ru": {
			Date:     "02.01.2006",
			Time:     "15:04",
			DateTime: "02.01.2006 15:04",
		},
		"ja": {
			Date:     "2006/01/02",
			Time:     "15:04",
			DateTime: "2006/01/02 15:04",
		},
		"zh": {
			Date:     "2006-01-02",
			Time:     "15:04",
			DateTime: "2006-01-02 15:04",
		},
		"ko": {
			Date:     "2006.01.02",
			Time:     "15:04",
			DateTime: "2006.01.02 15:04",
		},
	}
}

// baseLocale strips the region from a locale identifier ("en-US" to "en").
// Returns the input unchanged if there is no region.
func baseLocale(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
