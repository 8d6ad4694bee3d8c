package lingo

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxHintLength bounds the environment hint we are willing to parse.
const maxHintLength = 4096

type hintedLocale struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage matches an Accept-Language style hint against the
// supported locale set and returns the best match. Quality values are
// honored; a base-language match ("en" vs "en-US") counts when no exact
// match exists. Returns "" when the hint matches none of the supported
// locales, when the hint is empty, or when the supported set is empty, so
// callers can fall through to their own default.
func ParseAcceptLanguage(hint string, supported []string) string {
	if len(supported) == 0 || hint == "" {
		return ""
	}

	hinted := parseLocaleHints(hint)

	best := ""
	bestQuality := -1.0
	bestExact := false

	for _, candidate := range supported {
		normalized := normalizeLocale(candidate)

		for _, h := range hinted {
			exact := h.tag == normalized
			if !exact && baseLocale(h.tag) != baseLocale(normalized) {
				continue
			}

			better := h.quality > bestQuality ||
				(h.quality == bestQuality && exact && !bestExact)
			if better {
				best = candidate
				bestQuality = h.quality
				bestExact = exact
			}
			break
		}
	}

	return best
}

func parseLocaleHints(hint string) []hintedLocale {
	if len(hint) > maxHintLength {
		hint = hint[:maxHintLength]
	}

	var hinted []hintedLocale
	for part := range strings.SplitSeq(hint, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tag, qPart, hasQuality := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if after, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(after, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tag != "" && tag != "*" {
			hinted = append(hinted, hintedLocale{tag: normalizeLocale(tag), quality: quality})
		}
	}

	slices.SortStableFunc(hinted, func(a, b hintedLocale) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return hinted
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
