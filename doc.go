// Package lingo resolves localized text for an application: given a dot-path
// key, optional named parameters and an optional count, it produces a display
// string in the active locale, falling back gracefully when data is missing.
//
// # Basic Usage
//
// Create a Localizer around a bundle loader and preseed the fallback bundle:
//
//	en, _ := lingo.ParseBundle(map[string]any{
//		"greeting": "Hello, {name}!",
//		"inbox": map[string]any{
//			"unread": map[string]any{
//				"one":   "You have {count} unread message",
//				"other": "You have {count} unread messages",
//			},
//		},
//	})
//
//	loc, err := lingo.New(loader.NewFS(bundleFS),
//		lingo.WithBundle("en", en),
//	)
//
//	loc.T("greeting", lingo.M{"name": "Ada"})
//	loc.TN("inbox.unread", 3)
//
// Translate calls are synchronous, operate only on loaded bundles, and never
// fail: missing keys, parameters and malformed format specs all degrade to a
// plain string.
//
// # Placeholders
//
// Templates interpolate {identifier} and {identifier:formatSpec} tokens.
// The format spec selects locale-aware rendering for the parameter value:
// date, time, datetime and relative for date-like values; integer, percent,
// currency, a fixed fraction-digit count, or a JSON options object for
// numbers; list for slices. Unrecognized specs fall back to default
// formatting for the value's kind.
//
// # Switching Locales
//
// SwitchLocale activates a locale, loading its bundle through the injected
// loader when needed. The active locale is set optimistically before the
// load completes; failed loads revert to the fallback locale and are
// remembered so they are not retried. Overlapping switches follow strict
// last-request-wins semantics.
//
// Bundle structure is validated offline by the validate package, and bundle
// loading implementations live in the loader package.
package lingo
