// Package prefstore provides persisted-preference stores for the chosen
// locale: an in-process map for tests and single-node tools, and a Redis
// backend for shared deployments. Both satisfy lingo.PreferenceStore.
package prefstore

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("prefstore: not found")
