// Package loader provides bundle loader implementations for the lingo
// runtime: local filesystem trees, HTTP endpoints and S3-compatible object
// storage. Every loader decodes the raw file and returns a parsed bundle
// tree.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lingokit/lingo"
)

var (
	// ErrBundleNotFound is returned when no bundle file exists for a locale.
	ErrBundleNotFound = errors.New("loader: bundle not found")

	// ErrDecode is returned when a bundle file cannot be decoded.
	ErrDecode = errors.New("loader: failed to decode bundle")
)

func decodeBundle(name string, data []byte) (lingo.Bundle, error) {
	var raw map[string]any

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
		}
	}

	bundle, err := lingo.ParseBundle(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	return bundle, nil
}
