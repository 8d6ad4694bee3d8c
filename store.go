package lingo

import "sync"

// Store holds loaded translation bundles keyed by locale. Entries are added
// by successful loads and overwritten by fresh loads; they are never removed.
// It is safe for concurrent use: the controller writes, translation calls read.
type Store struct {
	mu      sync.RWMutex
	bundles map[string]Bundle
}

// NewStore creates an empty bundle store.
func NewStore() *Store {
	return &Store{bundles: make(map[string]Bundle)}
}

// Get returns the bundle for a locale, if loaded.
func (s *Store) Get(locale string) (Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bundles[locale]
	return b, ok
}

// Set stores a bundle for a locale, replacing any previous one.
func (s *Store) Set(locale string, bundle Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[locale] = bundle
}

// Has reports whether a bundle is loaded for the locale.
func (s *Store) Has(locale string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bundles[locale]
	return ok
}

// Locales returns the locales that currently have a loaded bundle.
func (s *Store) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	locales := make([]string, 0, len(s.bundles))
	for locale := range s.bundles {
		locales = append(locales, locale)
	}
	return locales
}
