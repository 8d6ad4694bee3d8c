package lingo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Loader fetches the translation bundle for a locale. It is the sole I/O
// boundary the runtime depends on; implementations may read files, hit the
// network or return fixtures. Load must return an error on failure.
type Loader interface {
	Load(ctx context.Context, locale string) (Bundle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, locale string) (Bundle, error)

func (f LoaderFunc) Load(ctx context.Context, locale string) (Bundle, error) {
	return f(ctx, locale)
}

// PreferenceStore persists the user's chosen locale. Used only by
// InitializeLocale and the switch path, and only when persistence is enabled.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Localizer owns the active locale, the bundle store and the load-failure
// set, and exposes the translation entry points. Multiple independent
// instances may coexist; nothing is process-global.
//
// Translate calls are synchronous and operate only on already loaded
// bundles. SwitchLocale is the one suspending operation; overlapping calls
// follow strict last-request-wins semantics (see SwitchLocale).
type Localizer struct {
	mu        sync.RWMutex
	cfg       Config
	active    string
	failed    map[string]bool
	supported []string

	store       *Store
	loader      Loader
	prefs       PreferenceStore
	formatter   *Formatter
	log         *slog.Logger
	browserHint string

	switchSeq atomic.Uint64
}

// Option configures a Localizer during construction.
type Option func(*Localizer) error

// New creates a Localizer around the given bundle loader. The fallback
// locale's bundle should be preseeded with WithBundle before the first
// translation call.
func New(loader Loader, opts ...Option) (*Localizer, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	l := &Localizer{
		cfg:       DefaultConfig(),
		failed:    make(map[string]bool),
		store:     NewStore(),
		loader:    loader,
		formatter: NewFormatter(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	l.active = l.cfg.FallbackLocale

	return l, nil
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(l *Localizer) error {
		if cfg.FallbackLocale == "" {
			return ErrEmptyLocale
		}
		l.cfg = cfg
		return nil
	}
}

// WithBundle preseeds the store with a bundle, typically the fallback
// locale's.
func WithBundle(locale string, bundle Bundle) Option {
	return func(l *Localizer) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		l.store.Set(locale, bundle)
		return nil
	}
}

// WithPreferenceStore sets the store used to persist the chosen locale.
func WithPreferenceStore(ps PreferenceStore) Option {
	return func(l *Localizer) error {
		l.prefs = ps
		return nil
	}
}

// WithLogger sets the logger for switch diagnostics. Defaults to a discard
// logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Localizer) error {
		if log != nil {
			l.log = log
		}
		return nil
	}
}

// WithFormatter replaces the default formatter.
func WithFormatter(f *Formatter) Option {
	return func(l *Localizer) error {
		if f != nil {
			l.formatter = f
		}
		return nil
	}
}

// WithBrowserHint sets the environment locale hint (an Accept-Language style
// string) consulted by InitializeLocale.
func WithBrowserHint(hint string) Option {
	return func(l *Localizer) error {
		l.browserHint = hint
		return nil
	}
}

// WithSupportedLocales declares the closed set of locales the application
// ships bundles for. Used to match the browser hint during initialization.
func WithSupportedLocales(locales ...string) Option {
	return func(l *Localizer) error {
		l.supported = append([]string(nil), locales...)
		return nil
	}
}

// T resolves and renders the template for a dot-path key. It never fails:
// a missing key degrades to the key's last path segment, or to a bracketed
// key in debug mode. A plural-object value without a count renders its
// "other" branch.
func (l *Localizer) T(key string, params ...M) string {
	return l.translate(key, mergeParams(params), false, 0)
}

// TN resolves a pluralized key for a count. The count is also injected as
// the "count" parameter for interpolation.
func (l *Localizer) TN(key string, count int, params ...M) string {
	merged := mergeParams(params)
	if _, exists := merged["count"]; !exists {
		merged["count"] = count
	}
	return l.translate(key, merged, true, count)
}

func (l *Localizer) translate(key string, params M, hasCount bool, count int) string {
	l.mu.RLock()
	active := l.active
	fallback := l.cfg.FallbackLocale
	debug := l.cfg.Debug
	l.mu.RUnlock()

	node, ok := Resolve(key, active, fallback, l.store)
	if !ok {
		return l.missingKey(key, debug)
	}

	var template string
	switch n := node.(type) {
	case Leaf:
		template = string(n)
	case PluralLeaf:
		// Without a count the one/other split resolves to "other".
		c := 0
		if hasCount {
			c = count
		}
		template, ok = SelectPlural(n, c)
		if !ok {
			l.log.Warn("missing plural form", slog.String("key", key), slog.String("locale", active))
			return l.missingKey(key, debug)
		}
	}

	return Render(template, params, active, l.formatter, debug)
}

func (l *Localizer) missingKey(key string, debug bool) string {
	if debug {
		return "[" + key + "]"
	}
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// ActiveLocale returns the locale translation calls currently resolve
// against.
func (l *Localizer) ActiveLocale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// Store exposes the bundle store for inspection and direct seeding.
func (l *Localizer) Store() *Store {
	return l.store
}

// Reconfigure overwrites the configuration fields named by the given
// options; everything else keeps its current value.
func (l *Localizer) Reconfigure(opts ...ConfigOption) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cfg := l.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	l.cfg = cfg
}

// SwitchOption configures one SwitchLocale call.
type SwitchOption func(*switchOptions)

type switchOptions struct {
	silent bool
}

// Silent suppresses diagnostic logging for a switch.
func Silent() SwitchOption {
	return func(o *switchOptions) {
		o.silent = true
	}
}

// SwitchLocale makes target the active locale, loading its bundle if it is
// not already in the store. The active locale is set optimistically before
// the load completes so concurrent reformatting already reflects the new
// locale's conventions.
//
// A target in the failed-load set is not retried: the active locale reverts
// to the fallback and ErrLocaleLoadSkipped is returned. On a load failure
// the failure is flagged, the active locale reverts to the fallback if this
// call is still the newest, and ErrLocaleLoadFailed is returned.
//
// Overlapping calls follow strict last-request-wins: a switch that is
// superseded by a newer one may still add its bundle to the store, but no
// longer moves or reverts the active locale, and no longer persists its
// choice. Failures are logged unless the
// Silent option is given; they are also returned so callers running the
// switch in a goroutine can inspect them.
func (l *Localizer) SwitchLocale(ctx context.Context, target string, opts ...SwitchOption) error {
	if target == "" {
		return ErrEmptyLocale
	}

	var o switchOptions
	for _, opt := range opts {
		opt(&o)
	}

	seq := l.switchSeq.Add(1)

	l.mu.Lock()
	if l.failed[target] {
		l.active = l.cfg.FallbackLocale
		fallback := l.active
		l.mu.Unlock()

		if !o.silent {
			l.log.Warn("locale previously failed to load, staying on fallback",
				slog.String("target", target), slog.String("fallback", fallback))
		}
		return fmt.Errorf("%w: %s", ErrLocaleLoadSkipped, target)
	}

	l.active = target
	persist := l.cfg.PersistLocale && l.prefs != nil
	storageKey := l.cfg.StorageKey
	l.mu.Unlock()

	if l.store.Has(target) {
		l.persistLocale(ctx, persist && seq == l.switchSeq.Load(), storageKey, target)
		return nil
	}

	bundle, err := l.loader.Load(ctx, target)
	if err != nil {
		l.mu.Lock()
		l.failed[target] = true
		if seq == l.switchSeq.Load() && l.active == target {
			l.active = l.cfg.FallbackLocale
		}
		l.mu.Unlock()

		if !o.silent {
			l.log.Error("locale bundle load failed",
				slog.String("target", target), slog.Any("error", err))
		}
		return fmt.Errorf("%w: %s: %w", ErrLocaleLoadFailed, target, err)
	}

	l.store.Set(target, bundle)

	l.mu.Lock()
	delete(l.failed, target)
	l.mu.Unlock()

	// A superseded switch may still store its bundle, but only the newest
	// switch persists its choice; otherwise a stale preference would
	// resurrect the losing locale on the next startup.
	l.persistLocale(ctx, persist && seq == l.switchSeq.Load(), storageKey, target)
	return nil
}

func (l *Localizer) persistLocale(ctx context.Context, persist bool, key, locale string) {
	if !persist {
		return
	}
	if err := l.prefs.Set(ctx, key, locale); err != nil {
		l.log.Warn("failed to persist locale preference",
			slog.String("locale", locale), slog.Any("error", err))
	}
}

// InitOptions controls how InitializeLocale computes the desired locale.
type InitOptions struct {
	// PreferStored consults the preference store first. Requires persistence
	// to be enabled in the configuration.
	PreferStored bool

	// PreferBrowser consults the browser/environment hint next, matched
	// against the supported locale set.
	PreferBrowser bool

	// DefaultLocale is used when neither source yields a locale. Defaults to
	// the fallback locale.
	DefaultLocale string
}

// InitializeLocale computes the desired startup locale from, in priority
// order, the persisted preference, the browser hint, and DefaultLocale, then
// switches to it silently. The switch runs in a goroutine; this call does
// not await it.
func (l *Localizer) InitializeLocale(ctx context.Context, opts InitOptions) {
	go func() {
		l.mu.RLock()
		persistEnabled := l.cfg.PersistLocale && l.prefs != nil
		storageKey := l.cfg.StorageKey
		fallback := l.cfg.FallbackLocale
		l.mu.RUnlock()

		var desired string

		if opts.PreferStored && persistEnabled {
			if v, err := l.prefs.Get(ctx, storageKey); err == nil && v != "" {
				desired = v
			}
		}

		if desired == "" && opts.PreferBrowser && l.browserHint != "" {
			desired = ParseAcceptLanguage(l.browserHint, l.supported)
		}

		if desired == "" {
			desired = opts.DefaultLocale
		}
		if desired == "" {
			desired = fallback
		}

		_ = l.SwitchLocale(ctx, desired, Silent())
	}()
}

func mergeParams(params []M) M {
	if len(params) == 0 {
		return M{}
	}
	if len(params) == 1 {
		merged := make(M, len(params[0]))
		for k, v := range params[0] {
			merged[k] = v
		}
		return merged
	}
	merged := make(M)
	for _, p := range params {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged
}
