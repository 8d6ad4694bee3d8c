package lingo

import "github.com/caarlos0/env/v11"

// Config is the runtime configuration of a Localizer. It is replaced as a
// whole on reconfigure; individual fields change only through the
// corresponding ConfigOption.
type Config struct {
	// FallbackLocale is consulted when a key is absent from the active
	// locale's bundle, and becomes the active locale after a failed switch.
	FallbackLocale string `env:"LINGO_FALLBACK_LOCALE" envDefault:"en"`

	// StorageKey is the preference-store key the chosen locale is saved under.
	StorageKey string `env:"LINGO_STORAGE_KEY" envDefault:"lingo.locale"`

	// PersistLocale enables saving the chosen locale to the preference store.
	PersistLocale bool `env:"LINGO_PERSIST_LOCALE"`

	// Debug makes missing keys and parameters visible in rendered output
	// instead of silently degrading.
	Debug bool `env:"LINGO_DEBUG"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		FallbackLocale: "en",
		StorageKey:     "lingo.locale",
	}
}

// LoadConfig reads configuration from LINGO_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigOption overwrites one field of a Config. Reconfigure applies only the
// options it is given, leaving every other field untouched.
type ConfigOption func(*Config)

// WithFallbackLocale sets the fallback locale.
func WithFallbackLocale(locale string) ConfigOption {
	return func(c *Config) {
		if locale != "" {
			c.FallbackLocale = locale
		}
	}
}

// WithStorageKey sets the preference-store key.
func WithStorageKey(key string) ConfigOption {
	return func(c *Config) {
		if key != "" {
			c.StorageKey = key
		}
	}
}

// WithPersistLocale toggles locale persistence.
func WithPersistLocale(persist bool) ConfigOption {
	return func(c *Config) {
		c.PersistLocale = persist
	}
}

// WithDebug toggles debug rendering of missing keys and parameters.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}
