package lingo

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the ISO 4217 code used when a currency format is
// requested without an explicit code.
const DefaultCurrency = "USD"

// DateLayouts holds the Go time layouts a locale uses for date, time and
// combined date-time rendering.
type DateLayouts struct {
	Date     string
	Time     string
	DateTime string
}

// Formatter renders parameter values using the conventions of a locale.
// Number, percent and currency output goes through x/text printers; date and
// time output uses a per-locale layout registry. Printers are cached per
// locale. Safe for concurrent use.
type Formatter struct {
	mu              sync.RWMutex
	printers        map[string]*message.Printer
	layouts         map[string]DateLayouts
	defaultCurrency string
	now             func() time.Time
}

// FormatterOption configures a Formatter during construction.
type FormatterOption func(*Formatter)

// WithDefaultCurrency overrides the implied currency code.
func WithDefaultCurrency(code string) FormatterOption {
	return func(f *Formatter) {
		if code != "" {
			f.defaultCurrency = code
		}
	}
}

// WithDateLayouts registers or overrides the date layouts for a locale.
func WithDateLayouts(locale string, layouts DateLayouts) FormatterOption {
	return func(f *Formatter) {
		f.layouts[locale] = layouts
	}
}

// WithNow overrides the clock used for relative formatting. Intended for tests.
func WithNow(now func() time.Time) FormatterOption {
	return func(f *Formatter) {
		f.now = now
	}
}

// NewFormatter creates a Formatter preloaded with the built-in locale layout
// registry.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		printers:        make(map[string]*message.Printer),
		layouts:         defaultDateLayouts(),
		defaultCurrency: DefaultCurrency,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// printer returns the cached message printer for a locale, creating it on
// first use. Unparseable locale identifiers fall back to English conventions.
func (f *Formatter) printer(locale string) *message.Printer {
	f.mu.RLock()
	if p, ok := f.printers[locale]; ok {
		f.mu.RUnlock()
		return p
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.printers[locale]; ok {
		return p
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	f.printers[locale] = p
	return p
}

// dateLayouts returns the layouts for a locale, consulting the exact
// identifier first, then its base language, then the built-in default.
func (f *Formatter) dateLayouts(locale string) DateLayouts {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if l, ok := f.layouts[locale]; ok {
		return l
	}
	if base := baseLocale(locale); base != locale {
		if l, ok := f.layouts[base]; ok {
			return l
		}
	}
	return fallbackDateLayouts
}

// Number formats a number with the locale's separators and the given options.
func (f *Formatter) Number(locale string, v float64, opts ...number.Option) string {
	return f.printer(locale).Sprint(number.Decimal(v, opts...))
}

// Integer formats a number with zero fractional digits.
func (f *Formatter) Integer(locale string, v float64) string {
	return f.printer(locale).Sprint(number.Decimal(v, number.Scale(0)))
}

// Percent formats a ratio in percentage style (0.5 renders as 50%).
func (f *Formatter) Percent(locale string, v float64) string {
	return f.printer(locale).Sprint(number.Percent(v))
}

// Currency formats an amount in currency style. An empty or invalid code
// falls back to the formatter's default currency.
func (f *Formatter) Currency(locale, code string, v float64) string {
	if code == "" {
		code = f.defaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit, err = currency.ParseISO(f.defaultCurrency)
		if err != nil {
			unit = currency.USD
		}
	}
	return f.printer(locale).Sprint(currency.Symbol(unit.Amount(v)))
}

// Date formats the date portion of t with the locale's date layout.
func (f *Formatter) Date(locale string, t time.Time) string {
	return t.Format(f.dateLayouts(locale).Date)
}

// Time formats the time portion of t with the locale's time layout.
func (f *Formatter) Time(locale string, t time.Time) string {
	return t.Format(f.dateLayouts(locale).Time)
}

// DateTime formats t with the locale's combined layout.
func (f *Formatter) DateTime(locale string, t time.Time) string {
	return t.Format(f.dateLayouts(locale).DateTime)
}

// Relative renders a coarse relative-time phrase for t measured against the
// formatter's clock. Anything older than thirty days renders as an absolute
// date in the locale's layout.
func (f *Formatter) Relative(locale string, t time.Time) string {
	elapsed := f.now().Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return relativePhrase(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return relativePhrase(int(elapsed.Hours()), "hour")
	case elapsed < 30*24*time.Hour:
		return relativePhrase(int(elapsed.Hours()/24), "day")
	default:
		return f.Date(locale, t)
	}
}

func relativePhrase(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
