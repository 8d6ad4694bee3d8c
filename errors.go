package lingo

import "errors"

var (
	ErrEmptyLocale       = errors.New("lingo: locale cannot be empty")
	ErrNilLoader         = errors.New("lingo: bundle loader cannot be nil")
	ErrLocaleLoadFailed  = errors.New("lingo: locale bundle load failed")
	ErrLocaleLoadSkipped = errors.New("lingo: locale previously failed to load")
	ErrInvalidBundle     = errors.New("lingo: invalid bundle structure")
)
