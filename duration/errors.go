package duration

import "errors"

var (
	// ErrSyntax is returned for strings that do not match the duration grammar.
	ErrSyntax = errors.New("duration: invalid syntax")

	// ErrCalendarStep is returned when a calendar step is used on a numeric axis.
	ErrCalendarStep = errors.New("duration: calendar step on numeric axis")
)
