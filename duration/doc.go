// Package duration parses compact duration strings such as "1D", "2h30m" or
// "1Y6M" and resolves aggregation steps on numeric or time axes.
//
// Units must appear in the fixed order
//
//	Y/y  years
//	M    months
//	W/w  weeks
//	D/d  days
//	h    hours
//	m    minutes
//	s    seconds
//	ms   milliseconds
//	us   microseconds
//
// each with a non-negative integer magnitude, and at least one unit must be
// present. Months and years are calendar units: Delta.AddTo applies them
// exactly, Delta.Approx converts them with average Gregorian lengths.
package duration
