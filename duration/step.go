package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is an interval length on a data axis: either a plain number in axis
// units or a Delta.
type Step struct {
	value float64
	delta Delta
	isDur bool
}

// Value returns a numeric step.
func Value(v float64) Step {
	return Step{value: v}
}

// Of returns a duration step.
func Of(d Delta) Step {
	return Step{delta: d, isDur: true}
}

// ParseStep accepts a plain number ("0.5") or a duration ("1D").
func ParseStep(s string) (Step, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Value(v), nil
	}
	d, err := Parse(s)
	if err != nil {
		return Step{}, err
	}
	return Of(d), nil
}

// IsDuration reports whether the step was given as a duration.
func (s Step) IsDuration() bool {
	return s.isDur
}

// Delta returns the duration of a duration step.
func (s Step) Delta() Delta {
	return s.delta
}

// Along resolves the step to axis units. Numeric steps pass through
// unchanged. On a time axis, stored as seconds, a duration step becomes its
// length in seconds. A duration step on a numeric axis is an error.
func (s Step) Along(timeAxis bool) (float64, error) {
	if !s.isDur {
		return s.value, nil
	}
	if !timeAxis {
		return 0, fmt.Errorf("%w: %s", ErrCalendarStep, s.delta)
	}
	return s.delta.ApproxSeconds(), nil
}

func (s Step) String() string {
	if s.isDur {
		return s.delta.String()
	}
	return strconv.FormatFloat(s.value, 'g', -1, 64)
}
