package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	year  = time.Duration(365.2425 * float64(day))
	month = year / 12

	maxSeconds = float64(math.MaxInt64) / float64(time.Second)
)

var pattern = regexp.MustCompile(
	`^(?:(\d+)[Yy])?(?:(\d+)M)?(?:(\d+)[Ww])?(?:(\d+)[Dd])?` +
		`(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?(?:(\d+)ms)?(?:(\d+)us)?$`)

// Delta is a parsed duration split into its units.
type Delta struct {
	Years        int
	Months       int
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
	Microseconds int
}

// Parse parses s according to the package grammar.
func Parse(s string) (Delta, error) {
	s = strings.TrimSpace(s)
	m := pattern.FindStringSubmatch(s)
	if s == "" || m == nil {
		return Delta{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var v [9]int
	for i, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return Delta{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		v[i] = n
	}
	return Delta{
		Years:        v[0],
		Months:       v[1],
		Weeks:        v[2],
		Days:         v[3],
		Hours:        v[4],
		Minutes:      v[5],
		Seconds:      v[6],
		Milliseconds: v[7],
		Microseconds: v[8],
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Delta {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsCalendar reports whether d has a month or year component.
func (d Delta) IsCalendar() bool {
	return d.Years != 0 || d.Months != 0
}

// Fixed returns the part of d with a fixed length, i.e. everything below
// months. The result saturates at the limits of time.Duration.
func (d Delta) Fixed() time.Duration {
	if v, ok := total(d.fixedTerms()); ok {
		return v
	}
	return fromSeconds(d.fixedSeconds())
}

// Approx returns the length of d, counting a year as 365.2425 days and a
// month as a twelfth of that. The result saturates at the limits of
// time.Duration, about 292 years; ApproxSeconds has no such limit.
func (d Delta) Approx() time.Duration {
	terms := append([]term{{d.Years, year}, {d.Months, month}}, d.fixedTerms()...)
	if v, ok := total(terms); ok {
		return v
	}
	return fromSeconds(d.ApproxSeconds())
}

// ApproxSeconds returns the length of d in seconds, counting years and
// months as Approx does.
func (d Delta) ApproxSeconds() float64 {
	return float64(d.Years)*year.Seconds() + float64(d.Months)*month.Seconds() + d.fixedSeconds()
}

type term struct {
	n    int
	unit time.Duration
}

func (d Delta) fixedTerms() []term {
	return []term{
		{d.Weeks, week},
		{d.Days, day},
		{d.Hours, time.Hour},
		{d.Minutes, time.Minute},
		{d.Seconds, time.Second},
		{d.Milliseconds, time.Millisecond},
		{d.Microseconds, time.Microsecond},
	}
}

func (d Delta) fixedSeconds() float64 {
	var sec float64
	for _, t := range d.fixedTerms() {
		sec += float64(t.n) * t.unit.Seconds()
	}
	return sec
}

// total sums the terms exactly. It reports false if any step overflows.
func total(terms []term) (time.Duration, bool) {
	var sum int64
	for _, t := range terms {
		if t.n == 0 {
			continue
		}
		p := int64(t.n) * int64(t.unit)
		if p/int64(t.unit) != int64(t.n) {
			return 0, false
		}
		s := sum + p
		if (p > 0 && s < sum) || (p < 0 && s > sum) {
			return 0, false
		}
		sum = s
	}
	return time.Duration(sum), true
}

func fromSeconds(sec float64) time.Duration {
	switch {
	case sec >= maxSeconds:
		return math.MaxInt64
	case sec <= -maxSeconds:
		return math.MinInt64
	}
	return time.Duration(math.Round(sec * float64(time.Second)))
}

// AddTo returns t shifted by d, applying years and months on the calendar.
func (d Delta) AddTo(t time.Time) time.Time {
	return t.AddDate(d.Years, d.Months, 0).Add(d.Fixed())
}

// String formats d in the package grammar, omitting zero units.
func (d Delta) String() string {
	var b strings.Builder
	for _, u := range []struct {
		n    int
		unit string
	}{
		{d.Years, "Y"}, {d.Months, "M"}, {d.Weeks, "W"}, {d.Days, "D"},
		{d.Hours, "h"}, {d.Minutes, "m"}, {d.Seconds, "s"},
		{d.Milliseconds, "ms"}, {d.Microseconds, "us"},
	} {
		if u.n != 0 {
			fmt.Fprintf(&b, "%d%s", u.n, u.unit)
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
