// Package dates formats timestamps and describes them relative to now.
//
// Parsing accepts ISO 8601 and the other common layouts understood by
// github.com/araddon/dateparse; relative descriptions come from go-humanize.
package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

// Layouts used by the shorthand formatters.
const (
	LayoutFull   = "02 Jan, 2006 - 15:04:05"
	LayoutDMY    = "02 Jan, 2006"
	LayoutPicker = "2006-01-02"
)

// ErrInvalidTimestamp is returned when a timestamp string cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Formatter formats timestamps in a fixed location against a replaceable clock.
// The zero value is not usable; use New.
type Formatter struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the location timestamps without a zone are read in and
// results are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithNow replaces the clock used for relative descriptions.
func WithNow(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// New creates a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		loc: time.Local,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Parse reads a timestamp string in the formatter's location.
func (f *Formatter) Parse(ts string) (time.Time, error) {
	t, err := dateparse.ParseIn(ts, f.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, ts, err)
	}
	return t.In(f.loc), nil
}

// Format parses ts and renders it with a Go time layout.
func (f *Formatter) Format(ts, layout string) (string, error) {
	t, err := f.Parse(ts)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Full renders ts as "02 Jan, 2006 - 15:04:05".
func (f *Formatter) Full(ts string) (string, error) {
	return f.Format(ts, LayoutFull)
}

// DMY renders ts as "02 Jan, 2006".
func (f *Formatter) DMY(ts string) (string, error) {
	return f.Format(ts, LayoutDMY)
}

// Picker renders ts as "2006-01-02", the value format of HTML date inputs.
func (f *Formatter) Picker(ts string) (string, error) {
	return f.Format(ts, LayoutPicker)
}

// To describes ts as seen from now: "3 hours ago" or "3 hours from now".
func (f *Formatter) To(ts string) (string, error) {
	t, err := f.Parse(ts)
	if err != nil {
		return "", err
	}
	return humanize.RelTime(t, f.now(), "ago", "from now"), nil
}

// From describes now as seen from ts, the inverse direction of To:
// for a timestamp three hours in the past it returns "3 hours from now".
func (f *Formatter) From(ts string) (string, error) {
	t, err := f.Parse(ts)
	if err != nil {
		return "", err
	}
	return humanize.RelTime(f.now(), t, "ago", "from now"), nil
}

// Now returns the current time in the formatter's location.
func (f *Formatter) Now() time.Time {
	return f.now().In(f.loc)
}
