// Package recurrence wraps RFC-5545 recurrence rules behind a structured
// value object. Rules are parsed once, mutated field-by-field and serialized
// back to RRULE text only at the boundary, so changing e.g. the frequency
// never drops an existing UNTIL bound.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/splittab/splittab_backend/internal/apperrors"
	rrule "github.com/teambition/rrule-go"
)

// Frequency re-exports the RRULE frequency values.
type Frequency = rrule.Frequency

const (
	Yearly  = rrule.YEARLY
	Monthly = rrule.MONTHLY
	Weekly  = rrule.WEEKLY
	Daily   = rrule.DAILY
)

// Rule is a recurrence rule with named fields. The zero value is a yearly
// rule with no bound, matching the RRULE defaults.
type Rule struct {
	opt rrule.ROption
}

// Parse parses an RRULE string such as "FREQ=WEEKLY;UNTIL=20240301T000000Z".
// A leading "RRULE:" prefix is accepted. Empty or malformed input yields an
// error wrapping apperrors.ErrRecurrenceParse.
func Parse(s string) (*Rule, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty rule string", apperrors.ErrRecurrenceParse)
	}
	opt, err := rrule.StrToROption(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", apperrors.ErrRecurrenceParse, s, err)
	}
	return &Rule{opt: *opt}, nil
}

// ParseOrDefault parses s, falling back to an empty default rule when s is
// empty or malformed. Mutating an existing repeat string goes through this so
// a broken stored rule degrades to a fresh one instead of failing the edit.
func ParseOrDefault(s string) *Rule {
	r, err := Parse(s)
	if err != nil {
		return &Rule{}
	}
	return r
}

// Frequency returns the rule's frequency.
func (r *Rule) Frequency() Frequency {
	return r.opt.Freq
}

// SetFrequency changes only the frequency; all other fields are preserved.
func (r *Rule) SetFrequency(f Frequency) {
	r.opt.Freq = f
}

// Until returns the rule's UNTIL bound, if any.
func (r *Rule) Until() (time.Time, bool) {
	return r.opt.Until, !r.opt.Until.IsZero()
}

// SetUntil changes only the UNTIL bound; all other fields are preserved.
func (r *Rule) SetUntil(t time.Time) {
	r.opt.Until = t.UTC()
}

// Interval returns the rule's interval (0 meaning the default of 1).
func (r *Rule) Interval() int {
	return r.opt.Interval
}

// Count returns the rule's COUNT bound (0 meaning unbounded).
func (r *Rule) Count() int {
	return r.opt.Count
}

// String serializes the rule back to RRULE text without a DTSTART line.
func (r *Rule) String() string {
	return r.opt.RRuleString()
}

// Occurrences expands the rule anchored at anchor into all concrete
// occurrence dates up to now, inclusive on both ends. The effective end is
// always clamped to now: unbounded rules and UNTIL bounds in the future never
// project occurrences beyond the present moment. The result is ascending and
// duplicate-free.
func (r *Rule) Occurrences(anchor, now time.Time) ([]time.Time, error) {
	opt := r.opt
	opt.Dtstart = startOfDayUTC(anchor)
	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRecurrenceParse, err)
	}
	return rr.Between(opt.Dtstart, now.UTC(), true), nil
}

// Expand materializes a raw repeat string into occurrence dates.
// An empty rule means "non-recurring": the anchor alone is returned. A
// malformed rule must not break the surrounding pipeline, so the anchor is
// returned together with the parse error for the caller to log.
func Expand(ruleStr string, anchor, now time.Time) ([]time.Time, error) {
	anchorDay := startOfDayUTC(anchor)
	if strings.TrimSpace(ruleStr) == "" {
		return []time.Time{anchorDay}, nil
	}
	rule, err := Parse(ruleStr)
	if err != nil {
		return []time.Time{anchorDay}, err
	}
	occurrences, err := rule.Occurrences(anchorDay, now)
	if err != nil {
		return []time.Time{anchorDay}, err
	}
	return occurrences, nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
