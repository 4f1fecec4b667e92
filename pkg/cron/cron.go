// Package cron parses 5-field cron expressions and computes fire times.
//
// Supported field forms: "*", "a", "a-b", "a,b,c", "*/n", "a-b/n".
// Field order and ranges: minute 0-59, hour 0-23, day-of-month 1-31,
// month 1-12, day-of-week 0-6 with Sunday as 0. Day-of-month and
// day-of-week are combined with intersection semantics: when both are
// restricted, a candidate day must satisfy both.
package cron

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBadExpression indicates a syntactically invalid cron expression.
	ErrBadExpression = errors.New("bad cron expression")

	// ErrUnreachable indicates the expression never fires within the
	// one-year search budget (e.g. "0 0 30 2 *").
	ErrUnreachable = errors.New("cron schedule unreachable within one year")
)

// ParseError describes why an expression was rejected.
type ParseError struct {
	Expr   string
	Field  string // "minute", "hour", "day-of-month", "month", "day-of-week", or "" for shape errors
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid cron expression %q: %s", e.Expr, e.Reason)
	}
	return fmt.Sprintf("invalid cron expression %q: %s field: %s", e.Expr, e.Field, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrBadExpression }

// fieldSpec defines the numeric bounds and name of one cron field.
type fieldSpec struct {
	name string
	min  int
	max  int
}

var fieldSpecs = [5]fieldSpec{
	{"minute", 0, 59},
	{"hour", 0, 23},
	{"day-of-month", 1, 31},
	{"month", 1, 12},
	{"day-of-week", 0, 6},
}

// fieldSet is a bitmask of admitted values for one field. Bit v is set
// when value v matches. All field ranges fit in 64 bits.
type fieldSet struct {
	bits uint64
	star bool // the field was written as a bare "*"
}

func (f fieldSet) has(v int) bool { return f.bits&(1<<uint(v)) != 0 }

// values returns the admitted values in ascending order.
func (f fieldSet) values(spec fieldSpec) []int {
	var out []int
	for v := spec.min; v <= spec.max; v++ {
		if f.has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Schedule is a parsed cron expression.
type Schedule struct {
	expr    string
	minute  fieldSet
	hour    fieldSet
	dom     fieldSet
	month   fieldSet
	weekday fieldSet
}

// Expression returns the original expression string, trimmed.
func (s *Schedule) Expression() string { return s.expr }

// Parse parses a 5-field cron expression. The expression is trimmed
// before splitting; interior whitespace of any width separates fields.
func Parse(expr string) (*Schedule, error) {
	trimmed := strings.TrimSpace(expr)
	fields := strings.Fields(trimmed)
	if len(fields) != 5 {
		return nil, &ParseError{Expr: expr, Reason: fmt.Sprintf("expected 5 fields, got %d", len(fields))}
	}

	s := &Schedule{expr: trimmed}
	targets := [5]*fieldSet{&s.minute, &s.hour, &s.dom, &s.month, &s.weekday}
	for i, raw := range fields {
		set, err := parseField(raw, fieldSpecs[i])
		if err != nil {
			return nil, &ParseError{Expr: expr, Field: fieldSpecs[i].name, Reason: err.Error()}
		}
		*targets[i] = set
	}
	return s, nil
}

// IsValid reports whether expr parses as a 5-field cron expression.
func IsValid(expr string) bool {
	_, err := Parse(expr)
	return err == nil
}

// parseField parses one cron field into its admitted-value set.
// The grammar is a comma list whose items are "*", "a", "a-b",
// "*/n" or "a-b/n". Anything else is rejected.
func parseField(raw string, spec fieldSpec) (fieldSet, error) {
	var set fieldSet
	if raw == "" {
		return set, errors.New("empty field")
	}
	if raw == "*" {
		set.star = true
		for v := spec.min; v <= spec.max; v++ {
			set.bits |= 1 << uint(v)
		}
		return set, nil
	}

	for _, part := range strings.Split(raw, ",") {
		if part == "" {
			return fieldSet{}, errors.New("empty list item")
		}
		lo, hi, step, err := parsePart(part, spec)
		if err != nil {
			return fieldSet{}, err
		}
		for v := lo; v <= hi; v += step {
			set.bits |= 1 << uint(v)
		}
	}
	return set, nil
}

// parsePart parses a single list item into an inclusive range plus step.
func parsePart(part string, spec fieldSpec) (lo, hi, step int, err error) {
	step = 1
	rangePart := part

	if base, stepStr, found := strings.Cut(part, "/"); found {
		// A step only makes sense over a span: "*/n" or "a-b/n".
		// A bare value like "5/10" still names the single minute 5.
		if base != "*" && !strings.Contains(base, "-") {
			return 0, 0, 0, fmt.Errorf("step on single value %q", part)
		}
		rangePart = base
		step, err = strconv.Atoi(stepStr)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("step %q is not a number", stepStr)
		}
		if step < 1 {
			return 0, 0, 0, fmt.Errorf("step must be >= 1, got %d", step)
		}
	}

	switch {
	case rangePart == "*":
		lo, hi = spec.min, spec.max
	case strings.Contains(rangePart, "-"):
		loStr, hiStr, _ := strings.Cut(rangePart, "-")
		lo, err = parseValue(loStr, spec)
		if err != nil {
			return 0, 0, 0, err
		}
		hi, err = parseValue(hiStr, spec)
		if err != nil {
			return 0, 0, 0, err
		}
		if lo > hi {
			return 0, 0, 0, fmt.Errorf("descending range %d-%d", lo, hi)
		}
	default:
		lo, err = parseValue(rangePart, spec)
		if err != nil {
			return 0, 0, 0, err
		}
		hi = lo
	}
	return lo, hi, step, nil
}

func parseValue(s string, spec fieldSpec) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < spec.min || v > spec.max {
		return 0, fmt.Errorf("value %d out of range %d-%d", v, spec.min, spec.max)
	}
	return v, nil
}
