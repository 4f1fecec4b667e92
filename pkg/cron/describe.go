package cron

import (
	"fmt"
	"strings"
	"time"
)

// Describe parses expr and returns a human-readable English summary.
// The summary is informational only; it is shown in chat and task
// listings next to the raw expression.
func Describe(expr string) (string, error) {
	s, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return s.Describe(), nil
}

// Describe returns a human-readable English summary of the schedule,
// e.g. "At 09:00, on Monday through Friday".
func (s *Schedule) Describe() string {
	parts := []string{s.describeTime()}
	if day := s.describeDays(); day != "" {
		parts = append(parts, day)
	}
	if month := s.describeMonths(); month != "" {
		parts = append(parts, month)
	}
	return strings.Join(parts, ", ")
}

func (s *Schedule) describeTime() string {
	minutes := s.minute.values(fieldSpecs[0])
	hours := s.hour.values(fieldSpecs[1])

	if s.minute.star && s.hour.star {
		return "Every minute"
	}
	if s.hour.star {
		if step, ok := stepOf(minutes, fieldSpecs[0]); ok {
			return fmt.Sprintf("Every %d minutes", step)
		}
		if len(minutes) == 1 {
			return fmt.Sprintf("At minute %d past every hour", minutes[0])
		}
		return fmt.Sprintf("At minutes %s past every hour", joinInts(minutes))
	}
	if len(minutes) == 1 && len(hours) == 1 {
		return fmt.Sprintf("At %02d:%02d", hours[0], minutes[0])
	}
	if len(minutes) == 1 {
		if step, ok := stepOf(hours, fieldSpecs[1]); ok {
			return fmt.Sprintf("At minute %d past every %d hours", minutes[0], step)
		}
		return fmt.Sprintf("At minute %d past hours %s", minutes[0], joinInts(hours))
	}
	return fmt.Sprintf("At minutes %s past hours %s", joinInts(minutes), joinInts(hours))
}

func (s *Schedule) describeDays() string {
	var segs []string
	if !s.weekday.star {
		segs = append(segs, "on "+nameList(s.weekday.values(fieldSpecs[4]), weekdayName))
	}
	if !s.dom.star {
		days := s.dom.values(fieldSpecs[2])
		if len(days) == 1 {
			segs = append(segs, fmt.Sprintf("on day %d of the month", days[0]))
		} else {
			segs = append(segs, fmt.Sprintf("on days %s of the month", joinInts(days)))
		}
	}
	if len(segs) == 0 {
		return "every day"
	}
	return strings.Join(segs, " and ")
}

func (s *Schedule) describeMonths() string {
	if s.month.star {
		return ""
	}
	return "in " + nameList(s.month.values(fieldSpecs[3]), monthName)
}

// stepOf reports whether vals is an evenly spaced "every n" pattern
// starting at the field minimum and covering the field, with n > 1.
func stepOf(vals []int, spec fieldSpec) (int, bool) {
	if len(vals) < 2 || vals[0] != spec.min {
		return 0, false
	}
	step := vals[1] - vals[0]
	if step <= 1 {
		return 0, false
	}
	for i := 1; i < len(vals); i++ {
		if vals[i]-vals[i-1] != step {
			return 0, false
		}
	}
	if vals[len(vals)-1]+step <= spec.max {
		return 0, false
	}
	return step, true
}

// nameList renders values as "A through B" for a contiguous run,
// otherwise "A, B and C".
func nameList(vals []int, name func(int) string) string {
	if lo, hi, ok := contiguous(vals); ok && hi > lo {
		return name(lo) + " through " + name(hi)
	}
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = name(v)
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func contiguous(vals []int) (lo, hi int, ok bool) {
	if len(vals) == 0 {
		return 0, 0, false
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1]+1 {
			return 0, 0, false
		}
	}
	return vals[0], vals[len(vals)-1], true
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func weekdayName(d int) string { return time.Weekday(d).String() }

func monthName(m int) string { return time.Month(m).String() }
