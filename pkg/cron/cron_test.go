package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptsSupportedForms(t *testing.T) {
	valid := []string{
		"* * * * *",
		"*/5 * * * *",
		"0 9 * * *",
		"0 9 * * 1-5",
		"0 0 1,15 * *",
		"30 4 1-7/2 6 *",
		"0 9-17/2 * * 1,3,5",
		"  0 12 * * 0  ", // leading/trailing whitespace is trimmed
		"59 23 31 12 6",
	}
	for _, expr := range valid {
		_, err := Parse(expr)
		assert.NoError(t, err, "expression %q", expr)
		assert.True(t, IsValid(expr), "expression %q", expr)
	}
}

func TestParse_RejectsMalformedExpressions(t *testing.T) {
	invalid := []string{
		"",
		"* * * *",       // 4 fields
		"* * * * * *",   // 6 fields
		"60 * * * *",    // minute out of range
		"* 24 * * *",    // hour out of range
		"* * 0 * *",     // day-of-month below range
		"* * 32 * *",    // day-of-month above range
		"* * * 0 *",     // month below range
		"* * * 13 *",    // month above range
		"* * * * 7",     // day-of-week above range (Sunday is 0)
		"a * * * *",     // not a number
		"*/0 * * * *",   // zero step
		"*/-2 * * * *",  // negative step
		"5-1 * * * *",   // descending range
		"1,,2 * * * *",  // empty list item
		"1- * * * *",    // dangling range
		"* * * * MON",   // names are not supported
		"@daily",        // macros are not supported
		"*/x * * * *",   // non-numeric step
		"5/10 * * * *",  // step needs a * or range base
		"* 3/2 * * *",   // step on a single hour
	}
	for _, expr := range invalid {
		_, err := Parse(expr)
		require.Error(t, err, "expression %q", expr)
		assert.ErrorIs(t, err, ErrBadExpression, "expression %q", expr)
		assert.False(t, IsValid(expr), "expression %q", expr)
	}
}

func TestParse_FieldSets(t *testing.T) {
	s, err := Parse("*/15 9-17 1,15 6 1-5")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 15, 30, 45}, s.minute.values(fieldSpecs[0]))
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}, s.hour.values(fieldSpecs[1]))
	assert.Equal(t, []int{1, 15}, s.dom.values(fieldSpecs[2]))
	assert.Equal(t, []int{6}, s.month.values(fieldSpecs[3]))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.weekday.values(fieldSpecs[4]))
	assert.False(t, s.minute.star)
	assert.True(t, mustParse(t, "* * * * *").minute.star)
}

// mustParse is a test helper that fails the test on parse errors.
func mustParse(t *testing.T, expr string) *Schedule {
	t.Helper()
	s, err := Parse(expr)
	require.NoError(t, err)
	return s
}

func TestParse_StepWithRange(t *testing.T) {
	s := mustParse(t, "0 0 * * 0-6/2")
	assert.Equal(t, []int{0, 2, 4, 6}, s.weekday.values(fieldSpecs[4]))
}

func TestDescribe_CommonPatterns(t *testing.T) {
	cases := map[string]string{
		"* * * * *":   "Every minute, every day",
		"*/5 * * * *": "Every 5 minutes, every day",
		"0 9 * * *":   "At 09:00, every day",
		"0 9 * * 1-5": "At 09:00, on Monday through Friday",
		"30 8 1 * *":  "At 08:30, on day 1 of the month",
		"0 12 * 6 *":  "At 12:00, every day, in June",
		"15 * * * *":  "At minute 15 past every hour, every day",
	}
	for expr, want := range cases {
		got, err := Describe(expr)
		require.NoError(t, err, "expression %q", expr)
		assert.Equal(t, want, got, "expression %q", expr)
	}
}

func TestDescribe_NonEmptyForAnyValidExpression(t *testing.T) {
	exprs := []string{
		"* * * * *", "59 23 31 12 6", "*/3 */2 */5 */4 */3",
		"1,2,3 4,5 6,7 8,9 0,6", "0 0 29 2 *",
	}
	for _, expr := range exprs {
		got, err := Describe(expr)
		require.NoError(t, err, "expression %q", expr)
		assert.NotEmpty(t, got, "expression %q", expr)
	}
}

func TestDescribe_RejectsInvalid(t *testing.T) {
	_, err := Describe("not a cron")
	assert.ErrorIs(t, err, ErrBadExpression)
}
