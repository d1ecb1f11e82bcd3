package recurrence_test

import (
	"testing"
	"time"

	"github.com/splittab/splittab_backend/internal/apperrors"
	"github.com/splittab/splittab_backend/internal/utils/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeekly(t *testing.T) {
	occurrences, err := recurrence.Expand("FREQ=WEEKLY", date(2024, 1, 1), date(2024, 1, 22))
	require.NoError(t, err)

	expected := []time.Time{
		date(2024, 1, 1),
		date(2024, 1, 8),
		date(2024, 1, 15),
		date(2024, 1, 22),
	}
	assert.Equal(t, expected, occurrences)
}

func TestExpandEmptyRuleYieldsAnchorOnly(t *testing.T) {
	occurrences, err := recurrence.Expand("", date(2024, 1, 1), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 1, 1)}, occurrences)
}

func TestExpandMalformedRuleDegradesToAnchor(t *testing.T) {
	occurrences, err := recurrence.Expand("garbage", date(2024, 1, 1), date(2024, 6, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRecurrenceParse)
	assert.Equal(t, []time.Time{date(2024, 1, 1)}, occurrences)
}

func TestExpandIsBoundedSortedAndDuplicateFree(t *testing.T) {
	now := date(2024, 3, 15)
	occurrences, err := recurrence.Expand("FREQ=DAILY", date(2024, 1, 1), now)
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)

	for i, occ := range occurrences {
		assert.False(t, occ.After(now), "occurrence %s past the cutoff", occ)
		if i > 0 {
			assert.True(t, occurrences[i-1].Before(occ), "not strictly ascending at %d", i)
		}
	}
}

func TestExpandClampsUnboundedRuleToNow(t *testing.T) {
	now := date(2024, 1, 10)
	occurrences, err := recurrence.Expand("FREQ=DAILY", date(2024, 1, 1), now)
	require.NoError(t, err)

	assert.Len(t, occurrences, 10)
	assert.Equal(t, now, occurrences[len(occurrences)-1])
}

func TestExpandHonorsUntilBeforeNow(t *testing.T) {
	occurrences, err := recurrence.Expand("FREQ=DAILY;UNTIL=20240105T000000Z", date(2024, 1, 1), date(2024, 2, 1))
	require.NoError(t, err)

	assert.Len(t, occurrences, 5)
	assert.Equal(t, date(2024, 1, 5), occurrences[len(occurrences)-1])
}

func TestExpandHonorsCount(t *testing.T) {
	occurrences, err := recurrence.Expand("FREQ=WEEKLY;COUNT=3", date(2024, 1, 1), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Len(t, occurrences, 3)
}

func TestExpandFutureAnchorYieldsNothing(t *testing.T) {
	occurrences, err := recurrence.Expand("FREQ=WEEKLY", date(2024, 6, 1), date(2024, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestSetFrequencyPreservesUntil(t *testing.T) {
	rule, err := recurrence.Parse("FREQ=DAILY;UNTIL=20240301T000000Z")
	require.NoError(t, err)

	rule.SetFrequency(recurrence.Weekly)

	reparsed, err := recurrence.Parse(rule.String())
	require.NoError(t, err)
	assert.Equal(t, recurrence.Weekly, reparsed.Frequency())
	until, ok := reparsed.Until()
	require.True(t, ok)
	assert.Equal(t, date(2024, 3, 1), until)
}

func TestSetUntilPreservesFrequencyAndInterval(t *testing.T) {
	rule, err := recurrence.Parse("FREQ=MONTHLY;INTERVAL=2")
	require.NoError(t, err)

	rule.SetUntil(date(2024, 12, 31))

	reparsed, err := recurrence.Parse(rule.String())
	require.NoError(t, err)
	assert.Equal(t, recurrence.Monthly, reparsed.Frequency())
	assert.Equal(t, 2, reparsed.Interval())
	until, ok := reparsed.Until()
	require.True(t, ok)
	assert.Equal(t, date(2024, 12, 31), until)
}

func TestParseOrDefaultStartsFreshOnMalformedInput(t *testing.T) {
	rule := recurrence.ParseOrDefault("not a rule")
	assert.Equal(t, recurrence.Yearly, rule.Frequency())

	rule.SetFrequency(recurrence.Daily)
	assert.Contains(t, rule.String(), "FREQ=DAILY")
}

func TestParseRejectsEmptyString(t *testing.T) {
	_, err := recurrence.Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRecurrenceParse)
}

func TestParseAcceptsRRulePrefix(t *testing.T) {
	rule, err := recurrence.Parse("RRULE:FREQ=WEEKLY")
	require.NoError(t, err)
	assert.Equal(t, recurrence.Weekly, rule.Frequency())
}
