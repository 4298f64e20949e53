package attendance_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// ROSTER BASICS
// =============================================================================

func TestRoster_AddPropagatesValidationUnchanged(t *testing.T) {
	ro := attendance.NewRoster()

	err := ro.Add("", strings.Repeat("Y", 30))
	assert.ErrorIs(t, err, attendance.ErrEmptyName)

	err = ro.Add("Ann", "YY?")
	assert.ErrorIs(t, err, attendance.ErrInvalidCharacter)

	err = ro.Add("Ann", strings.Repeat("Y", 29))
	assert.ErrorIs(t, err, attendance.ErrWrongLength)

	// Rejected records never land in the roster.
	assert.Equal(t, 0, ro.Len())

	require.NoError(t, ro.Add("Ann", strings.Repeat("Y", 30)))
	assert.Equal(t, 1, ro.Len())
}

func TestRoster_DuplicateNamesPermitted(t *testing.T) {
	ro := attendance.NewRoster()
	require.NoError(t, ro.Add("Sam", strings.Repeat("Y", 30)))
	require.NoError(t, ro.Add("Sam", strings.Repeat("N", 30)))
	assert.Equal(t, 2, ro.Len())
}

func TestRoster_RecordsReturnsInsertionOrder(t *testing.T) {
	ro := attendance.NewRoster()
	require.NoError(t, ro.Add("Zoe", strings.Repeat("Y", 30)))
	require.NoError(t, ro.Add("Abe", strings.Repeat("Y", 30)))

	recs := ro.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Zoe", recs[0].Name())
	assert.Equal(t, "Abe", recs[1].Name())
}

// =============================================================================
// REPORT
// =============================================================================

func TestRoster_ReportEmptyRoster(t *testing.T) {
	// An empty roster is an explicit error, not NaN aggregates.
	ro := attendance.NewRoster()

	rep, err := ro.Report(decimal.NewFromFloat(0.1), 5)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, attendance.ErrEmptyRoster)
	assert.True(t, attendance.IsValidationError(err))
}

func TestRoster_ReportSortsByNameStable(t *testing.T) {
	// GIVEN: records added out of order, with a duplicated name
	// THEN: entries sort ascending byte-wise; the duplicate pair keeps
	//       insertion order; the roster itself stays in insertion order

	ro := attendance.NewRoster()
	require.NoError(t, ro.Add("Cara", strings.Repeat("Y", 30)))
	require.NoError(t, ro.Add("Abe", strings.Repeat("N", 30)))
	require.NoError(t, ro.Add("Cara", strings.Repeat("N", 30)))
	require.NoError(t, ro.Add("Bob", strings.Repeat("Y", 30)))

	rep, err := ro.Report(decimal.NewFromFloat(0.5), 0)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 4)

	names := []string{}
	for _, e := range rep.Entries {
		names = append(names, e.Record.Name())
	}
	assert.Equal(t, []string{"Abe", "Bob", "Cara", "Cara"}, names)

	// The first Cara (all present) was inserted before the second (all
	// absent); a stable sort keeps that order.
	assert.True(t, rep.Entries[2].Record.AbsenceRate().IsZero())
	assert.False(t, rep.Entries[3].Record.AbsenceRate().IsZero())

	recs := ro.Records()
	assert.Equal(t, "Cara", recs[0].Name(), "roster order must not change")
}

func TestRoster_ReportAggregates(t *testing.T) {
	// GIVEN: three students
	//   Abe:  all present        (rate 0,   max 30) - not a defaulter
	//   Bob:  all absent         (rate 1,   max 0)  - defaulter
	//   Cara: alternating YN     (rate 0.5, max 1)  - defaulter (streak)
	// WHEN: report with ceiling 0.5, minStreak 2
	// THEN: 2 defaulters, percentage 2/3, mean rate 0.5, mean max streak 31/3

	ro := attendance.NewRoster()
	require.NoError(t, ro.Add("Abe", strings.Repeat("Y", 30)))
	require.NoError(t, ro.Add("Bob", strings.Repeat("N", 30)))
	require.NoError(t, ro.Add("Cara", strings.Repeat("YN", 15)))

	rep, err := ro.Report(decimal.NewFromFloat(0.5), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.DefaulterCount)

	three := decimal.NewFromInt(3)
	assert.True(t, rep.DefaulterPercentage.Equal(decimal.NewFromInt(2).Div(three)),
		"defaulter percentage = %s", rep.DefaulterPercentage)
	assert.True(t, rep.OverallAbsenceRate.Equal(decimal.NewFromFloat(0.5)),
		"overall absence rate = %s", rep.OverallAbsenceRate)
	assert.True(t, rep.AvgMaxStreak.Equal(decimal.NewFromInt(31).Div(three)),
		"avg max streak = %s", rep.AvgMaxStreak)

	byName := map[string]bool{}
	for _, e := range rep.Entries {
		byName[e.Record.Name()] = e.Defaulter
	}
	assert.False(t, byName["Abe"])
	assert.True(t, byName["Bob"])
	assert.True(t, byName["Cara"], "max streak 1 < 2 flags Cara despite rate exactly at ceiling")
}

func TestRoster_ReportComputedFreshEachCall(t *testing.T) {
	ro := attendance.NewRoster()
	require.NoError(t, ro.Add("Abe", strings.Repeat("Y", 30)))

	rep1, err := ro.Report(decimal.NewFromFloat(0.1), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, rep1.DefaulterCount)

	require.NoError(t, ro.Add("Bob", strings.Repeat("N", 30)))

	rep2, err := ro.Report(decimal.NewFromFloat(0.1), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, rep2.DefaulterCount)
	assert.Len(t, rep2.Entries, 2)

	// The earlier report is untouched by later adds.
	assert.Len(t, rep1.Entries, 1)
}

// =============================================================================
// THRESHOLD CONVERSION
// =============================================================================

func TestThresholdsFromPercent(t *testing.T) {
	th := attendance.ThresholdsFromPercent(decimal.NewFromInt(10), 5)
	assert.True(t, th.AbsenceCeiling.Equal(decimal.NewFromFloat(0.1)),
		"ceiling = %s", th.AbsenceCeiling)
	assert.Equal(t, 5, th.MinStreak)
}
