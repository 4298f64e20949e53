/*
record.go - Per-student attendance record and derived statistics

PURPOSE:
  Parses and validates one raw attendance string into a fixed 30-day
  sequence of Presence values, and computes the per-student statistics
  the classifier needs.

STATISTICS (computed once, at construction):
  AbsenceRate:   fraction of absent days, in [0,1]
  MaxStreak:     longest contiguous run of present days
  CurrentStreak: run of present days ending on the last day (0 if the
                 last day is absent)

VALIDATION:
  - Name must be non-empty after trimming whitespace.
  - Every character of the raw string must be in {0,1,Y,y,N,n}; the
    first offender fails the whole record. Callers strip whitespace
    before calling - a space is as invalid as any other character here.
  - Exactly WindowDays characters are required.
  A record is either fully valid or rejected in its entirety; there is
  no partial construction.

IMMUTABILITY:
  All fields are unexported and set only by NewRecord. The derived
  statistics can never drift from the day sequence, and a *Record is
  safe to share read-only across goroutines.

SEE ALSO:
  - types.go: Presence, WindowDays, Thresholds
  - errors.go: Validation error types
  - roster.go: Collects records and classifies them
*/
package attendance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var windowDecimal = decimal.NewFromInt(WindowDays)

// =============================================================================
// RECORD
// =============================================================================

// Record is one student's validated attendance over the 30-day window.
type Record struct {
	name string
	days [WindowDays]Presence

	// Derived at construction, read-only afterwards.
	absenceRate   decimal.Decimal
	maxStreak     int
	currentStreak int
}

// NewRecord parses and validates a raw attendance string.
// rawData must contain exactly WindowDays characters from {0,1,Y,y,N,n};
// the caller is responsible for stripping whitespace first.
func NewRecord(name, rawData string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	r := &Record{name: name}

	i := 0
	for _, c := range rawData {
		p, ok := parsePresence(c)
		if !ok {
			return nil, &InvalidCharacterError{Char: c}
		}
		if i < WindowDays {
			r.days[i] = p
		}
		i++
	}
	if i != WindowDays {
		return nil, &WrongLengthError{Count: i}
	}

	r.computeStats()
	return r, nil
}

// computeStats fills the derived statistics in a single pass over days.
func (r *Record) computeStats() {
	absent := 0
	run := 0
	for _, day := range r.days {
		if day == Present {
			run++
			if run > r.maxStreak {
				r.maxStreak = run
			}
		} else {
			absent++
			run = 0
		}
	}
	// run now holds the streak ending on the last day.
	r.currentStreak = run
	r.absenceRate = decimal.NewFromInt(int64(absent)).Div(windowDecimal)
}

// =============================================================================
// ACCESSORS
// =============================================================================

func (r *Record) Name() string { return r.name }

// Days returns a copy of the day sequence.
func (r *Record) Days() [WindowDays]Presence { return r.days }

// AbsenceRate is the fraction of absent days, in [0,1].
func (r *Record) AbsenceRate() decimal.Decimal { return r.absenceRate }

// MaxStreak is the longest contiguous run of present days.
func (r *Record) MaxStreak() int { return r.maxStreak }

// CurrentStreak is the present run ending on the last day of the window.
func (r *Record) CurrentStreak() int { return r.currentStreak }

// =============================================================================
// CLASSIFICATION
// =============================================================================

// IsDefaulter reports whether the record breaches either threshold:
// absence rate STRICTLY above absenceCeiling, or max streak STRICTLY
// below minStreak. A student exactly at a threshold is not a defaulter.
func (r *Record) IsDefaulter(absenceCeiling decimal.Decimal, minStreak int) bool {
	return r.absenceRate.GreaterThan(absenceCeiling) || r.maxStreak < minStreak
}

// =============================================================================
// RENDERING
// =============================================================================

// DayString returns the canonical 30-character Y/N form of the window.
func (r *Record) DayString() string {
	var b strings.Builder
	b.Grow(WindowDays)
	for _, day := range r.days {
		b.WriteRune(day.Rune())
	}
	return b.String()
}

// minNameWidth is the column width FormatLine falls back to when the
// caller does not size the name column.
const minNameWidth = 12

// FormatLine renders the record as one report line: name right-aligned in
// nameWidth columns, the Y/N day string, both streaks, and the absence
// rate as a whole percentage. Defaulter highlighting is the renderer's
// job, not this method's.
func (r *Record) FormatLine(nameWidth int) string {
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	percent := r.absenceRate.Mul(decimal.NewFromInt(100)).Round(0)
	return fmt.Sprintf("%*s  %s  max=%2d cur=%2d absent=%3s%%",
		nameWidth, r.name, r.DayString(), r.maxStreak, r.currentStreak, percent.String())
}
