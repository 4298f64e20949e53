/*
Package attendance provides the core attendance statistics engine.

PURPOSE:
  This package contains the types and algorithms for analyzing classroom
  attendance over a fixed 30-day window. It parses raw attendance strings
  into validated records, computes per-student statistics (absence rate,
  present streaks), and classifies students against configurable
  defaulter thresholds.

KEY CONCEPTS IN THIS FILE (types.go):
  - Presence: A two-variant value (Present/Absent) for a single day
  - WindowDays: The fixed size of the attendance window (30)
  - Thresholds: The defaulter classification parameters

DESIGN PRINCIPLES:
  1. Immutability: Records are computed once at construction, never mutated
  2. Precision: Uses decimal.Decimal for rates to avoid floating-point errors
  3. Purity: No I/O anywhere in this package; collaborators hand in
     fully-formed strings and thresholds and render the results

USAGE:
  rec, err := attendance.NewRecord("Alice", "YYYYYYYYYYYYYYYYYYYYYYYYYYYYYY")
  if err != nil {
      // validation failure, see errors.go
  }
  rec.IsDefaulter(decimal.NewFromFloat(0.10), 5)

SEE ALSO:
  - record.go: Record parsing and statistics
  - roster.go: Roster collection and report generation
  - errors.go: Validation error types
*/
package attendance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PRESENCE - One day's attendance value
// =============================================================================

// Presence is the attendance value for a single day.
type Presence bool

const (
	Present Presence = true
	Absent  Presence = false
)

// Rune returns the canonical rendering of the value: 'Y' or 'N'.
func (p Presence) Rune() rune {
	if p == Present {
		return 'Y'
	}
	return 'N'
}

func (p Presence) String() string {
	if p == Present {
		return "present"
	}
	return "absent"
}

// parsePresence maps an accepted input character to a Presence value.
// Accepted set: 1/Y/y -> Present, 0/N/n -> Absent. Anything else is invalid.
func parsePresence(c rune) (Presence, bool) {
	switch c {
	case '1', 'Y', 'y':
		return Present, true
	case '0', 'N', 'n':
		return Absent, true
	default:
		return Absent, false
	}
}

// =============================================================================
// WINDOW - Fixed attendance window
// =============================================================================

// WindowDays is the length of the attendance window every record covers.
// Records represent a closed historical window, not a live log.
const WindowDays = 30

// =============================================================================
// THRESHOLDS - Defaulter classification parameters
// =============================================================================

// Thresholds holds the defaulter classification parameters.
//
//   - AbsenceCeiling: fraction in [0,1]; a record whose absence rate is
//     STRICTLY greater than this is a defaulter.
//   - MinStreak: days; a record whose max present streak is STRICTLY less
//     than this is a defaulter.
//
// The two conditions are independent and OR-combined.
type Thresholds struct {
	AbsenceCeiling decimal.Decimal
	MinStreak      int
}

// ThresholdsFromPercent builds Thresholds from user-facing inputs: an
// absence threshold as a percentage (0-100) and a minimum streak in days.
func ThresholdsFromPercent(absencePercent decimal.Decimal, minStreak int) Thresholds {
	return Thresholds{
		AbsenceCeiling: absencePercent.Div(decimal.NewFromInt(100)),
		MinStreak:      minStreak,
	}
}
