/*
errors.go - Centralized error types for the attendance engine

PURPOSE:
  All validation error types in one place for consistency and
  discoverability. Collaborators match on sentinels with errors.Is() or
  extract detail with errors.As().

ERROR CATEGORIES:
  1. Record validation - empty name, invalid character, wrong length
  2. Roster validation - report requested on an empty roster

USAGE:
  if err := roster.Add(name, raw); err != nil {
      if attendance.IsValidationError(err) {
          // report to the user, keep the session alive
      }
  }

SEE ALSO:
  - record.go: Raises record validation errors at construction
  - roster.go: Raises ErrEmptyRoster from Report
*/
package attendance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptyName is returned when a record name is empty or all-whitespace.
	ErrEmptyName = errors.New("empty name")

	// ErrInvalidCharacter is returned when the attendance string contains a
	// character outside the accepted set {0,1,Y,y,N,n}.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrWrongLength is returned when the attendance string does not contain
	// exactly WindowDays accepted characters.
	ErrWrongLength = errors.New("wrong length")

	// ErrEmptyRoster is returned when a report is requested on a roster with
	// zero records. The aggregate means are undefined with no students, so
	// this is an explicit error rather than NaN output.
	ErrEmptyRoster = errors.New("empty roster")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidCharacterError names the first offending character in the input.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: %c", e.Char)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// WrongLengthError carries the actual accepted-character count.
type WrongLengthError struct {
	Count int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("wrong length: got %d days, want %d", e.Count, WindowDays)
}

func (e *WrongLengthError) Unwrap() error {
	return ErrWrongLength
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is a local validation failure
// the caller should report and recover from (as opposed to a programming
// error). Every error this package produces qualifies.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidCharacter) ||
		errors.Is(err, ErrWrongLength) ||
		errors.Is(err, ErrEmptyRoster)
}
