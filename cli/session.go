/*
Package cli implements the interactive analysis session.

PURPOSE:
  Owns the line-reading loop around the attendance core: collects one
  student per line, reports validation failures without aborting the
  session, prompts for the defaulter thresholds, and renders the final
  report to the terminal.

SESSION FLOW:
  1. Entry phase: one "name attendance" line per student; blank line ends
  2. Threshold phase: absence threshold as a percentage, minimum streak
     in days; re-prompts until both parse and are in range
  3. Report phase: sorted, classified report with cohort aggregates

ERROR POLICY:
  Validation failures from the core are printed (red) and the loop
  continues. A single invalid record never ends the session; the record
  is rejected in its entirety and the student can be re-entered.

INPUT SPLITTING:
  The first whitespace-delimited token of a line is the student name;
  the remainder, with ALL internal whitespace stripped, is the
  attendance string. The core itself never sees whitespace.

SEE ALSO:
  - render.go: Report rendering and ANSI colors
  - attendance: The pure core this session drives
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/attendance"
)

var hundred = decimal.NewFromInt(100)

// Session drives one interactive analysis over a single roster.
type Session struct {
	Roster *attendance.Roster

	// NoColor disables ANSI escapes in all output.
	NoColor bool

	// Defaults are used when input ends before the threshold prompts are
	// answered (e.g. piped input).
	DefaultAbsencePercent decimal.Decimal
	DefaultMinStreak      int

	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		Roster:                attendance.NewRoster(),
		DefaultAbsencePercent: decimal.NewFromInt(10),
		DefaultMinStreak:      5,
		in:                    bufio.NewScanner(in),
		out:                   out,
	}
}

// Run executes the full session: entry, thresholds, report.
func (s *Session) Run() error {
	s.printf("Enter students, one per line: <name> <30-day attendance (Y/N/1/0)>\n")
	s.printf("Blank line finishes entry.\n\n")

	s.collectRecords()
	absencePercent, minStreak := s.collectThresholds()

	th := attendance.ThresholdsFromPercent(absencePercent, minStreak)
	rep, err := s.Roster.Report(th.AbsenceCeiling, th.MinStreak)
	if err != nil {
		// Empty roster is the only report-time failure; show it and end
		// the session cleanly.
		s.errorf("%v\n", err)
		return nil
	}

	s.render(rep)
	return nil
}

// collectRecords runs the entry phase until a blank line or EOF.
func (s *Session) collectRecords() {
	for {
		s.printf("student> ")
		line, ok := s.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		name, raw := SplitEntry(line)
		if err := s.Roster.Add(name, raw); err != nil {
			s.errorf("rejected: %v\n", err)
			continue
		}
		s.printf("added %s (%d total)\n", name, s.Roster.Len())
	}
}

// SplitEntry splits a raw input line into name and attendance string.
// The first whitespace-delimited token is the name; the rest is joined
// with internal whitespace removed.
func SplitEntry(line string) (name, raw string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], "")
}

// collectThresholds prompts until both values parse and are in range.
// Falls back to the session defaults if input is exhausted.
func (s *Session) collectThresholds() (decimal.Decimal, int) {
	absencePercent := s.DefaultAbsencePercent
	minStreak := s.DefaultMinStreak

	for {
		s.printf("\nabsence threshold (0-100 %%)> ")
		line, ok := s.readLine()
		if !ok {
			return absencePercent, minStreak
		}
		v, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil || v.IsNegative() || v.GreaterThan(hundred) {
			s.errorf("enter a percentage between 0 and 100\n")
			continue
		}
		absencePercent = v
		break
	}

	for {
		s.printf("minimum present streak (days)> ")
		line, ok := s.readLine()
		if !ok {
			return absencePercent, minStreak
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v < 0 {
			s.errorf("enter a non-negative whole number of days\n")
			continue
		}
		minStreak = v
		break
	}

	return absencePercent, minStreak
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// errorf prints a red error line (plain when NoColor is set).
func (s *Session) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(s.out, s.paint(colorRed, msg))
}
