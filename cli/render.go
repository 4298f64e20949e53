/*
render.go - Console rendering for the attendance report

PURPOSE:
  Turns an attendance.Report into the textual report: section headers,
  a legend, one line per student with defaulters highlighted in red and
  suffixed [DEFAULTER], and the cohort aggregates.

COLOR:
  No terminal library; plain ANSI escape constants, suppressed entirely
  when Session.NoColor is set (or output is not a terminal - callers
  decide and set the flag).
*/
package cli

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// ANSI COLORS
// =============================================================================

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorBold  = "\x1b[1m"
)

// paint wraps s in the given ANSI code unless colors are disabled.
func (s *Session) paint(code, text string) string {
	if s.NoColor {
		return text
	}
	return code + text + colorReset
}

// =============================================================================
// REPORT RENDERING
// =============================================================================

// render writes the full report for an already-computed classification.
func (s *Session) render(rep *attendance.Report) {
	nameWidth := minRenderNameWidth
	for _, e := range rep.Entries {
		if n := len(e.Record.Name()); n > nameWidth {
			nameWidth = n
		}
	}

	s.printf("\n%s\n", s.paint(colorBold, "ATTENDANCE REPORT"))
	s.printf("%s\n", strings.Repeat("=", nameWidth+52))
	s.printf("thresholds: absence > %s%%, max streak < %d days\n",
		rep.Thresholds.AbsenceCeiling.Mul(hundred).String(), rep.Thresholds.MinStreak)
	s.printf("legend: Y present, N absent; %s marks a defaulter\n\n",
		s.paint(colorRed, "[DEFAULTER]"))

	for _, e := range rep.Entries {
		line := e.Record.FormatLine(nameWidth)
		if e.Defaulter {
			s.printf("%s\n", s.paint(colorRed, line+" [DEFAULTER]"))
		} else {
			s.printf("%s\n", line)
		}
	}

	s.printf("%s\n", strings.Repeat("-", nameWidth+52))
	s.printf("students:             %d\n", len(rep.Entries))
	s.printf("defaulters:           %d (%s%%)\n",
		rep.DefaulterCount, percent1(rep.DefaulterPercentage))
	s.printf("overall absence rate: %s%%\n", percent1(rep.OverallAbsenceRate))
	s.printf("average max streak:   %s days\n", rep.AvgMaxStreak.Round(1).String())
}

const minRenderNameWidth = 12

// percent1 renders a [0,1] fraction as a percentage with one decimal.
func percent1(frac decimal.Decimal) string {
	return frac.Mul(hundred).Round(1).String()
}
