/*
roster.go - Roster collection and cohort report generation

PURPOSE:
  Holds the insertion-ordered set of attendance records for one analysis
  session and produces the classification report: per-student defaulter
  flags plus cohort-level aggregates.

REPORT SEMANTICS:
  - Records are sorted by name ascending (byte-wise); identical names
    keep their insertion order (stable sort). The roster itself is never
    reordered.
  - Every aggregate is recomputed from the full record set on each call.
    No caching, no incremental state - rosters are classroom-scale and a
    fresh O(n) pass keeps the figures trivially consistent.
  - A report over zero records is an explicit ErrEmptyRoster, never a
    division by zero.

CONCURRENCY:
  The roster provides no internal synchronization. It is owned by a
  single session; an embedding system that shares one roster must
  serialize Add/Report externally (see api.Handler).

SEE ALSO:
  - record.go: Record construction and per-student statistics
  - errors.go: ErrEmptyRoster
*/
package attendance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ROSTER
// =============================================================================

// Roster is an insertion-ordered collection of attendance records.
// Duplicate names are permitted; there is no deduplication.
type Roster struct {
	records []*Record
}

func NewRoster() *Roster {
	return &Roster{}
}

// Add validates and appends one record. Validation failures from
// NewRecord are propagated unchanged; on error the roster is untouched.
func (ro *Roster) Add(name, rawData string) error {
	rec, err := NewRecord(name, rawData)
	if err != nil {
		return err
	}
	ro.records = append(ro.records, rec)
	return nil
}

// Len returns the number of records.
func (ro *Roster) Len() int { return len(ro.records) }

// Records returns a copy of the record slice in insertion order.
func (ro *Roster) Records() []*Record {
	out := make([]*Record, len(ro.records))
	copy(out, ro.records)
	return out
}

// =============================================================================
// REPORT
// =============================================================================

// ReportEntry pairs a record with its classification under the report's
// thresholds.
type ReportEntry struct {
	Record    *Record
	Defaulter bool
}

// Report is the result of one classification pass over the roster.
// All fractional figures are decimals; percentages are fractions in
// [0,1] that renderers scale by 100.
type Report struct {
	Thresholds Thresholds

	// Entries sorted by name ascending, insertion order on ties.
	Entries []ReportEntry

	DefaulterCount      int
	DefaulterPercentage decimal.Decimal
	OverallAbsenceRate  decimal.Decimal
	AvgMaxStreak        decimal.Decimal
}

// Report sorts, classifies, and aggregates the current record set.
// Returns ErrEmptyRoster if no records have been added.
func (ro *Roster) Report(absenceCeiling decimal.Decimal, minStreak int) (*Report, error) {
	if len(ro.records) == 0 {
		return nil, ErrEmptyRoster
	}

	sorted := ro.Records()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	rep := &Report{
		Thresholds: Thresholds{AbsenceCeiling: absenceCeiling, MinStreak: minStreak},
		Entries:    make([]ReportEntry, 0, len(sorted)),
	}

	rateSum := decimal.Zero
	streakSum := decimal.Zero
	for _, rec := range sorted {
		defaulter := rec.IsDefaulter(absenceCeiling, minStreak)
		if defaulter {
			rep.DefaulterCount++
		}
		rep.Entries = append(rep.Entries, ReportEntry{Record: rec, Defaulter: defaulter})
		rateSum = rateSum.Add(rec.AbsenceRate())
		streakSum = streakSum.Add(decimal.NewFromInt(int64(rec.MaxStreak())))
	}

	total := decimal.NewFromInt(int64(len(sorted)))
	rep.DefaulterPercentage = decimal.NewFromInt(int64(rep.DefaulterCount)).Div(total)
	rep.OverallAbsenceRate = rateSum.Div(total)
	rep.AvgMaxStreak = streakSum.Div(total)
	return rep, nil
}
