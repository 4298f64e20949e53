/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// AddRecordRequest is the request to add one student record.
// Attendance may contain internal whitespace; the handler strips it
// before the core sees the string.
type AddRecordRequest struct {
	Name       string `json:"name"`
	Attendance string `json:"attendance"`
}

// RecordDTO represents one validated record in API responses.
// The ID is assigned by the server when the record is added; the core
// itself has no record identity.
type RecordDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Days          string `json:"days"`
	MaxStreak     int    `json:"max_streak"`
	CurrentStreak int    `json:"current_streak"`
	AbsencePct    string `json:"absence_pct"`
}

// ReportEntryDTO is one classified row of the report.
type ReportEntryDTO struct {
	Name          string `json:"name"`
	Days          string `json:"days"`
	MaxStreak     int    `json:"max_streak"`
	CurrentStreak int    `json:"current_streak"`
	AbsencePct    string `json:"absence_pct"`
	Defaulter     bool   `json:"defaulter"`
}

// ReportDTO is the full classification report.
type ReportDTO struct {
	AbsenceThresholdPct string           `json:"absence_threshold_pct"`
	MinStreak           int              `json:"min_streak"`
	Students            int              `json:"students"`
	DefaulterCount      int              `json:"defaulter_count"`
	DefaulterPct        string           `json:"defaulter_pct"`
	OverallAbsencePct   string           `json:"overall_absence_pct"`
	AvgMaxStreak        string           `json:"avg_max_streak"`
	Entries             []ReportEntryDTO `json:"entries"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// MAPPING
// =============================================================================

var hundred = decimal.NewFromInt(100)

func pct(frac decimal.Decimal) string {
	return frac.Mul(hundred).Round(1).String()
}

func toRecordDTO(id string, rec *attendance.Record) RecordDTO {
	return RecordDTO{
		ID:            id,
		Name:          rec.Name(),
		Days:          rec.DayString(),
		MaxStreak:     rec.MaxStreak(),
		CurrentStreak: rec.CurrentStreak(),
		AbsencePct:    pct(rec.AbsenceRate()),
	}
}

func toReportDTO(rep *attendance.Report) ReportDTO {
	dto := ReportDTO{
		AbsenceThresholdPct: pct(rep.Thresholds.AbsenceCeiling),
		MinStreak:           rep.Thresholds.MinStreak,
		Students:            len(rep.Entries),
		DefaulterCount:      rep.DefaulterCount,
		DefaulterPct:        pct(rep.DefaulterPercentage),
		OverallAbsencePct:   pct(rep.OverallAbsenceRate),
		AvgMaxStreak:        rep.AvgMaxStreak.Round(1).String(),
		Entries:             make([]ReportEntryDTO, 0, len(rep.Entries)),
	}
	for _, e := range rep.Entries {
		dto.Entries = append(dto.Entries, ReportEntryDTO{
			Name:          e.Record.Name(),
			Days:          e.Record.DayString(),
			MaxStreak:     e.Record.MaxStreak(),
			CurrentStreak: e.Record.CurrentStreak(),
			AbsencePct:    pct(e.Record.AbsenceRate()),
			Defaulter:     e.Defaulter,
		})
	}
	return dto
}
