/*
handlers.go - HTTP handlers for the attendance analyzer

PURPOSE:
  Exposes the attendance core over a small JSON API. Handles HTTP
  request/response, JSON serialization, and delegates all semantics to
  the attendance package.

ENDPOINTS:
  POST /api/records  Add one student record
  GET  /api/records  List records in insertion order
  GET  /api/report   Classification report for the current roster
  POST /api/reset    Clear the roster (new analysis session)

ARCHITECTURE:
  Handler owns ONE roster for ONE analysis session. The core provides no
  internal synchronization, so the handler serializes every add/report
  behind a mutex. Multi-user sessions are out of scope; this is the
  single-owner contract, enforced at the embedding layer.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON or query values
  - 422: Record validation failures (empty name, invalid char, length)
  - 409: Report requested on an empty roster
  - 500: Anything else (should not happen; the core is total)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/attendance"
)

// =============================================================================
// HANDLER
// =============================================================================

// Handler holds the session roster and serializes access to it.
type Handler struct {
	mu     sync.Mutex
	roster *attendance.Roster

	// ids runs parallel to the roster's insertion order; the core has no
	// record identity, so the API layer assigns one per added record.
	ids []string
}

// NewHandler creates a handler with an empty roster.
func NewHandler() *Handler {
	return &Handler{roster: attendance.NewRoster()}
}

// =============================================================================
// RECORD ENDPOINTS
// =============================================================================

// AddRecord handles POST /api/records.
func (h *Handler) AddRecord(w http.ResponseWriter, r *http.Request) {
	var req AddRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// The core treats whitespace as invalid; stripping it is this
	// caller's responsibility.
	raw := strings.Join(strings.Fields(req.Attendance), "")

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.roster.Add(req.Name, raw); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id := uuid.NewString()
	h.ids = append(h.ids, id)

	recs := h.roster.Records()
	writeJSON(w, http.StatusCreated, toRecordDTO(id, recs[len(recs)-1]))
}

// ListRecords handles GET /api/records.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	recs := h.roster.Records()
	out := make([]RecordDTO, 0, len(recs))
	for i, rec := range recs {
		out = append(out, toRecordDTO(h.ids[i], rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Reset handles POST /api/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.roster = attendance.NewRoster()
	h.ids = nil
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// REPORT ENDPOINT
// =============================================================================

// GetReport handles GET /api/report.
// Query parameters: absence_threshold (percent, 0-100), min_streak (days).
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	absencePercent, err := decimal.NewFromString(q.Get("absence_threshold"))
	if err != nil || absencePercent.IsNegative() || absencePercent.GreaterThan(hundred) {
		writeError(w, http.StatusBadRequest, "absence_threshold must be a percentage between 0 and 100")
		return
	}

	minStreak, err := strconv.Atoi(q.Get("min_streak"))
	if err != nil || minStreak < 0 {
		writeError(w, http.StatusBadRequest, "min_streak must be a non-negative integer")
		return
	}

	th := attendance.ThresholdsFromPercent(absencePercent, minStreak)

	h.mu.Lock()
	rep, err := h.roster.Report(th.AbsenceCeiling, th.MinStreak)
	h.mu.Unlock()

	if err != nil {
		if attendance.IsValidationError(err) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(rep))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
