package student

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
	"github.com/MrJamesThe3rd/campus/internal/student"
)

type Handler struct {
	svc *student.Service
}

func NewHandler(svc *student.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{studentId}/ledger", h.ledger)
	r.Get("/{studentId}/ledger/audit", h.audit)
}

type countersResponse struct {
	AmountPaid json.Number `json:"amountPaid"`
	ExtraPaid  json.Number `json:"extraPaid"`
	GSTPaid    json.Number `json:"gstPaid"`
}

type ledgerResponse struct {
	StudentID        uuid.UUID   `json:"studentId"`
	EnrollmentNumber string      `json:"enrollmentNumber"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	TotalFee         json.Number `json:"totalFee"`
	countersResponse
	Remaining json.Number `json:"remaining"`
	FullyPaid bool        `json:"fullyPaid"`
}

type auditResponse struct {
	StudentID  uuid.UUID        `json:"studentId"`
	Stored     countersResponse `json:"stored"`
	Recomputed countersResponse `json:"recomputed"`
	Drift      countersResponse `json:"drift"`
	Consistent bool             `json:"consistent"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toCounters(c student.Counters) countersResponse {
	return countersResponse{
		AmountPaid: money(c.AmountPaid),
		ExtraPaid:  money(c.ExtraPaid),
		GSTPaid:    money(c.GSTPaid),
	}
}

func (h *Handler) ledger(w http.ResponseWriter, r *http.Request) {
	companyID, studentID, ok := ids(w, r)
	if !ok {
		return
	}

	l, err := h.svc.Ledger(r.Context(), companyID, studentID)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to fetch student ledger.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Student ledger fetched successfully.", ledgerResponse{
		StudentID:        l.Student.ID,
		EnrollmentNumber: l.Student.EnrollmentNumber,
		FirstName:        l.Student.FirstName,
		LastName:         l.Student.LastName,
		TotalFee:         money(l.Student.TotalFee),
		countersResponse: toCounters(l.Student.Counters),
		Remaining:        money(l.Remaining),
		FullyPaid:        l.FullyPaid,
	})
}

func (h *Handler) audit(w http.ResponseWriter, r *http.Request) {
	companyID, studentID, ok := ids(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Audit(r.Context(), companyID, studentID)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to audit student ledger.")
		return
	}

	envelope.JSON(w, r, http.StatusOK, "Student ledger audited.", auditResponse{
		StudentID:  a.StudentID,
		Stored:     toCounters(a.Stored),
		Recomputed: toCounters(a.Recomputed),
		Drift:      toCounters(a.Drift),
		Consistent: a.Consistent,
	})
}

func ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyId"))
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid company id.")
		return uuid.Nil, uuid.Nil, false
	}

	studentID, err := uuid.Parse(chi.URLParam(r, "studentId"))
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid student id.")
		return uuid.Nil, uuid.Nil, false
	}

	return companyID, studentID, true
}
