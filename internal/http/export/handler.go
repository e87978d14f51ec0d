package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/export"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
	feehttp "github.com/MrJamesThe3rd/campus/internal/http/fee"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

// download streams the receipt register as CSV. It takes the same filters as
// the fee list.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyId"))
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid company id.")
		return
	}

	filter, err := feehttp.ParseListFilter(companyID, r.URL.Query())
	if err != nil {
		envelope.Error(w, r, err, "Internal server error.")
		return
	}

	fees, err := h.svc.Register(r.Context(), filter)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to export fees.")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"fee_register_%s.csv\"", time.Now().Format("20060102")))

	if err := export.WriteCSV(w, fees); err != nil {
		slog.ErrorContext(r.Context(), "failed to write fee register", "error", err)
	}
}
