package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/http/auth"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
	"github.com/MrJamesThe3rd/campus/internal/importer"
)

const maxUpload = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type rowResponse struct {
	Line          int        `json:"line"`
	FeeID         *uuid.UUID `json:"feeId,omitempty"`
	ReceiptNumber string     `json:"receiptNumber,omitempty"`
	Error         string     `json:"error,omitempty"`
}

type importResponse struct {
	Charset string        `json:"charset"`
	Created int           `json:"created"`
	Failed  int           `json:"failed"`
	Rows    []rowResponse `json:"rows"`
}

func toImportResponse(report *importer.Report) importResponse {
	resp := importResponse{
		Charset: report.Charset,
		Created: report.Created,
		Failed:  report.Failed,
		Rows:    make([]rowResponse, 0, len(report.Results)),
	}

	for _, res := range report.Results {
		row := rowResponse{Line: res.Line, ReceiptNumber: res.ReceiptNumber, Error: res.Error}
		if res.FeeID != uuid.Nil {
			row.FeeID = new(res.FeeID)
		}

		resp.Rows = append(resp.Rows, row)
	}

	return resp
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyId"))
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid company id.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "Invalid multipart form.")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		envelope.Fail(w, r, http.StatusBadRequest, "File field is required.")
		return
	}
	defer file.Close()

	req := importer.Request{CompanyID: companyID, CreatedBy: auth.UserID(r.Context())}

	if s := r.FormValue("branch"); s != "" {
		branchID, err := uuid.Parse(s)
		if err != nil {
			envelope.Fail(w, r, http.StatusBadRequest, "Invalid branch id.")
			return
		}

		req.BranchID = &branchID
	}

	report, err := h.svc.Import(r.Context(), req, file)
	if err != nil {
		envelope.Error(w, r, err, "Internal server error. Failed to import fees.")
		return
	}

	status := http.StatusCreated
	if report.Created == 0 {
		status = http.StatusUnprocessableEntity
	}

	envelope.JSON(w, r, status, "Fee import processed.", toImportResponse(report))
}
