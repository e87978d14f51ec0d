package envelope

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/campus/internal/attachment"
	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/importer"
	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

// Body is the JSON shape of every API response.
type Body struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := Body{
		Status:  status,
		Success: status < http.StatusBadRequest,
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, message, nil)
}

// Error writes err with the status it maps to. Unexpected errors are logged
// and answered with fallback instead of their text.
func Error(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := StatusFor(err)
	if status != http.StatusInternalServerError {
		Fail(w, r, status, err.Error())
		return
	}

	slog.ErrorContext(r.Context(), fallback, "error", err, "method", r.Method, "path", r.URL.Path)
	Fail(w, r, status, fallback)
}

// BadRequest is a malformed request, reported to the client as is.
type BadRequest string

func (e BadRequest) Error() string { return string(e) }

func StatusFor(err error) int {
	var (
		verr *fee.ValidationError
		bad  BadRequest
	)

	switch {
	case errors.As(err, &verr), errors.As(err, &bad), errors.Is(err, importer.ErrNoHeader):
		return http.StatusBadRequest
	case errors.Is(err, tenant.ErrCompanyNotFound),
		errors.Is(err, tenant.ErrBranchNotFound),
		errors.Is(err, fee.ErrNotFound),
		errors.Is(err, fee.ErrStudentNotFound),
		errors.Is(err, student.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fee.ErrReceiptConflict):
		return http.StatusConflict
	case errors.Is(err, attachment.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
