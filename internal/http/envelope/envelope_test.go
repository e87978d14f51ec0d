package envelope_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/attachment"
	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
	"github.com/MrJamesThe3rd/campus/internal/importer"
	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&fee.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", &fee.ValidationError{Message: "bad"}), http.StatusBadRequest},
		{envelope.BadRequest("Invalid fee id."), http.StatusBadRequest},
		{fmt.Errorf("parsing import: %w", importer.ErrNoHeader), http.StatusBadRequest},
		{tenant.ErrCompanyNotFound, http.StatusNotFound},
		{tenant.ErrBranchNotFound, http.StatusNotFound},
		{fee.ErrNotFound, http.StatusNotFound},
		{fee.ErrStudentNotFound, http.StatusNotFound},
		{student.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("creating fee: %w", fee.ErrReceiptConflict), http.StatusConflict},
		{fmt.Errorf("uploading attachment: %w", attachment.ErrTooLarge), http.StatusRequestEntityTooLarge},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, envelope.StatusFor(tt.err))
		})
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope.Body {
	t.Helper()

	var body envelope.Body
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestError(t *testing.T) {
	t.Run("Known error keeps its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		envelope.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), fee.ErrNotFound, "Internal server error.")

		body := decode(t, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.False(t, body.Success)
		assert.Equal(t, "fee record not found", body.Message)
	})

	t.Run("Unexpected error is hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		envelope.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password"), "Internal server error. Failed to fetch fee.")

		body := decode(t, rec)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error. Failed to fetch fee.", body.Message)
	})
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	envelope.JSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, "created", map[string]string{"id": "1"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, body.Status)
	assert.True(t, body.Success)
	assert.Equal(t, map[string]any{"id": "1"}, body.Data)
}
