package export_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/export"
	"github.com/MrJamesThe3rd/campus/internal/fee"
	exporthttp "github.com/MrJamesThe3rd/campus/internal/http/export"
)

type listerFunc func(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error)

func (f listerFunc) List(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	return f(ctx, filter)
}

func setup(t *testing.T, list listerFunc) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api/{companyId}/fee/export", exporthttp.NewHandler(export.NewService(list)).Routes)

	return r
}

func paidFee() *fee.Fee {
	return &fee.Fee{
		ID:            uuid.New(),
		ReceiptNumber: "ACME-MAIN-0001",
		Type:          fee.TypeTuition,
		Status:        fee.StatusPaid,
		PaymentMode:   fee.ModeUPI,
		PaymentDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("1000"),
		GSTAmount:     decimal.RequireFromString("180"),
		TotalWithGST:  decimal.RequireFromString("1180"),
	}
}

func TestHandler_Download(t *testing.T) {
	companyID := uuid.New()
	path := "/api/" + companyID.String() + "/fee/export"

	t.Run("Success", func(t *testing.T) {
		h := setup(t, func(_ context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
			assert.Equal(t, companyID, filter.CompanyID)
			require.NotNil(t, filter.PaidTo)

			return []*fee.Fee{paidFee()}, nil
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path+"?to=2026-06-30", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "fee_register_")

		rows, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ACME-MAIN-0001", rows[1][0])
		assert.Equal(t, "1180.00", rows[1][8])
	})

	t.Run("Invalid filter", func(t *testing.T) {
		h := setup(t, func(context.Context, fee.ListFilter) ([]*fee.Fee, error) {
			t.Fatal("list must not be called")
			return nil, nil
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path+"?branch=north", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("List failure", func(t *testing.T) {
		h := setup(t, func(context.Context, fee.ListFilter) ([]*fee.Fee, error) {
			return nil, errors.New("db down")
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
