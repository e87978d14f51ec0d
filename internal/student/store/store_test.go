package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/student/store"
)

var studentColumns = []string{
	"id", "company_id", "branch_id", "enrollment_number", "first_name", "last_name",
	"total_fee", "amount_paid", "extra_paid", "gst_paid", "created_at", "updated_at", "deleted_at",
}

func TestStore_GetStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)
	ctx := context.Background()
	id, companyID, branchID := uuid.New(), uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("FROM students").
			WithArgs(id, companyID).
			WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(
				id.String(), companyID.String(), branchID.String(), "ENR-0001", "Asha", "Patel",
				"25000.00", "5000.00", "1500.00", "270.00", time.Now(), nil, nil,
			))

		st, err := s.GetStudent(ctx, companyID, id)
		require.NoError(t, err)
		assert.Equal(t, id, st.ID)
		require.NotNil(t, st.BranchID)
		assert.Equal(t, branchID, *st.BranchID)
		assert.True(t, decimal.RequireFromString("25000").Equal(st.TotalFee))
		assert.True(t, decimal.RequireFromString("5000").Equal(st.AmountPaid))
		assert.True(t, decimal.RequireFromString("270").Equal(st.GSTPaid))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM students").WithArgs(id, companyID).WillReturnError(sql.ErrNoRows)

		_, err := s.GetStudent(ctx, companyID, id)
		assert.ErrorIs(t, err, student.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SumActivePaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()

	mock.ExpectQuery("FROM fees WHERE student_id = \\$1 AND status = 'PAID' AND deleted_at IS NULL").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"tuition", "extra", "gst"}).AddRow("700.00", "150.00", "36.00"))

	c, err := store.New(db).SumActivePaid(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("700").Equal(c.AmountPaid))
	assert.True(t, decimal.RequireFromString("150").Equal(c.ExtraPaid))
	assert.True(t, decimal.RequireFromString("36").Equal(c.GSTPaid))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByEnrollment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := store.New(db)
	ctx := context.Background()
	id, companyID := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("FROM students WHERE company_id = \\$1 AND enrollment_number = \\$2").
			WithArgs(companyID, "ENR-0042").
			WillReturnRows(sqlmock.NewRows(studentColumns).AddRow(
				id.String(), companyID.String(), nil, "ENR-0042", "Ravi", "Kumar",
				"12000.00", "0.00", "0.00", "0.00", time.Now(), nil, nil,
			))

		st, err := s.FindByEnrollment(ctx, companyID, "ENR-0042")
		require.NoError(t, err)
		assert.Equal(t, id, st.ID)
		assert.Nil(t, st.BranchID)
		assert.Equal(t, "ENR-0042", st.EnrollmentNumber)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM students").
			WithArgs(companyID, "ENR-9999").
			WillReturnError(sql.ErrNoRows)

		_, err := s.FindByEnrollment(ctx, companyID, "ENR-9999")
		assert.ErrorIs(t, err, student.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
