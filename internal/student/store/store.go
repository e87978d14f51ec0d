package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/student"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectStudent = `
	SELECT id, company_id, branch_id, enrollment_number, first_name, last_name,
		total_fee, amount_paid, extra_paid, gst_paid, created_at, updated_at, deleted_at
	FROM students
`

func (s *Store) GetStudent(ctx context.Context, companyID, id uuid.UUID) (*student.Student, error) {
	query := selectStudent + `WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	return scanStudent(s.db.QueryRowContext(ctx, query, id, companyID))
}

// FindByEnrollment looks a student up by the enrollment number printed on
// their admission papers.
func (s *Store) FindByEnrollment(ctx context.Context, companyID uuid.UUID, number string) (*student.Student, error) {
	query := selectStudent + `WHERE company_id = $1 AND enrollment_number = $2 AND deleted_at IS NULL`

	return scanStudent(s.db.QueryRowContext(ctx, query, companyID, number))
}

func scanStudent(row *sql.Row) (*student.Student, error) {
	var st student.Student

	err := row.Scan(
		&st.ID, &st.CompanyID, &st.BranchID, &st.EnrollmentNumber, &st.FirstName, &st.LastName,
		&st.TotalFee, &st.AmountPaid, &st.ExtraPaid, &st.GSTPaid,
		&st.CreatedAt, &st.UpdatedAt, &st.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, student.ErrNotFound
		}

		return nil, fmt.Errorf("getting student: %w", err)
	}

	return &st, nil
}

// SumActivePaid mirrors the ledger's bucket rule: ADMISSION and OTHER are
// extra, every other fee type counts as tuition.
func (s *Store) SumActivePaid(ctx context.Context, id uuid.UUID) (student.Counters, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE fee_type NOT IN ('ADMISSION', 'OTHER')), 0),
			COALESCE(SUM(amount) FILTER (WHERE fee_type IN ('ADMISSION', 'OTHER')), 0),
			COALESCE(SUM(gst_amount), 0)
		FROM fees
		WHERE student_id = $1 AND status = 'PAID' AND deleted_at IS NULL
	`

	var c student.Counters

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.AmountPaid, &c.ExtraPaid, &c.GSTPaid)
	if err != nil {
		return student.Counters{}, fmt.Errorf("summing paid fees: %w", err)
	}

	return c, nil
}
