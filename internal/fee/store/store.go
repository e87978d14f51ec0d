package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/student"
)

const (
	uniqueViolation      = "23505"
	receiptNumberKey     = "fees_receipt_number_key"
	receiptLockNamespace = "fees.receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

const selectFeeColumns = `
	f.id, f.company_id, f.branch_id, f.student_id, f.fee_type, f.amount,
	f.is_gst, f.gst_rate, f.gst_amount, f.total_with_gst, f.gst_number,
	f.status, f.receipt_number, f.payment_date, f.payment_mode, f.description,
	COALESCE(f.attachment, ''), f.created_by, f.created_at, f.updated_at,
	f.deleted_at, f.deleted_by, s.first_name, s.last_name, b.name
`

const feeJoins = `
	FROM fees f
	LEFT JOIN students s ON s.id = f.student_id
	LEFT JOIN branches b ON b.id = f.branch_id
`

// scanFee reads a row in selectFeeColumns order.
func scanFee(s scanner) (*fee.Fee, error) {
	var f fee.Fee

	var typeStr, statusStr, modeStr string

	var firstName, lastName, branchName sql.NullString

	if err := s.Scan(
		&f.ID, &f.CompanyID, &f.BranchID, &f.StudentID, &typeStr, &f.Amount,
		&f.IsGST, &f.GSTRate, &f.GSTAmount, &f.TotalWithGST, &f.GSTNumber,
		&statusStr, &f.ReceiptNumber, &f.PaymentDate, &modeStr, &f.Description,
		&f.Attachment, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
		&f.DeletedAt, &f.DeletedBy, &firstName, &lastName, &branchName,
	); err != nil {
		return nil, err
	}

	f.Type = fee.Type(typeStr)
	f.Status = fee.Status(statusStr)
	f.PaymentMode = fee.Mode(modeStr)

	if firstName.Valid {
		f.Student = &fee.StudentRef{ID: f.StudentID, FirstName: firstName.String, LastName: lastName.String}
	}

	if branchName.Valid && f.BranchID != nil {
		f.Branch = &fee.BranchRef{ID: *f.BranchID, Name: branchName.String}
	}

	return &f, nil
}

func getFee(ctx context.Context, q queryer, companyID, id uuid.UUID, suffix string) (*fee.Fee, error) {
	query := `SELECT ` + selectFeeColumns + feeJoins + `
		WHERE f.id = $1 AND f.company_id = $2 AND f.deleted_at IS NULL` + suffix

	f, err := scanFee(q.QueryRowContext(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fee.ErrNotFound
		}

		return nil, fmt.Errorf("getting fee: %w", err)
	}

	return f, nil
}

func (s *Store) GetFee(ctx context.Context, companyID, id uuid.UUID) (*fee.Fee, error) {
	return getFee(ctx, s.db, companyID, id, "")
}

func (s *Store) ListFees(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	query := `SELECT ` + selectFeeColumns + feeJoins + `
		WHERE f.company_id = $1 AND f.deleted_at IS NULL`

	args := []any{filter.CompanyID}

	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += fmt.Sprintf(" AND f.branch_id = $%d", len(args))
	}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND f.student_id = $%d", len(args))
	}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND f.status = $%d", len(args))
	}

	if filter.PaidFrom != nil {
		args = append(args, *filter.PaidFrom)
		query += fmt.Sprintf(" AND f.payment_date >= $%d", len(args))
	}

	if filter.PaidTo != nil {
		args = append(args, *filter.PaidTo)
		query += fmt.Sprintf(" AND f.payment_date <= $%d", len(args))
	}

	query += " ORDER BY f.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fees: %w", err)
	}
	defer rows.Close()

	var fees []*fee.Fee

	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fee: %w", err)
		}

		fees = append(fees, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fee rows: %w", err)
	}

	return fees, nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (s *Store) BeginLedger(ctx context.Context) (fee.LedgerTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: dbTx}, nil
}

func (l *ledgerTx) Commit() error { return l.tx.Commit() }

func (l *ledgerTx) Rollback() error {
	if err := l.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func (l *ledgerTx) GetFeeForUpdate(ctx context.Context, companyID, id uuid.UUID) (*fee.Fee, error) {
	return getFee(ctx, l.tx, companyID, id, " FOR UPDATE OF f")
}

func (l *ledgerTx) LockStudents(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*student.Student, error) {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `
		SELECT id, company_id, branch_id, enrollment_number, first_name, last_name,
			total_fee, amount_paid, extra_paid, gst_paid, created_at, updated_at, deleted_at
		FROM students
		WHERE id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY id
		FOR UPDATE`

	rows, err := l.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("locking students: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*student.Student, len(ids))

	for rows.Next() {
		var st student.Student

		if err := rows.Scan(
			&st.ID, &st.CompanyID, &st.BranchID, &st.EnrollmentNumber, &st.FirstName, &st.LastName,
			&st.TotalFee, &st.AmountPaid, &st.ExtraPaid, &st.GSTPaid,
			&st.CreatedAt, &st.UpdatedAt, &st.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}

		out[st.ID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating student rows: %w", err)
	}

	return out, nil
}

func receiptLockKey(companyID uuid.UUID, branchID *uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(receiptLockNamespace))
	h.Write([]byte{0})
	h.Write(companyID[:])
	h.Write([]byte{0})

	if branchID != nil {
		h.Write(branchID[:])
	}

	return int64(h.Sum64())
}

func (l *ledgerTx) LockReceiptScope(ctx context.Context, companyID uuid.UUID, branchID *uuid.UUID) error {
	if _, err := l.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", receiptLockKey(companyID, branchID)); err != nil {
		return fmt.Errorf("acquiring receipt lock: %w", err)
	}

	return nil
}

func (l *ledgerTx) LastReceiptNumber(ctx context.Context, companyID uuid.UUID, branchID *uuid.UUID) (string, error) {
	query := `
		SELECT receipt_number
		FROM fees
		WHERE company_id = $1 AND branch_id IS NOT DISTINCT FROM $2
		ORDER BY created_at DESC, receipt_number DESC
		LIMIT 1
	`

	var last string

	err := l.tx.QueryRowContext(ctx, query, companyID, branchID).Scan(&last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("reading last receipt number: %w", err)
	}

	return last, nil
}

func (l *ledgerTx) CreateFee(ctx context.Context, f *fee.Fee) error {
	query := `
		INSERT INTO fees (
			company_id, branch_id, student_id, fee_type, amount, is_gst, gst_rate,
			gst_amount, total_with_gst, gst_number, status, receipt_number,
			payment_date, payment_mode, description, attachment, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''), $17, clock_timestamp())
		RETURNING id, created_at
	`

	err := l.tx.QueryRowContext(ctx, query,
		f.CompanyID,
		f.BranchID,
		f.StudentID,
		string(f.Type),
		f.Amount,
		f.IsGST,
		f.GSTRate,
		f.GSTAmount,
		f.TotalWithGST,
		f.GSTNumber,
		string(f.Status),
		f.ReceiptNumber,
		f.PaymentDate,
		string(f.PaymentMode),
		f.Description,
		f.Attachment,
		f.CreatedBy,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == receiptNumberKey {
			return fee.ErrReceiptConflict
		}

		return fmt.Errorf("inserting fee: %w", err)
	}

	return nil
}

func (l *ledgerTx) UpdateFee(ctx context.Context, f *fee.Fee) error {
	query := `
		UPDATE fees
		SET branch_id = $1, student_id = $2, fee_type = $3, amount = $4, is_gst = $5,
			gst_rate = $6, gst_amount = $7, total_with_gst = $8, gst_number = $9,
			status = $10, payment_date = $11, payment_mode = $12, description = $13,
			attachment = NULLIF($14, ''), updated_at = NOW()
		WHERE id = $15 AND company_id = $16 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := l.tx.QueryRowContext(ctx, query,
		f.BranchID,
		f.StudentID,
		string(f.Type),
		f.Amount,
		f.IsGST,
		f.GSTRate,
		f.GSTAmount,
		f.TotalWithGST,
		f.GSTNumber,
		string(f.Status),
		f.PaymentDate,
		string(f.PaymentMode),
		f.Description,
		f.Attachment,
		f.ID,
		f.CompanyID,
	).Scan(&f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fee.ErrNotFound
		}

		return fmt.Errorf("updating fee: %w", err)
	}

	return nil
}

func (l *ledgerTx) SoftDeleteFee(ctx context.Context, companyID, id uuid.UUID, deletedBy *uuid.UUID) error {
	query := `
		UPDATE fees
		SET deleted_at = NOW(), deleted_by = $1
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
	`

	res, err := l.tx.ExecContext(ctx, query, deletedBy, id, companyID)
	if err != nil {
		return fmt.Errorf("soft deleting fee: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fee.ErrNotFound
	}

	return nil
}

func (l *ledgerTx) ApplyDelta(ctx context.Context, studentID uuid.UUID, delta student.Counters) error {
	query := `
		UPDATE students
		SET amount_paid = amount_paid + $1, extra_paid = extra_paid + $2,
			gst_paid = gst_paid + $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := l.tx.ExecContext(ctx, query, delta.AmountPaid, delta.ExtraPaid, delta.GSTPaid, studentID)
	if err != nil {
		return fmt.Errorf("applying counter delta: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return fee.ErrStudentNotFound
	}

	return nil
}
