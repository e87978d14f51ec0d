package fee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fee
type Repository interface {
	GetFee(ctx context.Context, companyID, id uuid.UUID) (*Fee, error)
	ListFees(ctx context.Context, filter ListFilter) ([]*Fee, error)

	BeginLedger(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is one unit of work over fees and student counters. Nothing it
// writes is visible until Commit; Rollback after Commit is a no-op.
type LedgerTx interface {
	GetFeeForUpdate(ctx context.Context, companyID, id uuid.UUID) (*Fee, error)
	// LockStudents locks the given students in id order and returns the ones
	// that exist, soft-deleted included.
	LockStudents(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*student.Student, error)
	// LockReceiptScope serialises receipt allocation within (company, branch).
	LockReceiptScope(ctx context.Context, companyID uuid.UUID, branchID *uuid.UUID) error
	// LastReceiptNumber returns the receipt of the most recently created fee in
	// the scope, deleted fees included, or "" when there is none.
	LastReceiptNumber(ctx context.Context, companyID uuid.UUID, branchID *uuid.UUID) (string, error)

	CreateFee(ctx context.Context, f *Fee) error
	UpdateFee(ctx context.Context, f *Fee) error
	SoftDeleteFee(ctx context.Context, companyID, id uuid.UUID, deletedBy *uuid.UUID) error
	ApplyDelta(ctx context.Context, studentID uuid.UUID, delta student.Counters) error

	Commit() error
	Rollback() error
}

type Directory interface {
	ValidateCompany(ctx context.Context, id uuid.UUID) (*tenant.Company, error)
	ValidateBranch(ctx context.Context, id, companyID uuid.UUID) (*tenant.Branch, error)
}

type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Service struct {
	repo     Repository
	tenants  Directory
	uploader Uploader
}

func NewService(repo Repository, tenants Directory, uploader Uploader) *Service {
	return &Service{repo: repo, tenants: tenants, uploader: uploader}
}

// Attachment is an uploaded receipt scan or similar document.
type Attachment struct {
	Filename string
	Body     io.Reader
}

type CreateParams struct {
	CompanyID   uuid.UUID
	BranchID    *uuid.UUID
	StudentID   uuid.UUID
	Type        Type
	Amount      decimal.Decimal
	IsGST       bool
	GSTRate     decimal.Decimal
	GSTNumber   string
	Status      Status
	PaymentDate time.Time
	PaymentMode Mode
	Description string
	CreatedBy   *uuid.UUID
	Attachment  *Attachment
}

// UpdateParams is a partial update. Nil fields keep the stored value.
type UpdateParams struct {
	StudentID   *uuid.UUID
	BranchID    *uuid.UUID
	Type        *Type
	Amount      *decimal.Decimal
	IsGST       *bool
	GSTRate     *decimal.Decimal
	GSTNumber   *string
	Status      *Status
	PaymentDate *time.Time
	PaymentMode *Mode
	Description *string
	Attachment  *Attachment
}

type ListFilter struct {
	CompanyID uuid.UUID
	BranchID  *uuid.UUID
	StudentID *uuid.UUID
	Status    *Status
	// PaidFrom and PaidTo bound the payment date, both inclusive.
	PaidFrom *time.Time
	PaidTo   *time.Time
}

// Create records a fee, allocates its receipt number and credits the
// student's counters when it is PAID.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Fee, error) {
	company, err := s.tenants.ValidateCompany(ctx, params.CompanyID)
	if err != nil {
		return nil, err
	}

	var branchName string

	if params.BranchID != nil {
		branch, err := s.tenants.ValidateBranch(ctx, *params.BranchID, params.CompanyID)
		if err != nil {
			return nil, err
		}

		branchName = branch.Name
	}

	f := &Fee{
		CompanyID:   params.CompanyID,
		BranchID:    params.BranchID,
		StudentID:   params.StudentID,
		Type:        params.Type,
		Amount:      params.Amount,
		IsGST:       params.IsGST,
		GSTRate:     params.GSTRate,
		GSTNumber:   params.GSTNumber,
		Status:      params.Status,
		PaymentDate: params.PaymentDate,
		PaymentMode: params.PaymentMode,
		Description: params.Description,
		CreatedBy:   params.CreatedBy,
	}
	if err := prepare(f); err != nil {
		return nil, err
	}

	ltx, err := s.repo.BeginLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger: %w", err)
	}
	defer ltx.Rollback()

	students, err := ltx.LockStudents(ctx, []uuid.UUID{f.StudentID})
	if err != nil {
		return nil, fmt.Errorf("locking student: %w", err)
	}

	st, err := payer(students, f)
	if err != nil {
		return nil, err
	}

	if tuitionPaid(f) {
		if err := checkTuitionCreate(st, f.Amount); err != nil {
			return nil, err
		}
	}

	if f.Attachment, err = s.upload(ctx, params.Attachment); err != nil {
		return nil, err
	}

	if err := ltx.LockReceiptScope(ctx, f.CompanyID, f.BranchID); err != nil {
		return nil, fmt.Errorf("locking receipt scope: %w", err)
	}

	last, err := ltx.LastReceiptNumber(ctx, f.CompanyID, f.BranchID)
	if err != nil {
		return nil, fmt.Errorf("reading last receipt: %w", err)
	}

	f.ReceiptNumber = NextReceiptNumber(company.Name, branchName, last)

	if err := ltx.CreateFee(ctx, f); err != nil {
		return nil, fmt.Errorf("creating fee: %w", err)
	}

	if err := s.apply(ctx, ltx, Reconcile(nil, f)); err != nil {
		return nil, err
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger: %w", err)
	}

	return f, nil
}

// Update applies a partial change to an active fee and reconciles the
// counters of every student it touches.
func (s *Service) Update(ctx context.Context, companyID, id uuid.UUID, params UpdateParams) (*Fee, error) {
	if _, err := s.tenants.ValidateCompany(ctx, companyID); err != nil {
		return nil, err
	}

	if params.BranchID != nil {
		if _, err := s.tenants.ValidateBranch(ctx, *params.BranchID, companyID); err != nil {
			return nil, err
		}
	}

	ltx, err := s.repo.BeginLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger: %w", err)
	}
	defer ltx.Rollback()

	before, err := ltx.GetFeeForUpdate(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	after := before.clone()
	params.apply(after)

	if err := prepare(after); err != nil {
		return nil, err
	}

	ids := []uuid.UUID{before.StudentID}
	if after.StudentID != before.StudentID {
		ids = append(ids, after.StudentID)
	}

	students, err := ltx.LockStudents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("locking students: %w", err)
	}

	st, err := payer(students, after)
	if err != nil {
		return nil, err
	}

	if tuitionPaid(after) {
		if err := checkTuitionUpdate(st, before, after); err != nil {
			return nil, err
		}
	}

	if params.Attachment != nil {
		if after.Attachment, err = s.upload(ctx, params.Attachment); err != nil {
			return nil, err
		}
	}

	if err := ltx.UpdateFee(ctx, after); err != nil {
		return nil, fmt.Errorf("updating fee: %w", err)
	}

	if err := s.apply(ctx, ltx, Reconcile(before, after)); err != nil {
		return nil, err
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger: %w", err)
	}

	return after, nil
}

// Delete soft-deletes an active fee and reverses its contribution.
func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID, deletedBy *uuid.UUID) error {
	if _, err := s.tenants.ValidateCompany(ctx, companyID); err != nil {
		return err
	}

	ltx, err := s.repo.BeginLedger(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger: %w", err)
	}
	defer ltx.Rollback()

	before, err := ltx.GetFeeForUpdate(ctx, companyID, id)
	if err != nil {
		return err
	}

	if _, err := ltx.LockStudents(ctx, []uuid.UUID{before.StudentID}); err != nil {
		return fmt.Errorf("locking student: %w", err)
	}

	if err := ltx.SoftDeleteFee(ctx, companyID, id, deletedBy); err != nil {
		return fmt.Errorf("deleting fee: %w", err)
	}

	if err := s.apply(ctx, ltx, Reconcile(before, nil)); err != nil {
		return err
	}

	if err := ltx.Commit(); err != nil {
		return fmt.Errorf("commit ledger: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, companyID, id uuid.UUID) (*Fee, error) {
	if _, err := s.tenants.ValidateCompany(ctx, companyID); err != nil {
		return nil, err
	}

	return s.repo.GetFee(ctx, companyID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Fee, error) {
	if _, err := s.tenants.ValidateCompany(ctx, filter.CompanyID); err != nil {
		return nil, err
	}

	if filter.BranchID != nil {
		if _, err := s.tenants.ValidateBranch(ctx, *filter.BranchID, filter.CompanyID); err != nil {
			return nil, err
		}
	}

	if filter.Status != nil {
		status := Status(normalize(string(*filter.Status)))
		if !status.Valid() {
			return nil, validationf("Invalid status %q.", *filter.Status)
		}

		filter.Status = &status
	}

	if filter.PaidFrom != nil && filter.PaidTo != nil && filter.PaidTo.Before(*filter.PaidFrom) {
		return nil, validationf("Payment date range ends before it starts.")
	}

	return s.repo.ListFees(ctx, filter)
}

func (s *Service) apply(ctx context.Context, ltx LedgerTx, adjustments []Adjustment) error {
	for _, a := range adjustments {
		if err := ltx.ApplyDelta(ctx, a.StudentID, a.Delta); err != nil {
			slog.ErrorContext(ctx, "failed to adjust student counters",
				"student_id", a.StudentID,
				"amount_paid", a.Delta.AmountPaid.String(),
				"extra_paid", a.Delta.ExtraPaid.String(),
				"gst_paid", a.Delta.GSTPaid.String(),
				"error", err,
			)

			return fmt.Errorf("adjusting counters for student %s: %w", a.StudentID, err)
		}
	}

	return nil
}

func (s *Service) upload(ctx context.Context, a *Attachment) (string, error) {
	if a == nil {
		return "", nil
	}

	url, err := s.uploader.Upload(ctx, a.Filename, a.Body)
	if err != nil {
		return "", fmt.Errorf("uploading attachment: %w", err)
	}

	return url, nil
}

// payer returns the locked student f is charged to, provided it is active and
// belongs to the fee's company.
func payer(students map[uuid.UUID]*student.Student, f *Fee) (*student.Student, error) {
	st, ok := students[f.StudentID]
	if !ok || st.DeletedAt != nil || st.CompanyID != f.CompanyID {
		return nil, ErrStudentNotFound
	}

	return st, nil
}

func (p UpdateParams) apply(f *Fee) {
	if p.StudentID != nil && *p.StudentID != f.StudentID {
		f.StudentID = *p.StudentID
		f.Student = nil
	}

	if p.BranchID != nil && (f.BranchID == nil || *p.BranchID != *f.BranchID) {
		f.BranchID = p.BranchID
		f.Branch = nil
	}

	if p.Type != nil {
		f.Type = *p.Type
	}

	if p.Amount != nil {
		f.Amount = *p.Amount
	}

	if p.IsGST != nil {
		f.IsGST = *p.IsGST
	}

	if p.GSTRate != nil {
		f.GSTRate = *p.GSTRate
	}

	if p.GSTNumber != nil {
		f.GSTNumber = *p.GSTNumber
	}

	if p.Status != nil {
		f.Status = *p.Status
	}

	if p.PaymentDate != nil {
		f.PaymentDate = *p.PaymentDate
	}

	if p.PaymentMode != nil {
		f.PaymentMode = *p.PaymentMode
	}

	if p.Description != nil {
		f.Description = *p.Description
	}
}

// prepare normalises enums, applies defaults, validates f and recomputes its
// GST fields.
func prepare(f *Fee) error {
	if f.StudentID == uuid.Nil {
		return validationf("Student is required.")
	}

	if f.PaymentDate.IsZero() {
		return validationf("Payment date is required.")
	}

	f.Type = Type(normalize(string(f.Type)))
	if f.Type == "" {
		return validationf("Fee type is required.")
	}

	if !f.Type.Valid() {
		return validationf("Invalid fee type %q.", f.Type)
	}

	f.Status = Status(normalize(string(f.Status)))
	if f.Status == "" {
		f.Status = StatusPaid
	}

	if !f.Status.Valid() {
		return validationf("Invalid status %q.", f.Status)
	}

	f.PaymentMode = Mode(normalize(string(f.PaymentMode)))
	if f.PaymentMode == "" {
		f.PaymentMode = ModeCash
	}

	if !f.PaymentMode.Valid() {
		return validationf("Invalid payment mode %q.", f.PaymentMode)
	}

	if f.Amount.IsNegative() {
		return validationf("Amount must not be negative.")
	}

	f.Amount = f.Amount.Round(2)
	if f.Amount.GreaterThan(maxAmount) {
		return validationf("Amount must not exceed %s.", maxAmount.StringFixed(2))
	}

	if f.GSTRate.IsNegative() {
		return validationf("GST rate must not be negative.")
	}

	// Stored as NUMERIC(7, 2); GST is computed from the rate as it reloads.
	f.GSTRate = f.GSTRate.Round(2)
	if f.IsGST && f.GSTRate.GreaterThan(hundred) {
		return validationf("GST rate must not exceed 100.")
	}

	gst := ComputeGST(f.Amount, f.IsGST, f.GSTRate)
	f.GSTRate = gst.Rate
	f.GSTAmount = gst.Amount
	f.TotalWithGST = gst.TotalWithGST

	return nil
}
