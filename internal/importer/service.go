package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type FeeCreator interface {
	Create(ctx context.Context, params fee.CreateParams) (*fee.Fee, error)
}

type StudentResolver interface {
	FindByEnrollment(ctx context.Context, companyID uuid.UUID, number string) (*student.Student, error)
}

type Service struct {
	fees     FeeCreator
	students StudentResolver
}

func NewService(fees FeeCreator, students StudentResolver) *Service {
	return &Service{fees: fees, students: students}
}

type Request struct {
	CompanyID uuid.UUID
	BranchID  *uuid.UUID
	CreatedBy *uuid.UUID
}

// Result is the outcome of one imported row.
type Result struct {
	Line          int
	FeeID         uuid.UUID
	ReceiptNumber string
	Error         string
}

type Report struct {
	Charset string
	Created int
	Failed  int
	Results []Result
}

// Import creates one fee per row of r. Each row commits on its own so a bad
// row is reported without undoing the rows around it. An unknown company or
// branch stops the import.
func (s *Service) Import(ctx context.Context, req Request, r io.Reader) (*Report, error) {
	file, err := Parse(r)
	if err != nil {
		return nil, err
	}

	report := &Report{Charset: file.Charset, Results: make([]Result, 0, len(file.Rows))}

	for _, row := range file.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := Result{Line: row.Line}

		f, err := s.importRow(ctx, req, row)
		switch {
		case err == nil:
			res.FeeID = f.ID
			res.ReceiptNumber = f.ReceiptNumber
			report.Created++
		case errors.Is(err, tenant.ErrCompanyNotFound), errors.Is(err, tenant.ErrBranchNotFound):
			return nil, err
		default:
			res.Error = rowMessage(ctx, row.Line, err)
			report.Failed++
		}

		report.Results = append(report.Results, res)
	}

	slog.InfoContext(ctx, "fee import finished",
		"company_id", req.CompanyID,
		"charset", report.Charset,
		"created", report.Created,
		"failed", report.Failed,
	)

	return report, nil
}

func (s *Service) importRow(ctx context.Context, req Request, row Row) (*fee.Fee, error) {
	if row.Err != nil {
		return nil, row.Err
	}

	studentID := row.StudentID
	if studentID == uuid.Nil {
		st, err := s.students.FindByEnrollment(ctx, req.CompanyID, row.Enrollment)
		if err != nil {
			if errors.Is(err, student.ErrNotFound) {
				return nil, rowError(fmt.Sprintf("no student with enrollment number %q", row.Enrollment))
			}

			return nil, err
		}

		studentID = st.ID
	}

	return s.fees.Create(ctx, fee.CreateParams{
		CompanyID:   req.CompanyID,
		BranchID:    req.BranchID,
		StudentID:   studentID,
		Type:        row.Type,
		Amount:      row.Amount,
		IsGST:       row.IsGST,
		GSTRate:     row.GSTRate,
		GSTNumber:   row.GSTNumber,
		Status:      row.Status,
		PaymentDate: row.PaymentDate,
		PaymentMode: row.Mode,
		Description: row.Description,
		CreatedBy:   req.CreatedBy,
	})
}

// rowMessage is what the report says about a failed row. Ledger errors the
// caller can act on pass through; anything else is logged and masked.
func rowMessage(ctx context.Context, line int, err error) string {
	var verr *fee.ValidationError

	var rerr rowError

	switch {
	case errors.As(err, &rerr):
		return string(rerr)
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, fee.ErrStudentNotFound), errors.Is(err, student.ErrNotFound):
		return "Student not found."
	case errors.Is(err, fee.ErrReceiptConflict):
		return "Receipt number conflict, import the row again."
	}

	slog.ErrorContext(ctx, "failed to import fee row", "line", line, "error", err)

	return "Failed to record fee."
}
