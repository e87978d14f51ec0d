package student

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=student
type Repository interface {
	GetStudent(ctx context.Context, companyID, id uuid.UUID) (*Student, error)
	// SumActivePaid recomputes the counters from the active PAID fees of a student.
	SumActivePaid(ctx context.Context, id uuid.UUID) (Counters, error)
}

type CompanyValidator interface {
	ValidateCompany(ctx context.Context, id uuid.UUID) (*tenant.Company, error)
}

type Service struct {
	repo      Repository
	companies CompanyValidator
}

func NewService(repo Repository, companies CompanyValidator) *Service {
	return &Service{repo: repo, companies: companies}
}

// Ledger is a student's fee position.
type Ledger struct {
	Student   *Student
	Remaining decimal.Decimal
	FullyPaid bool
}

// Audit compares the stored counters with a recomputation over the fee set.
type Audit struct {
	StudentID  uuid.UUID
	Stored     Counters
	Recomputed Counters
	Drift      Counters
	Consistent bool
}

func (s *Service) Ledger(ctx context.Context, companyID, id uuid.UUID) (*Ledger, error) {
	if _, err := s.companies.ValidateCompany(ctx, companyID); err != nil {
		return nil, err
	}

	st, err := s.repo.GetStudent(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		Student:   st,
		Remaining: st.Remaining(),
		FullyPaid: st.FullyPaid(),
	}, nil
}

func (s *Service) Audit(ctx context.Context, companyID, id uuid.UUID) (*Audit, error) {
	if _, err := s.companies.ValidateCompany(ctx, companyID); err != nil {
		return nil, err
	}

	st, err := s.repo.GetStudent(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	sums, err := s.repo.SumActivePaid(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recomputing counters: %w", err)
	}

	audit := &Audit{
		StudentID:  id,
		Stored:     st.Counters,
		Recomputed: sums,
		Drift:      st.Counters.Add(sums.Neg()),
		Consistent: st.Counters.Equal(sums),
	}

	if !audit.Consistent {
		slog.WarnContext(ctx, "student ledger drift",
			"student_id", id,
			"amount_paid_drift", audit.Drift.AmountPaid.String(),
			"extra_paid_drift", audit.Drift.ExtraPaid.String(),
			"gst_paid_drift", audit.Drift.GSTPaid.String(),
		)
	}

	return audit, nil
}
