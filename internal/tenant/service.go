package tenant

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tenant
type Repository interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	GetBranch(ctx context.Context, id, companyID uuid.UUID) (*Branch, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ValidateCompany returns the active company or ErrCompanyNotFound.
func (s *Service) ValidateCompany(ctx context.Context, id uuid.UUID) (*Company, error) {
	if id == uuid.Nil {
		return nil, ErrCompanyNotFound
	}

	return s.repo.GetCompany(ctx, id)
}

// ValidateBranch returns the active branch when it belongs to companyID, or
// ErrBranchNotFound.
func (s *Service) ValidateBranch(ctx context.Context, id, companyID uuid.UUID) (*Branch, error) {
	if id == uuid.Nil {
		return nil, ErrBranchNotFound
	}

	return s.repo.GetBranch(ctx, id, companyID)
}
