package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrBranchNotFound  = errors.New("invalid or non-existent branch for this company")
)

// Company is a tenant. Every ledger record is scoped to one.
type Company struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Branch is a sub-tenant of a company.
type Branch struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
	DeletedAt *time.Time
}
