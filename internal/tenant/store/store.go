package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCompany(ctx context.Context, id uuid.UUID) (*tenant.Company, error) {
	query := `
		SELECT id, name, created_at, deleted_at
		FROM companies
		WHERE id = $1 AND deleted_at IS NULL
	`

	var c tenant.Company

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrCompanyNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return &c, nil
}

func (s *Store) GetBranch(ctx context.Context, id, companyID uuid.UUID) (*tenant.Branch, error) {
	query := `
		SELECT id, company_id, name, branch_code, created_at, deleted_at
		FROM branches
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var b tenant.Branch

	err := s.db.QueryRowContext(ctx, query, id, companyID).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Code, &b.CreatedAt, &b.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenant.ErrBranchNotFound
		}

		return nil, fmt.Errorf("getting branch: %w", err)
	}

	return &b, nil
}
