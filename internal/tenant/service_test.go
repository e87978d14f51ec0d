package tenant_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

func TestService_ValidateCompany(t *testing.T) {
	companyID := uuid.New()

	type testCase struct {
		name      string
		id        uuid.UUID
		setupMock func(m *tenant.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Found",
			id:   companyID,
			setupMock: func(m *tenant.MockRepository) {
				m.EXPECT().GetCompany(gomock.Any(), companyID).
					Return(&tenant.Company{ID: companyID, Name: "Bright Minds"}, nil)
			},
		},
		{
			name: "Missing",
			id:   companyID,
			setupMock: func(m *tenant.MockRepository) {
				m.EXPECT().GetCompany(gomock.Any(), companyID).Return(nil, tenant.ErrCompanyNotFound)
			},
			wantErr: tenant.ErrCompanyNotFound,
		},
		{
			name:    "NilID",
			id:      uuid.Nil,
			wantErr: tenant.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := tenant.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := tenant.NewService(repo).ValidateCompany(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, companyID, got.ID)
		})
	}
}

func TestService_ValidateBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID, branchID := uuid.New(), uuid.New()

	repo := tenant.NewMockRepository(ctrl)
	repo.EXPECT().GetBranch(gomock.Any(), branchID, companyID).
		Return(&tenant.Branch{ID: branchID, CompanyID: companyID, Name: "North Campus"}, nil)

	svc := tenant.NewService(repo)

	got, err := svc.ValidateBranch(context.Background(), branchID, companyID)
	assert.NoError(t, err)
	assert.Equal(t, "North Campus", got.Name)

	_, err = svc.ValidateBranch(context.Background(), uuid.Nil, companyID)
	assert.ErrorIs(t, err, tenant.ErrBranchNotFound)
}
