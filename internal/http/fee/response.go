package fee

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/fee"
)

type studentResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type branchResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type feeResponse struct {
	ID            uuid.UUID        `json:"id"`
	CompanyID     uuid.UUID        `json:"companyId"`
	BranchID      *uuid.UUID       `json:"branchId"`
	Branch        *branchResponse  `json:"branch,omitempty"`
	StudentID     uuid.UUID        `json:"studentId"`
	Student       *studentResponse `json:"student,omitempty"`
	FeeType       fee.Type         `json:"feeType"`
	Amount        json.Number      `json:"amount"`
	IsGST         bool             `json:"isGst"`
	GSTRate       json.Number      `json:"gstRate"`
	GSTAmount     json.Number      `json:"gstAmount"`
	TotalWithGST  json.Number      `json:"totalWithGst"`
	GSTNumber     string           `json:"gstNumber"`
	Status        fee.Status       `json:"status"`
	ReceiptNumber string           `json:"receiptNumber"`
	PaymentDate   time.Time        `json:"paymentDate"`
	PaymentMode   fee.Mode         `json:"paymentMode"`
	Description   string           `json:"description"`
	Attachment    string           `json:"attachment,omitempty"`
	CreatedBy     *uuid.UUID       `json:"createdBy,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toResponse(f *fee.Fee) feeResponse {
	resp := feeResponse{
		ID:            f.ID,
		CompanyID:     f.CompanyID,
		BranchID:      f.BranchID,
		StudentID:     f.StudentID,
		FeeType:       f.Type,
		Amount:        money(f.Amount),
		IsGST:         f.IsGST,
		GSTRate:       money(f.GSTRate),
		GSTAmount:     money(f.GSTAmount),
		TotalWithGST:  money(f.TotalWithGST),
		GSTNumber:     f.GSTNumber,
		Status:        f.Status,
		ReceiptNumber: f.ReceiptNumber,
		PaymentDate:   f.PaymentDate,
		PaymentMode:   f.PaymentMode,
		Description:   f.Description,
		Attachment:    f.Attachment,
		CreatedBy:     f.CreatedBy,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}

	if f.Student != nil {
		resp.Student = &studentResponse{ID: f.Student.ID, FirstName: f.Student.FirstName, LastName: f.Student.LastName}
	}

	if f.Branch != nil {
		resp.Branch = &branchResponse{ID: f.Branch.ID, Name: f.Branch.Name}
	}

	return resp
}

func toResponseList(fees []*fee.Fee) []feeResponse {
	resp := make([]feeResponse, len(fees))
	for i, f := range fees {
		resp[i] = toResponse(f)
	}

	return resp
}
