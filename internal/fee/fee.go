package fee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of fee being paid.
type Type string

const (
	TypeTuition   Type = "TUITIONFEES"
	TypeAdmission Type = "ADMISSION"
	TypeOther     Type = "OTHER"
)

// Valid reports whether t is one of the known fee types.
func (t Type) Valid() bool {
	switch t {
	case TypeTuition, TypeAdmission, TypeOther:
		return true
	}

	return false
}

// Bucket is the student counter a fee type accumulates into.
type Bucket int

const (
	BucketTuition Bucket = iota
	BucketExtra
)

// Bucket classifies t. ADMISSION and OTHER are extra; everything else,
// including unknown types, lands in tuition.
func (t Type) Bucket() Bucket {
	switch normalize(string(t)) {
	case string(TypeAdmission), string(TypeOther):
		return BucketExtra
	default:
		return BucketTuition
	}
}

// Status is the payment state of a fee. Only PAID fees move the ledger.
type Status string

const (
	StatusPaid    Status = "PAID"
	StatusPending Status = "PENDING"
	StatusFailed  Status = "FAILED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusFailed:
		return true
	}

	return false
}

// Mode is how the payment was made.
type Mode string

const (
	ModeCash         Mode = "CASH"
	ModeUPI          Mode = "UPI"
	ModeCard         Mode = "CARD"
	ModeCheque       Mode = "CHEQUE"
	ModeBankTransfer Mode = "BANK_TRANSFER"
	ModeOnline       Mode = "ONLINE"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeCash, ModeUPI, ModeCard, ModeCheque, ModeBankTransfer, ModeOnline:
		return true
	}

	return false
}

// Fee is a single fee transaction against a student.
type Fee struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	BranchID      *uuid.UUID
	StudentID     uuid.UUID
	Type          Type
	Amount        decimal.Decimal
	IsGST         bool
	GSTRate       decimal.Decimal
	GSTAmount     decimal.Decimal
	TotalWithGST  decimal.Decimal
	GSTNumber     string
	Status        Status
	ReceiptNumber string
	PaymentDate   time.Time
	PaymentMode   Mode
	Description   string
	Attachment    string
	CreatedBy     *uuid.UUID
	Student       *StudentRef // Loaded via JOIN
	Branch        *BranchRef  // Loaded via JOIN
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	DeletedBy     *uuid.UUID
}

type StudentRef struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

type BranchRef struct {
	ID   uuid.UUID
	Name string
}

func (f *Fee) paid() bool {
	return f.Status == StatusPaid
}

func (f *Fee) clone() *Fee {
	c := *f
	return &c
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
