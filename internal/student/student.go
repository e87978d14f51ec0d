package student

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("student not found")

// Counters are the running ledger totals kept on a student. The same shape
// carries signed deltas when the fee ledger adjusts them.
type Counters struct {
	AmountPaid decimal.Decimal
	ExtraPaid  decimal.Decimal
	GSTPaid    decimal.Decimal
}

func (c Counters) Add(o Counters) Counters {
	return Counters{
		AmountPaid: c.AmountPaid.Add(o.AmountPaid),
		ExtraPaid:  c.ExtraPaid.Add(o.ExtraPaid),
		GSTPaid:    c.GSTPaid.Add(o.GSTPaid),
	}
}

func (c Counters) Neg() Counters {
	return Counters{
		AmountPaid: c.AmountPaid.Neg(),
		ExtraPaid:  c.ExtraPaid.Neg(),
		GSTPaid:    c.GSTPaid.Neg(),
	}
}

func (c Counters) IsZero() bool {
	return c.AmountPaid.IsZero() && c.ExtraPaid.IsZero() && c.GSTPaid.IsZero()
}

func (c Counters) Equal(o Counters) bool {
	return c.AmountPaid.Equal(o.AmountPaid) && c.ExtraPaid.Equal(o.ExtraPaid) && c.GSTPaid.Equal(o.GSTPaid)
}

// Student holds the ledger-relevant part of a student record. TotalFee is
// the tuition ceiling; the embedded counters are only written by the fee
// ledger.
type Student struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	BranchID         *uuid.UUID
	EnrollmentNumber string
	FirstName        string
	LastName         string
	TotalFee         decimal.Decimal
	Counters
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func (s *Student) FullyPaid() bool {
	return s.AmountPaid.GreaterThanOrEqual(s.TotalFee)
}

// Remaining is the tuition balance still payable, never negative.
func (s *Student) Remaining() decimal.Decimal {
	r := s.TotalFee.Sub(s.AmountPaid)
	if r.IsNegative() {
		return decimal.Zero
	}

	return r
}
