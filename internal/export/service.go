package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/campus/internal/fee"
)

type FeeLister interface {
	List(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error)
}

// Service builds the receipt register of a company.
type Service struct {
	fees FeeLister
}

func NewService(fees FeeLister) *Service {
	return &Service{fees: fees}
}

// Register lists the fees matching filter in payment order, oldest first.
func (s *Service) Register(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	fees, err := s.fees.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing fees: %w", err)
	}

	slices.SortStableFunc(fees, func(a, b *fee.Fee) int {
		if c := a.PaymentDate.Compare(b.PaymentDate); c != 0 {
			return c
		}

		return strings.Compare(a.ReceiptNumber, b.ReceiptNumber)
	})

	return fees, nil
}

var registerHeader = []string{
	"Receipt Number", "Payment Date", "Student", "Branch", "Fee Type",
	"Amount", "GST Rate", "GST Amount", "Total", "Status", "Payment Mode",
	"Description", "Attachment",
}

// WriteCSV writes fees as a receipt register with a header row.
func WriteCSV(w io.Writer, fees []*fee.Fee) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(registerHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, f := range fees {
		if err := cw.Write(registerRow(f)); err != nil {
			return fmt.Errorf("writing receipt %s: %w", f.ReceiptNumber, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func registerRow(f *fee.Fee) []string {
	var name, branch string

	if f.Student != nil {
		name = strings.TrimSpace(f.Student.FirstName + " " + f.Student.LastName)
	}

	if f.Branch != nil {
		branch = f.Branch.Name
	}

	return []string{
		f.ReceiptNumber,
		f.PaymentDate.Format(time.DateOnly),
		name,
		branch,
		string(f.Type),
		f.Amount.StringFixed(2),
		f.GSTRate.String(),
		f.GSTAmount.StringFixed(2),
		f.TotalWithGST.StringFixed(2),
		string(f.Status),
		string(f.PaymentMode),
		f.Description,
		f.Attachment,
	}
}
