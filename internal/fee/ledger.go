package fee

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/student"
)

// Adjustment is a signed change to one student's counters.
type Adjustment struct {
	StudentID uuid.UUID
	Delta     student.Counters
}

// credit is what f currently contributes to its student's counters: the
// amount in its bucket plus its GST, or nothing unless it is PAID.
func credit(f *Fee) student.Counters {
	if f == nil || !f.paid() {
		return student.Counters{}
	}

	c := student.Counters{GSTPaid: f.GSTAmount}

	switch f.Type.Bucket() {
	case BucketExtra:
		c.ExtraPaid = f.Amount
	default:
		c.AmountPaid = f.Amount
	}

	return c
}

// Reconcile returns the counter changes that take the ledger from a state
// containing before to one containing after. Either side may be nil (create
// and delete). The before student comes first; zero deltas are dropped.
//
// A transfer debits one student and credits the other. A bucket switch moves
// the amount across counters.
func Reconcile(before, after *Fee) []Adjustment {
	var out []Adjustment

	push := func(id uuid.UUID, d student.Counters) {
		for i := range out {
			if out[i].StudentID == id {
				out[i].Delta = out[i].Delta.Add(d)
				return
			}
		}

		out = append(out, Adjustment{StudentID: id, Delta: d})
	}

	if before != nil {
		push(before.StudentID, credit(before).Neg())
	}

	if after != nil {
		push(after.StudentID, credit(after))
	}

	kept := out[:0]
	for _, a := range out {
		if !a.Delta.IsZero() {
			kept = append(kept, a)
		}
	}

	return kept
}

func tuitionPaid(f *Fee) bool {
	return f != nil && f.paid() && f.Type.Bucket() == BucketTuition
}

// checkTuitionCreate rejects a new PAID tuition fee that would take the
// student past their total fee.
func checkTuitionCreate(st *student.Student, amount decimal.Decimal) error {
	if st.FullyPaid() {
		return validationf("Student has already fully paid tuition, cannot add %s.", TypeTuition)
	}

	remaining := st.TotalFee.Sub(st.AmountPaid)
	if amount.GreaterThan(remaining) {
		return validationf("Payment exceeds remaining tuition balance. Remaining: %s", remaining.String())
	}

	return nil
}

// checkTuitionUpdate evaluates the student's paid total as if after replaced
// before. The old amount only comes off when before was a PAID tuition fee of
// the same student.
func checkTuitionUpdate(st *student.Student, before, after *Fee) error {
	hypothetical := st.AmountPaid
	if before.StudentID == after.StudentID && tuitionPaid(before) {
		hypothetical = hypothetical.Sub(before.Amount)
	}

	hypothetical = hypothetical.Add(after.Amount)

	if hypothetical.GreaterThan(st.TotalFee) {
		return validationf(
			"Update would exceed student's total tuition fee. Current paid (adjusted): %s, Total fee: %s",
			hypothetical.String(), st.TotalFee.String(),
		)
	}

	if st.FullyPaid() && hypothetical.GreaterThan(st.AmountPaid) {
		return validationf("Student has already fully paid tuition, cannot update to %s that adds more payment.", TypeTuition)
	}

	return nil
}
