package fee_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/student"
)

func counters(amount, extra, gst string) student.Counters {
	return student.Counters{AmountPaid: dec(amount), ExtraPaid: dec(extra), GSTPaid: dec(gst)}
}

func paidFee(studentID uuid.UUID, typ fee.Type, amount, gst string) *fee.Fee {
	return &fee.Fee{
		StudentID: studentID,
		Type:      typ,
		Amount:    dec(amount),
		GSTAmount: dec(gst),
		Status:    fee.StatusPaid,
	}
}

func withStatus(f *fee.Fee, s fee.Status) *fee.Fee {
	f.Status = s
	return f
}

func TestReconcile(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()

	type want struct {
		studentID uuid.UUID
		delta     student.Counters
	}

	tests := []struct {
		name   string
		before *fee.Fee
		after  *fee.Fee
		want   []want
	}{
		{
			name:  "Create paid tuition",
			after: paidFee(s1, fee.TypeTuition, "1000", "180"),
			want:  []want{{s1, counters("1000", "0", "180")}},
		},
		{
			name:  "Create paid admission",
			after: paidFee(s1, fee.TypeAdmission, "500", "0"),
			want:  []want{{s1, counters("0", "500", "0")}},
		},
		{
			name:  "Create pending is a no-op",
			after: withStatus(paidFee(s1, fee.TypeTuition, "1000", "180"), fee.StatusPending),
		},
		{
			name:   "Delete paid reverses",
			before: paidFee(s1, fee.TypeTuition, "200", "36"),
			want:   []want{{s1, counters("-200", "0", "-36")}},
		},
		{
			name:   "Delete pending is a no-op",
			before: withStatus(paidFee(s1, fee.TypeTuition, "200", "36"), fee.StatusPending),
		},
		{
			name:   "Amount change nets the difference",
			before: paidFee(s1, fee.TypeTuition, "500", "90"),
			after:  paidFee(s1, fee.TypeTuition, "700", "126"),
			want:   []want{{s1, counters("200", "0", "36")}},
		},
		{
			name:   "Bucket switch moves the amount",
			before: paidFee(s1, fee.TypeTuition, "500", "0"),
			after:  paidFee(s1, fee.TypeOther, "500", "0"),
			want:   []want{{s1, counters("-500", "500", "0")}},
		},
		{
			name:   "Bucket switch with GST change",
			before: paidFee(s1, fee.TypeAdmission, "100", "18"),
			after:  paidFee(s1, fee.TypeTuition, "100", "5"),
			want:   []want{{s1, counters("100", "-100", "-13")}},
		},
		{
			name:   "Pending to paid credits",
			before: withStatus(paidFee(s1, fee.TypeTuition, "400", "72"), fee.StatusPending),
			after:  paidFee(s1, fee.TypeTuition, "400", "72"),
			want:   []want{{s1, counters("400", "0", "72")}},
		},
		{
			name:   "Paid to failed debits",
			before: paidFee(s1, fee.TypeOther, "400", "72"),
			after:  withStatus(paidFee(s1, fee.TypeOther, "400", "72"), fee.StatusFailed),
			want:   []want{{s1, counters("0", "-400", "-72")}},
		},
		{
			name:   "Transfer between students",
			before: paidFee(s1, fee.TypeTuition, "300", "0"),
			after:  paidFee(s2, fee.TypeTuition, "300", "0"),
			want: []want{
				{s1, counters("-300", "0", "0")},
				{s2, counters("300", "0", "0")},
			},
		},
		{
			name:   "Transfer of a pending fee",
			before: withStatus(paidFee(s1, fee.TypeTuition, "300", "0"), fee.StatusPending),
			after:  withStatus(paidFee(s2, fee.TypeTuition, "300", "0"), fee.StatusPending),
		},
		{
			name:   "Description-only edit",
			before: paidFee(s1, fee.TypeTuition, "300", "54"),
			after:  paidFee(s1, fee.TypeTuition, "300.00", "54.00"),
		},
		{
			name:  "Unknown type counts as tuition",
			after: paidFee(s1, fee.Type("LIBRARY"), "50", "0"),
			want:  []want{{s1, counters("50", "0", "0")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fee.Reconcile(tt.before, tt.after)

			require.Len(t, got, len(tt.want))

			for i, w := range tt.want {
				assert.Equal(t, w.studentID, got[i].StudentID)
				assert.True(t, w.delta.Equal(got[i].Delta), "delta %d: got %+v", i, got[i].Delta)
			}
		})
	}
}

func TestType_Bucket(t *testing.T) {
	assert.Equal(t, fee.BucketTuition, fee.TypeTuition.Bucket())
	assert.Equal(t, fee.BucketExtra, fee.TypeAdmission.Bucket())
	assert.Equal(t, fee.BucketExtra, fee.TypeOther.Bucket())
	assert.Equal(t, fee.BucketExtra, fee.Type(" other ").Bucket())
	assert.Equal(t, fee.BucketTuition, fee.Type("").Bucket())
}
