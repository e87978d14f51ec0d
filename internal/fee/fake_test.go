package fee_test

import (
	"context"
	"errors"
	"io"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/student"
	"github.com/MrJamesThe3rd/campus/internal/tenant"
)

// memLedger is an in-memory Repository. Each BeginLedger works on a copy
// that only replaces the shared state on Commit.
type memLedger struct {
	students map[uuid.UUID]student.Student
	fees     map[uuid.UUID]fee.Fee
	order    []uuid.UUID
	clock    time.Time

	failApply error
}

func newMemLedger() *memLedger {
	return &memLedger{
		students: map[uuid.UUID]student.Student{},
		fees:     map[uuid.UUID]fee.Fee{},
		clock:    time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memLedger) addStudent(companyID uuid.UUID, totalFee string) uuid.UUID {
	id := uuid.New()
	m.students[id] = student.Student{ID: id, CompanyID: companyID, TotalFee: dec(totalFee)}

	return id
}

func (m *memLedger) counters(id uuid.UUID) student.Counters {
	return m.students[id].Counters
}

// recomputed derives a student's counters from the active fees.
func (m *memLedger) recomputed(id uuid.UUID) student.Counters {
	var c student.Counters

	for _, f := range m.fees {
		if f.StudentID != id || f.DeletedAt != nil {
			continue
		}

		for _, a := range fee.Reconcile(nil, &f) {
			c = c.Add(a.Delta)
		}
	}

	return c
}

func (m *memLedger) GetFee(_ context.Context, companyID, id uuid.UUID) (*fee.Fee, error) {
	f, ok := m.fees[id]
	if !ok || f.CompanyID != companyID || f.DeletedAt != nil {
		return nil, fee.ErrNotFound
	}

	return &f, nil
}

func (m *memLedger) ListFees(_ context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	var out []*fee.Fee

	for _, id := range m.order {
		f := m.fees[id]
		if f.CompanyID == filter.CompanyID && f.DeletedAt == nil {
			out = append(out, &f)
		}
	}

	return out, nil
}

func (m *memLedger) BeginLedger(context.Context) (fee.LedgerTx, error) {
	return &memTx{
		parent:   m,
		students: maps.Clone(m.students),
		fees:     maps.Clone(m.fees),
		order:    append([]uuid.UUID(nil), m.order...),
		clock:    m.clock,
	}, nil
}

type memTx struct {
	parent   *memLedger
	students map[uuid.UUID]student.Student
	fees     map[uuid.UUID]fee.Fee
	order    []uuid.UUID
	clock    time.Time
	done     bool
}

func (t *memTx) GetFeeForUpdate(_ context.Context, companyID, id uuid.UUID) (*fee.Fee, error) {
	f, ok := t.fees[id]
	if !ok || f.CompanyID != companyID || f.DeletedAt != nil {
		return nil, fee.ErrNotFound
	}

	return &f, nil
}

func (t *memTx) LockStudents(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*student.Student, error) {
	out := make(map[uuid.UUID]*student.Student, len(ids))

	for _, id := range ids {
		if st, ok := t.students[id]; ok {
			out[id] = &st
		}
	}

	return out, nil
}

func (t *memTx) LockReceiptScope(context.Context, uuid.UUID, *uuid.UUID) error {
	return nil
}

func (t *memTx) LastReceiptNumber(_ context.Context, companyID uuid.UUID, branchID *uuid.UUID) (string, error) {
	for i := len(t.order) - 1; i >= 0; i-- {
		f := t.fees[t.order[i]]
		if f.CompanyID == companyID && sameBranch(f.BranchID, branchID) {
			return f.ReceiptNumber, nil
		}
	}

	return "", nil
}

func (t *memTx) CreateFee(_ context.Context, f *fee.Fee) error {
	for _, existing := range t.fees {
		if existing.ReceiptNumber == f.ReceiptNumber {
			return fee.ErrReceiptConflict
		}
	}

	t.clock = t.clock.Add(time.Second)
	f.ID = uuid.New()
	f.CreatedAt = t.clock
	t.fees[f.ID] = *f
	t.order = append(t.order, f.ID)

	return nil
}

func (t *memTx) UpdateFee(_ context.Context, f *fee.Fee) error {
	if _, ok := t.fees[f.ID]; !ok {
		return fee.ErrNotFound
	}

	now := t.clock
	f.UpdatedAt = &now
	t.fees[f.ID] = *f

	return nil
}

func (t *memTx) SoftDeleteFee(_ context.Context, companyID, id uuid.UUID, deletedBy *uuid.UUID) error {
	f, ok := t.fees[id]
	if !ok || f.CompanyID != companyID || f.DeletedAt != nil {
		return fee.ErrNotFound
	}

	now := t.clock
	f.DeletedAt = &now
	f.DeletedBy = deletedBy
	t.fees[id] = f

	return nil
}

func (t *memTx) ApplyDelta(_ context.Context, studentID uuid.UUID, delta student.Counters) error {
	if t.parent.failApply != nil {
		return t.parent.failApply
	}

	st, ok := t.students[studentID]
	if !ok {
		return fee.ErrStudentNotFound
	}

	st.Counters = st.Counters.Add(delta)
	t.students[studentID] = st

	return nil
}

func (t *memTx) Commit() error {
	if t.done {
		return errors.New("transaction already closed")
	}

	t.done = true
	t.parent.students = t.students
	t.parent.fees = t.fees
	t.parent.order = t.order
	t.parent.clock = t.clock

	return nil
}

func (t *memTx) Rollback() error {
	t.done = true
	return nil
}

func sameBranch(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

type memDirectory struct {
	companies map[uuid.UUID]tenant.Company
	branches  map[uuid.UUID]tenant.Branch
}

func (d *memDirectory) ValidateCompany(_ context.Context, id uuid.UUID) (*tenant.Company, error) {
	c, ok := d.companies[id]
	if !ok {
		return nil, tenant.ErrCompanyNotFound
	}

	return &c, nil
}

func (d *memDirectory) ValidateBranch(_ context.Context, id, companyID uuid.UUID) (*tenant.Branch, error) {
	b, ok := d.branches[id]
	if !ok || b.CompanyID != companyID {
		return nil, tenant.ErrBranchNotFound
	}

	return &b, nil
}

type memUploader struct {
	names []string
}

func (u *memUploader) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}

	u.names = append(u.names, filename)

	return "http://files.test/uploads/" + filename, nil
}
