package fee

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/campus/internal/fee"
	"github.com/MrJamesThe3rd/campus/internal/http/envelope"
)

// flexDecimal accepts a JSON number or string. Anything unparsable becomes
// zero, the same as a missing amount.
type flexDecimal struct {
	decimal.Decimal
}

func (d *flexDecimal) UnmarshalJSON(b []byte) error {
	d.Decimal = parseDecimal(string(bytes.Trim(b, `"`)))
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return v
}

// flexBool accepts a JSON bool or the usual form spellings of one.
type flexBool bool

func (b *flexBool) UnmarshalJSON(raw []byte) error {
	*b = flexBool(parseBool(string(bytes.Trim(raw, `"`))))
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true
	}

	v, _ := strconv.ParseBool(strings.TrimSpace(s))

	return v
}

// feeRequest is the body of create and update, sent either as JSON or as
// multipart form fields next to an "attachment" file.
type feeRequest struct {
	Student     *string      `json:"student"`
	Branch      *string      `json:"branch"`
	FeeType     *string      `json:"feeType"`
	Amount      *flexDecimal `json:"amount"`
	IsGST       *flexBool    `json:"isGst"`
	GSTRate     *flexDecimal `json:"gstRate"`
	GSTNumber   *string      `json:"gstNumber"`
	Status      *string      `json:"status"`
	PaymentDate *string      `json:"paymentDate"`
	PaymentMode *string      `json:"paymentMode"`
	Description *string      `json:"description"`
	CreatedBy   *string      `json:"createdBy"`
}

func formRequest(values map[string][]string) feeRequest {
	get := func(key string) *string {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return nil
		}

		return &v[0]
	}

	req := feeRequest{
		Student:     get("student"),
		Branch:      get("branch"),
		FeeType:     get("feeType"),
		GSTNumber:   get("gstNumber"),
		Status:      get("status"),
		PaymentDate: get("paymentDate"),
		PaymentMode: get("paymentMode"),
		Description: get("description"),
		CreatedBy:   get("createdBy"),
	}

	if s := get("amount"); s != nil {
		req.Amount = &flexDecimal{parseDecimal(*s)}
	}

	if s := get("gstRate"); s != nil {
		req.GSTRate = &flexDecimal{parseDecimal(*s)}
	}

	if s := get("isGst"); s != nil {
		req.IsGST = new(flexBool(parseBool(*s)))
	}

	return req
}

// optionalID parses an id field. Absent and blank both mean "not given".
func optionalID(s *string, field string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, envelope.BadRequest("Invalid " + field + " id.")
	}

	return &id, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	v := strings.TrimSpace(*s)

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}

	return nil, envelope.BadRequest("Invalid payment date.")
}

func (req feeRequest) createParams(companyID uuid.UUID) (fee.CreateParams, error) {
	p := fee.CreateParams{CompanyID: companyID}

	studentID, err := optionalID(req.Student, "student")
	if err != nil {
		return p, err
	}

	if studentID != nil {
		p.StudentID = *studentID
	}

	if p.BranchID, err = optionalID(req.Branch, "branch"); err != nil {
		return p, err
	}

	if p.CreatedBy, err = optionalID(req.CreatedBy, "createdBy"); err != nil {
		return p, err
	}

	date, err := optionalDate(req.PaymentDate)
	if err != nil {
		return p, err
	}

	if date != nil {
		p.PaymentDate = *date
	}

	p.Type = fee.Type(deref(req.FeeType))
	p.Status = fee.Status(deref(req.Status))
	p.PaymentMode = fee.Mode(deref(req.PaymentMode))
	p.GSTNumber = deref(req.GSTNumber)
	p.Description = deref(req.Description)

	if req.Amount != nil {
		p.Amount = req.Amount.Decimal
	}

	if req.GSTRate != nil {
		p.GSTRate = req.GSTRate.Decimal
	}

	if req.IsGST != nil {
		p.IsGST = bool(*req.IsGST)
	}

	return p, nil
}

func (req feeRequest) updateParams() (fee.UpdateParams, error) {
	var (
		p   fee.UpdateParams
		err error
	)

	if p.StudentID, err = optionalID(req.Student, "student"); err != nil {
		return p, err
	}

	if p.BranchID, err = optionalID(req.Branch, "branch"); err != nil {
		return p, err
	}

	if p.PaymentDate, err = optionalDate(req.PaymentDate); err != nil {
		return p, err
	}

	if req.FeeType != nil {
		p.Type = new(fee.Type(*req.FeeType))
	}

	if req.Status != nil {
		p.Status = new(fee.Status(*req.Status))
	}

	if req.PaymentMode != nil {
		p.PaymentMode = new(fee.Mode(*req.PaymentMode))
	}

	if req.Amount != nil {
		p.Amount = &req.Amount.Decimal
	}

	if req.GSTRate != nil {
		p.GSTRate = &req.GSTRate.Decimal
	}

	if req.IsGST != nil {
		p.IsGST = new(bool(*req.IsGST))
	}

	p.GSTNumber = req.GSTNumber
	p.Description = req.Description

	return p, nil
}

type deleteRequest struct {
	DeletedBy *string `json:"deletedBy"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func decodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return envelope.BadRequest("Invalid request body.")
	}

	return nil
}

// ParseListFilter reads the branch, student, status, from and to query
// parameters shared by the fee list and the register export.
func ParseListFilter(companyID uuid.UUID, q url.Values) (fee.ListFilter, error) {
	filter := fee.ListFilter{CompanyID: companyID}

	var err error

	if filter.BranchID, err = optionalID(new(q.Get("branch")), "branch"); err != nil {
		return filter, err
	}

	if filter.StudentID, err = optionalID(new(q.Get("student")), "student"); err != nil {
		return filter, err
	}

	if s := q.Get("status"); s != "" {
		filter.Status = new(fee.Status(s))
	}

	if filter.PaidFrom, err = optionalDate(new(q.Get("from"))); err != nil {
		return filter, err
	}

	if filter.PaidTo, err = optionalDate(new(q.Get("to"))); err != nil {
		return filter, err
	}

	return filter, nil
}
