package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/campus/internal/encoding"
	"github.com/MrJamesThe3rd/campus/internal/fee"
)

var ErrNoHeader = errors.New("no header row found: expected student or enrollment, fee type, amount and payment date columns")

var dateLayouts = []string{"2006-01-02", "2/1/2006", "2-1-2006", "2.1.2006"}

var typeAliases = map[string]fee.Type{
	"TUITION":      fee.TypeTuition,
	"TUITION FEES": fee.TypeTuition,
	"TUITION_FEES": fee.TypeTuition,
	"TUITION FEE":  fee.TypeTuition,
}

// rowError is a problem with the content of a single row.
type rowError string

func (e rowError) Error() string {
	return string(e)
}

// Row is one data line of an import file. A row with Err set is reported
// back and never reaches the ledger.
type Row struct {
	Line        int
	Enrollment  string
	StudentID   uuid.UUID
	Type        fee.Type
	Amount      decimal.Decimal
	PaymentDate time.Time
	Mode        fee.Mode
	Status      fee.Status
	IsGST       bool
	GSTRate     decimal.Decimal
	GSTNumber   string
	Description string
	Err         error
}

// File is a parsed import file.
type File struct {
	Charset string
	Rows    []Row
}

// Parse decodes r to UTF-8, detects the delimiter and header row and reads
// every data line after it. Row lines are 1-based file lines; blank lines are
// skipped.
func Parse(r io.Reader) (*File, error) {
	utf8r, charset, err := enc.ToUTF8(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	comma := sniffDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		records [][]string
		lines   []int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}

	l, headerIdx, ok := detectLayout(records)
	if !ok {
		return nil, ErrNoHeader
	}

	file := &File{Charset: charset}

	for i := headerIdx + 1; i < len(records); i++ {
		if blank(records[i]) {
			continue
		}

		file.Rows = append(file.Rows, parseRow(l, records[i], lines[i], comma == ';'))
	}

	return file, nil
}

// sniffDelimiter picks ';' when the first line has more semicolons than
// commas, as spreadsheets in comma-decimal locales export. Numbers in such
// files are read with ',' as the decimal mark.
func sniffDelimiter(data []byte) rune {
	first, _, _ := bytes.Cut(data, []byte("\n"))

	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}

	return ','
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func parseRow(l layout, record []string, line int, decimalComma bool) Row {
	row := Row{
		Line:        line,
		Enrollment:  l.cell(record, fieldEnrollment),
		Mode:        fee.Mode(l.cell(record, fieldMode)),
		Status:      fee.Status(l.cell(record, fieldStatus)),
		GSTNumber:   l.cell(record, fieldGSTNumber),
		Description: l.cell(record, fieldDescription),
	}

	fail := func(format string, args ...any) Row {
		row.Err = rowError(fmt.Sprintf(format, args...))
		return row
	}

	// A "Student" column next to an enrollment column usually holds names.
	if s := l.cell(record, fieldStudentID); s != "" {
		id, err := uuid.Parse(s)
		switch {
		case err == nil:
			row.StudentID = id
		case row.Enrollment == "":
			return fail("invalid student id %q", s)
		}
	}

	if row.StudentID == uuid.Nil && row.Enrollment == "" {
		return fail("missing student")
	}

	row.Type = feeType(l.cell(record, fieldType))

	amount, err := parseAmount(l.cell(record, fieldAmount), decimalComma)
	if err != nil {
		return fail("invalid amount %q", l.cell(record, fieldAmount))
	}

	row.Amount = amount

	date, ok := parseDate(l.cell(record, fieldPaymentDate))
	if !ok {
		return fail("invalid payment date %q", l.cell(record, fieldPaymentDate))
	}

	row.PaymentDate = date

	if s := strings.TrimSuffix(l.cell(record, fieldGSTRate), "%"); s != "" {
		rate, err := parseNumber(s, decimalComma)
		if err != nil {
			return fail("invalid GST rate %q", s)
		}

		row.GSTRate = rate
		row.IsGST = rate.IsPositive()
	}

	return row
}

func feeType(s string) fee.Type {
	if t, ok := typeAliases[strings.ToUpper(s)]; ok {
		return t
	}

	return fee.Type(s)
}

// parseAmount accepts "1,50,000.00", "₹ 1500" and "Rs. 1500", or
// "1.500,50" when decimalComma is set.
func parseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)

	for _, prefix := range []string{"₹", "Rs.", "Rs", "INR"} {
		clean = strings.TrimSpace(strings.TrimPrefix(clean, prefix))
	}

	return parseNumber(clean, decimalComma)
}

// parseNumber drops grouping marks wherever they fall. With decimalComma,
// "1.234,56" reads as 1234.56.
func parseNumber(s string, decimalComma bool) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	if decimalComma {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
