package importer

import (
	"strings"
	"unicode"
)

type field int

const (
	fieldEnrollment field = iota
	fieldStudentID
	fieldType
	fieldAmount
	fieldPaymentDate
	fieldMode
	fieldStatus
	fieldGSTRate
	fieldGSTNumber
	fieldDescription
)

// aliases lists the header names each field is recognised by, compared after
// headerKey folds case and drops spaces and punctuation.
var aliases = map[field][]string{
	fieldEnrollment:  {"enrollment", "enrollmentnumber", "enrollmentno", "enrolmentno", "admissionno", "rollno"},
	fieldStudentID:   {"student", "studentid"},
	fieldType:        {"feetype", "type", "feehead"},
	fieldAmount:      {"amount", "amountpaid", "feeamount"},
	fieldPaymentDate: {"paymentdate", "date", "paidon"},
	fieldMode:        {"paymentmode", "mode"},
	fieldStatus:      {"status", "paymentstatus"},
	fieldGSTRate:     {"gstrate", "gst", "gstpercent"},
	fieldGSTNumber:   {"gstnumber", "gstin"},
	fieldDescription: {"description", "remarks", "narration", "note"},
}

// layout maps the fields found in a header row to their column index.
type layout map[field]int

func (l layout) complete() bool {
	_, byEnrollment := l[fieldEnrollment]
	_, byID := l[fieldStudentID]

	if !byEnrollment && !byID {
		return false
	}

	for _, f := range []field{fieldType, fieldAmount, fieldPaymentDate} {
		if _, ok := l[f]; !ok {
			return false
		}
	}

	return true
}

// cell returns the trimmed value of f in row, or "" when the column is absent.
func (l layout) cell(row []string, f field) string {
	idx, ok := l[f]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

var byHeader = func() map[string]field {
	m := make(map[string]field)

	for f, names := range aliases {
		for _, name := range names {
			m[name] = f
		}
	}

	return m
}()

// detectLayout scans rows for the first header that names a student and the
// type, amount and date columns. Preamble rows above it are ignored.
func detectLayout(rows [][]string) (layout, int, bool) {
	for i, row := range rows {
		l := make(layout)

		for col, cell := range row {
			f, ok := byHeader[headerKey(cell)]
			if !ok {
				continue
			}

			if _, seen := l[f]; !seen {
				l[f] = col
			}
		}

		if l.complete() {
			return l, i, true
		}
	}

	return nil, 0, false
}

func headerKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
