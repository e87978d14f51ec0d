package fee

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	defaultCompanyCode = "COMP"
	defaultBranchCode  = "MAIN"
)

// NextReceiptNumber formats the receipt that follows last within a
// (company, branch) scope, e.g. "BRIGHTMINDS-NORTH-0042". An empty or
// unparsable last receipt restarts the sequence at 1.
func NextReceiptNumber(companyName, branchName, last string) string {
	return fmt.Sprintf("%s-%s-%04d",
		receiptCode(companyName, defaultCompanyCode),
		receiptCode(branchName, defaultBranchCode),
		nextSequence(last),
	)
}

func receiptCode(name, fallback string) string {
	code := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, name)

	if code == "" {
		return fallback
	}

	return strings.ToUpper(code)
}

func nextSequence(last string) int {
	if last == "" {
		return 1
	}

	seg := last[strings.LastIndex(last, "-")+1:]

	n, ok := leadingInt(seg)
	if !ok {
		return 1
	}

	return n + 1
}

// leadingInt reads the decimal digits at the start of s, ignoring leading
// whitespace and trailing garbage.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}

		n = n*10 + int(r-'0')
		digits++
	}

	return n, digits > 0
}
