package statement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var statementDateRe = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{2}|\d{4})$`)

// ParseDecimal converts a locale-formatted amount to a decimal. It never
// fails: empty, whitespace-only or malformed input yields zero, because
// scanned statements routinely contain broken numeric fields and one bad
// field must not abort a whole document.
func ParseDecimal(s string, format DecimalFormat) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space, common in extracted PDF text

	if format == DecimalFormatEuropean {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseStatementDate converts DD.MM.YY and DD.MM.YYYY to ISO-8601.
// Two-digit years use a fixed pivot: <= 50 is 20YY, > 50 is 19YY.
// Anything else is returned unchanged so callers can detect non-date
// strings by equality instead of by error.
func ParseStatementDate(s string) string {
	m := statementDateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	day, month, year := m[1], m[2], m[3]
	if len(year) == 2 {
		yy, _ := strconv.Atoi(year)
		if yy <= 50 {
			year = "20" + year
		} else {
			year = "19" + year
		}
	}
	return year + "-" + month + "-" + day
}
