package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// lineDateRe marks candidate transaction lines: DD.MM.YY or DD.MM.YYYY prefix.
	lineDateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.(?:\d{4}|\d{2})\b`)

	// europeanNumberRe matches amount tokens like 1.234,56 / -23,45 / 0,99.
	europeanNumberRe = regexp.MustCompile(`^-?\d+(?:\.\d{3})*,\d{2}$`)

	// periodRe matches the statement period header, "de <date> a <date>".
	periodRe = regexp.MustCompile(`(?i)de\s+(\d{2}\.\d{2}\.\d{2}(?:\d{2})?)\s+a\s+(\d{2}\.\d{2}\.\d{2}(?:\d{2})?)`)
)

// findPeriod scans for the statement period header. Missing period is not
// an error; the fields just stay empty.
func findPeriod(lines []string) (start, end string) {
	for _, line := range lines {
		if m := periodRe.FindStringSubmatch(line); m != nil {
			return ParseStatementDate(m[1]), ParseStatementDate(m[2])
		}
	}
	return "", ""
}

// trailingNumbers splits fields into the description part and the numeric
// tokens at the end of the line. Amount columns always trail the
// description in the supported layouts.
func trailingNumbers(fields []string) (rest, nums []string) {
	i := len(fields)
	for i > 0 && europeanNumberRe.MatchString(fields[i-1]) {
		i--
	}
	return fields[:i], fields[i:]
}

// classifyDirection decides income vs expense from the description alone.
// The grouping is deliberate and must stay explicit:
// (received-transfer marker AND origin preposition) OR credit marker OR
// payer marker. Without the parentheses an ordinary outgoing transfer
// would be reclassified as income.
func classifyDirection(description string) string {
	d := strings.ToLower(description)

	transfer := strings.Contains(d, "transf")
	origin := strings.Contains(d, " de ")
	credit := strings.Contains(d, "credito") || strings.Contains(d, "crédito")
	payer := strings.Contains(d, "ordenante")

	if (transfer && origin) || credit || payer {
		return DirectionIncome
	}
	return DirectionExpense
}

// appendLine applies the column disambiguation rule shared by every
// supported layout: after empty fields are discarded, exactly 2 numeric
// tokens mean (amount, balance). This collapses the 3-column
// debit/credit/balance case as long as only one of debit/credit is
// populated. A line where both survive cannot be disambiguated, so it is
// flagged for manual review instead of guessed at.
func appendLine(res *ParseResult, rawLine, date string, descFields, nums []string) {
	switch len(nums) {
	case 2:
		desc := strings.Join(descFields, " ")
		amount := ParseDecimal(nums[0], DecimalFormatEuropean)
		balance := ParseDecimal(nums[1], DecimalFormatEuropean)
		res.Transactions = append(res.Transactions, ParsedTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount.Abs(),
			Balance:     decimal.NewNullDecimal(balance),
			Direction:   classifyDirection(desc),
			RawText:     rawLine,
		})
	case 3:
		res.FlaggedLines = append(res.FlaggedLines, FlaggedLine{
			RawText: rawLine,
			Reason:  "debit and credit both populated, amount ambiguous",
		})
	default:
		// opening-balance rows, headers and summary noise land here
	}
}
