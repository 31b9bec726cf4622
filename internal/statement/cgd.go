package statement

import "strings"

// cgdParser handles Caixa Geral de Depósitos statements. Layout: one date
// column, description, then debit/credit/balance numeric columns where
// normally exactly one of debit/credit is populated. Extraction drops the
// empty column, so the shared 2-token rule applies; lines where both
// survive are flagged rather than guessed at.
type cgdParser struct{}

func (p *cgdParser) Config() BankConfig {
	return BankConfig{
		ID:            "cgd",
		DisplayName:   "Caixa Geral de Depósitos",
		Country:       "PT",
		Currency:      "EUR",
		DateFormat:    "DD.MM.YYYY",
		DecimalFormat: DecimalFormatEuropean,
	}
}

func (p *cgdParser) Parse(data []byte) (*ParseResult, error) {
	return parseDocument(data, p.parseLines)
}

func (p *cgdParser) parseLines(lines []string) *ParseResult {
	res := &ParseResult{}
	res.PeriodStart, res.PeriodEnd = findPeriod(lines)

	for _, line := range lines {
		if !lineDateRe.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		date := ParseStatementDate(fields[0])

		descFields, nums := trailingNumbers(fields[1:])
		appendLine(res, line, date, descFields, nums)
	}
	return res
}

func (p *cgdParser) CategoryPatterns() []CategorySeed {
	return cgdCategorySeeds
}

var cgdCategorySeeds = []CategorySeed{
	{Category: "Groceries", Color: "#4caf50", Icon: "shopping-cart", Keywords: []string{
		"continente", "pingo doce", "lidl", "mercadona", "aldi",
	}},
	{Category: "Restaurants", Color: "#ff9800", Icon: "utensils", Keywords: []string{
		"restaurante", "uber eats", "glovo", "burger king",
	}},
	{Category: "Transport", Color: "#2196f3", Icon: "car", Keywords: []string{
		"galp", "bp portugal", "via verde", "cp comboios", "carris",
	}},
	{Category: "Utilities", Color: "#9c27b0", Icon: "zap", Keywords: []string{
		"edp", "meo", "nos comunicacoes", "vodafone", "epal",
	}},
	{Category: "Health", Color: "#f44336", Icon: "heart", Keywords: []string{
		"farmacia", "clinica", "hospital", "cuf",
	}},
	{Category: "Shopping", Color: "#795548", Icon: "shopping-bag", Keywords: []string{
		"fnac", "worten", "leroy merlin", "amazon",
	}},
	{Category: "Subscriptions", Color: "#607d8b", Icon: "repeat", Keywords: []string{
		"netflix", "spotify", "disney",
	}},
	{Category: "Salary", Color: "#8bc34a", Icon: "briefcase", Keywords: []string{
		"ordenado", "vencimento",
	}},
}
