package statement

import "strings"

// bcpParser handles Millennium BCP retail statements. Layout: two date
// columns (booking and value date), free-text description, then two
// numeric columns (amount, balance).
type bcpParser struct{}

func (p *bcpParser) Config() BankConfig {
	return BankConfig{
		ID:            "bcp",
		DisplayName:   "Millennium BCP",
		Country:       "PT",
		Currency:      "EUR",
		DateFormat:    "DD.MM.YY",
		DecimalFormat: DecimalFormatEuropean,
	}
}

func (p *bcpParser) Parse(data []byte) (*ParseResult, error) {
	return parseDocument(data, p.parseLines)
}

func (p *bcpParser) parseLines(lines []string) *ParseResult {
	res := &ParseResult{}
	res.PeriodStart, res.PeriodEnd = findPeriod(lines)

	for _, line := range lines {
		if !lineDateRe.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		date := ParseStatementDate(fields[0])

		rest := fields[1:]
		// second column is the value date; the booking date is authoritative
		if len(rest) > 0 && lineDateRe.MatchString(rest[0]) {
			rest = rest[1:]
		}

		descFields, nums := trailingNumbers(rest)
		appendLine(res, line, date, descFields, nums)
	}
	return res
}

func (p *bcpParser) CategoryPatterns() []CategorySeed {
	return bcpCategorySeeds
}

var bcpCategorySeeds = []CategorySeed{
	{Category: "Groceries", Color: "#4caf50", Icon: "shopping-cart", Keywords: []string{
		"continente", "pingo doce", "lidl", "auchan", "intermarche", "minipreco",
	}},
	{Category: "Restaurants", Color: "#ff9800", Icon: "utensils", Keywords: []string{
		"restaurante", "uber eats", "glovo", "mcdonald", "pastelaria",
	}},
	{Category: "Transport", Color: "#2196f3", Icon: "car", Keywords: []string{
		"galp", "via verde", "cp comboios", "metro lisboa", "bolt",
	}},
	{Category: "Utilities", Color: "#9c27b0", Icon: "zap", Keywords: []string{
		"edp", "meo", "nos comunicacoes", "vodafone", "aguas de",
	}},
	{Category: "Health", Color: "#f44336", Icon: "heart", Keywords: []string{
		"farmacia", "clinica", "hospital",
	}},
	{Category: "Shopping", Color: "#795548", Icon: "shopping-bag", Keywords: []string{
		"fnac", "worten", "zara", "amazon", "decathlon",
	}},
	{Category: "Subscriptions", Color: "#607d8b", Icon: "repeat", Keywords: []string{
		"netflix", "spotify", "hbo",
	}},
	{Category: "Salary", Color: "#8bc34a", Icon: "briefcase", Keywords: []string{
		"ordenado", "vencimento",
	}},
}
