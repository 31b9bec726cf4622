package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The income rule is (transfer AND origin) OR credit OR payer, with the
// parentheses mandatory: a transfer without an origin preposition is an
// outgoing transfer and must stay an expense.
func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"received transfer", "TRANSF DE JOAO SILVA", DirectionIncome},
		{"received transfer lowercase", "transferencia de maria", DirectionIncome},
		{"outgoing transfer", "TRANSF P/ MARIA COSTA", DirectionExpense},
		{"credit marker", "CREDITO JUROS", DirectionIncome},
		{"credit marker accented", "CRÉDITO JUROS", DirectionIncome},
		{"payer marker", "ORDENANTE EMPRESA LDA", DirectionIncome},
		{"origin preposition without transfer", "LOJA DE BRINQUEDOS", DirectionExpense},
		{"plain purchase", "COMPRA CONTINENTE", DirectionExpense},
		{"atm withdrawal", "LEV MULTIBANCO", DirectionExpense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDirection(tt.description))
		})
	}
}

func TestTrailingNumbers(t *testing.T) {
	rest, nums := trailingNumbers([]string{"COMPRA", "CONTINENTE", "-23,45", "1.210,55"})
	assert.Equal(t, []string{"COMPRA", "CONTINENTE"}, rest)
	assert.Equal(t, []string{"-23,45", "1.210,55"}, nums)

	rest, nums = trailingNumbers([]string{"ESTORNO", "5,00", "5,00", "1.159,80"})
	assert.Equal(t, []string{"ESTORNO"}, rest)
	assert.Len(t, nums, 3)

	rest, nums = trailingNumbers([]string{"SALDO", "ANTERIOR"})
	assert.Equal(t, []string{"SALDO", "ANTERIOR"}, rest)
	assert.Empty(t, nums)
}

func TestFindPeriod(t *testing.T) {
	start, end := findPeriod([]string{
		"MILLENNIUM BCP",
		"Movimentos de 01.11.24 a 30.11.24",
	})
	assert.Equal(t, "2024-11-01", start)
	assert.Equal(t, "2024-11-30", end)
}

func TestFindPeriod_Missing(t *testing.T) {
	start, end := findPeriod([]string{"no period header anywhere"})
	assert.Empty(t, start)
	assert.Empty(t, end)
}
