package ingesting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityOrZero(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
		coerced  bool
	}{
		{name: "Vazio", raw: "", expected: 0},
		{name: "Somente espaços", raw: "   ", expected: 0},
		{name: "Inteiro", raw: "2000", expected: 2000},
		{name: "Inteiro com espaços", raw: " 42 ", expected: 42},
		{name: "Decimal exato", raw: "2000.0", expected: 2000},
		{name: "Notação científica", raw: "1e3", expected: 1000},
		{name: "Decimal é truncado", raw: "12.7", expected: 12, coerced: true},
		{name: "Negativo", raw: "-5", expected: 0, coerced: true},
		{name: "Texto", raw: "abc", expected: 0, coerced: true},
		{name: "Vírgula decimal não é número", raw: "1,5", expected: 0, coerced: true},
		{name: "NaN", raw: "NaN", expected: 0, coerced: true},
		{name: "Infinito", raw: "Inf", expected: 0, coerced: true},
		{name: "No limite", raw: "1e12", expected: MaxCellQuantity},
		{name: "Acima do limite", raw: "1000000000001", expected: 0, coerced: true},
		{name: "Perto do máximo de int64", raw: "9e18", expected: 0, coerced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantityOrZero(tt.raw))

			quantity, coerced := parseQuantity(tt.raw)
			assert.Equal(t, tt.expected, quantity)
			assert.Equal(t, tt.coerced, coerced)
		})
	}
}

func TestAddQuantity(t *testing.T) {
	assert.Equal(t, int64(30), addQuantity(10, 20))
	assert.Equal(t, int64(math.MaxInt64), addQuantity(math.MaxInt64-5, 10))
	assert.Equal(t, int64(math.MaxInt64), addQuantity(math.MaxInt64, math.MaxInt64))
}
