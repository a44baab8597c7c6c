package ingesting

import (
	"math"
	"strconv"
	"strings"
)

// MaxCellQuantity é o maior valor aceito em uma célula; acima disso a célula vira 0
const MaxCellQuantity = 1_000_000_000_000

// ParseQuantityOrZero converte uma célula de quantidade em inteiro não negativo.
// Vazio, texto, NaN, infinito, negativos e valores acima de MaxCellQuantity viram 0;
// decimais são truncados.
func ParseQuantityOrZero(raw string) int64 {
	quantity, _ := parseQuantity(raw)
	return quantity
}

// parseQuantity também informa se um valor não vazio precisou ser ajustado
func parseQuantity(raw string) (int64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > MaxCellQuantity {
		return 0, true
	}

	truncated := math.Trunc(f)
	return int64(truncated), truncated != f
}

// addQuantity soma sem estourar int64, saturando no maior valor
func addQuantity(total, quantity int64) int64 {
	if quantity > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + quantity
}
