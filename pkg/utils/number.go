package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent calcula part/total*100 arredondado para uma casa decimal. Retorna 0 quando total é 0.
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(part).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(1).
		InexactFloat64()
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(1).InexactFloat64()
}

func RoundToInteger(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(0).InexactFloat64()
}
