package utils

import "github.com/shopspring/decimal"

var microsPerUnit = decimal.NewFromInt(1_000_000)

// RoundWithTwoDecimalPlace arredonda para centavos usando arredondamento bancário (meio para o par)
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.RoundBank(2)
}

// UnitsToMicros converte unidades de moeda para micro-unidades, truncando a parte fracionária
func UnitsToMicros(d decimal.Decimal) int64 {
	return d.Mul(microsPerUnit).IntPart()
}
