package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundWithTwoDecimalPlace arredonda metade para longe do zero (33.335 -> 33.34)
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// Percentage calcula part / whole * 100 com duas casas decimais.
// O segundo retorno é false quando whole é zero.
func Percentage(part, whole decimal.Decimal) (decimal.Decimal, bool) {
	if whole.IsZero() {
		return decimal.Zero, false
	}

	return RoundWithTwoDecimalPlace(part.Mul(hundred).Div(whole)), true
}

// ParseMoney converte um valor monetário; célula vazia vale zero
func ParseMoney(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Errorf("valor numérico inválido %q", raw)
	}

	return d, nil
}

// ParseCount converte uma contagem inteira; aceita "2.0" mas rejeita "2.5"
func ParseCount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, errors.Errorf("contagem inteira inválida %q", raw)
	}

	return d.IntPart(), nil
}
