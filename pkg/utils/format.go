package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney formata com separador de milhar e duas casas (1234.5 -> 1,234.50)
func FormatMoney(d decimal.Decimal) string {
	return groupThousands(d.Round(2), 2)
}

// FormatWholeMoney formata sem casas decimais (1234.5 -> 1,235)
func FormatWholeMoney(d decimal.Decimal) string {
	return groupThousands(d.Round(0), 0)
}

// groupThousands separa os milhares da parte inteira sem passar por float64,
// preservando valores acima de 2^53
func groupThousands(d decimal.Decimal, places int32) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(places)
	fraction := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		fraction = fixed[i:]
	}

	return sign + humanize.BigComma(d.BigInt()) + fraction
}
