package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

// Percentage é uma razão em porcentagem com duas casas. Valid=false indica
// divisão por zero (venda bruta zero) e deve ser exibida como indefinida.
type Percentage struct {
	Value decimal.Decimal
	Valid bool
}

// Undefined é a porcentagem resultante de divisão por zero
var Undefined = Percentage{}

func NewPercentage(part, whole decimal.Decimal) Percentage {
	value, ok := utils.Percentage(part, whole)
	if !ok {
		return Undefined
	}

	return Percentage{Value: value, Valid: true}
}

// Equal compara valor e validade
func (p Percentage) Equal(other Percentage) bool {
	if p.Valid != other.Valid {
		return false
	}

	return !p.Valid || p.Value.Equal(other.Value)
}

// Ratios agrupa as três razões derivadas de uma linha
type Ratios struct {
	ACoS      Percentage
	TACoS     Percentage
	NetMargin Percentage
}

// CalculateRatios calcula ACoS, TACoS e margem líquida sobre a venda bruta.
// TACoS usa hoje a mesma fórmula do ACoS.
func CalculateRatios(grossSales, adSpend, netProfit decimal.Decimal) Ratios {
	// TODO: separar TACoS quando a base de vendas totais (além das atribuídas a anúncio) for definida
	return Ratios{
		ACoS:      NewPercentage(adSpend, grossSales),
		TACoS:     NewPercentage(adSpend, grossSales),
		NetMargin: NewPercentage(netProfit, grossSales),
	}
}
