package domain

import "github.com/shopspring/decimal"

// MonthlySales agrega os pedidos por mês de compra
type MonthlySales struct {
	Month  string
	Sales  decimal.Decimal
	Orders int64
}

// MonthlyAdSummary agrega os anúncios patrocinados por mês de início
type MonthlyAdSummary struct {
	Month   string
	AdSpend decimal.Decimal
	AdSales decimal.Decimal
}

// MonthlyBreakdown combina vendas e anúncios de um mesmo mês
type MonthlyBreakdown struct {
	Month      string
	GrossSales decimal.Decimal
	Orders     int64
	AdSpend    decimal.Decimal
	AdSales    decimal.Decimal
}
