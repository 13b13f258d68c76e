package domain

import "github.com/shopspring/decimal"

// SkuSummary é a linha agregada por SKU com as razões derivadas
type SkuSummary struct {
	SKU        string
	OrdersCnt  int64
	UnitsSold  int64
	GrossSales decimal.Decimal
	AdSpendSP  decimal.Decimal
	NetProfit  decimal.Decimal
	Ratios
}

// Add acumula um registro na linha
func (s *SkuSummary) Add(record SkuMetricRecord) {
	s.OrdersCnt += record.OrdersCnt
	s.UnitsSold += record.UnitsSold
	s.GrossSales = s.GrossSales.Add(record.GrossSales)
	s.AdSpendSP = s.AdSpendSP.Add(record.AdSpendSP)
	s.NetProfit = s.NetProfit.Add(record.NetProfit)
}

// AggregateMetrics são os totais da tabela de SKUs (linha TOTAL)
type AggregateMetrics struct {
	TotalSales   decimal.Decimal
	TotalAdSpend decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalOrders  int64
	TotalUnits   int64
	Ratios
}
