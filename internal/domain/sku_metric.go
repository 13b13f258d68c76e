package domain

import "github.com/shopspring/decimal"

// DefaultUnknownSKU é o SKU sentinela descartado antes da agregação
const DefaultUnknownSKU = "UNKNOWN"

// SkuMetricRecord representa uma linha de sku_metrics.csv
type SkuMetricRecord struct {
	SKU        string          `json:"sku"`
	OrdersCnt  int64           `json:"orders_cnt"`
	UnitsSold  int64           `json:"units_sold"`
	GrossSales decimal.Decimal `json:"gross_sales"`
	AdSpendSP  decimal.Decimal `json:"ad_spend_sp"`
	NetProfit  decimal.Decimal `json:"net_profit"`
}
