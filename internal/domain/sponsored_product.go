package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

// SponsoredProductRecord representa uma linha de sponsored_products.csv
type SponsoredProductRecord struct {
	StartDate          string          `json:"start_date"`
	Spend              decimal.Decimal `json:"spend"`
	SevenDayTotalSales decimal.Decimal `json:"7_day_total_sales"`
}

// Month deriva a chave yyyy-mm a partir da data de início. fallback indica que
// a data não pôde ser interpretada e o prefixo textual foi usado.
func (r SponsoredProductRecord) Month() (month string, fallback bool, ok bool) {
	if r.StartDate == "" {
		return "", false, false
	}

	month, fallback = utils.MonthKey(r.StartDate)
	return month, fallback, true
}
