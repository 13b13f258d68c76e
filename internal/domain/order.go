package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

// Order representa uma linha de orders.csv
type Order struct {
	PurchaseTS    *time.Time      `json:"purchase_ts"`
	AmazonOrderID string          `json:"amazon_order_id"`
	ItemPrice     decimal.Decimal `json:"item_price"`
}

// Month retorna o mês (yyyy-mm) da compra no fuso do próprio timestamp
func (o Order) Month() (string, bool) {
	if o.PurchaseTS == nil {
		return "", false
	}

	return o.PurchaseTS.Format(utils.MonthLayout), true
}
