package loading

import (
	"context"

	"github.com/vfg2006/ecommerce-report/infrastructure/csvfile"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/log"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

var (
	orderColumns     = []string{"purchase_ts", "amazon_order_id", "item_price"}
	sponsoredColumns = []string{"start_date", "spend", "7_day_total_sales"}
	skuColumns       = []string{"sku", "orders_cnt", "units_sold", "gross_sales", "ad_spend_sp", "net_profit"}
)

// Service carrega as quatro tabelas de entrada
type Service struct {
	input config.Input
}

func NewService(cfg *config.Config) *Service {
	return &Service{input: cfg.Input}
}

// Load lê os quatro CSVs em sequência; qualquer falha interrompe a carga
func (s *Service) Load(ctx context.Context) (*domain.Dataset, error) {
	logger := log.ForContext(ctx)

	orders, err := LoadOrders(s.input.OrdersPath)
	if err != nil {
		return nil, err
	}

	returns, err := LoadReturns(s.input.ReturnsPath)
	if err != nil {
		return nil, err
	}

	sponsored, err := LoadSponsoredProducts(s.input.SponsoredProductsPath)
	if err != nil {
		return nil, err
	}

	skuMetrics, err := LoadSkuMetrics(s.input.SkuMetricsPath)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"orders":             len(orders),
		"returns":            len(returns),
		"sponsored_products": len(sponsored),
		"sku_metrics":        len(skuMetrics),
	}).Info("Arquivos de entrada carregados")

	return &domain.Dataset{
		Orders:            orders,
		Returns:           returns,
		SponsoredProducts: sponsored,
		SkuMetrics:        skuMetrics,
	}, nil
}

func readTable(path string, columns ...string) (*csvfile.Table, error) {
	table, err := csvfile.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	if err := table.Require(columns...); err != nil {
		return nil, NewLoadError(path, err)
	}

	return table, nil
}

func LoadOrders(path string) ([]domain.Order, error) {
	table, err := readTable(path, orderColumns...)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, table.Len())
	err = table.Each(func(row csvfile.Row) error {
		ts, err := csvfile.Parse(row, "purchase_ts", utils.ParseTimestamp)
		if err != nil {
			return err
		}

		price, err := csvfile.Parse(row, "item_price", utils.ParseMoney)
		if err != nil {
			return err
		}

		orders = append(orders, domain.Order{
			PurchaseTS:    ts,
			AmazonOrderID: row.Get("amazon_order_id"),
			ItemPrice:     price,
		})
		return nil
	})
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	return orders, nil
}

func LoadReturns(path string) ([]domain.ReturnRecord, error) {
	table, err := readTable(path)
	if err != nil {
		return nil, err
	}

	returns := make([]domain.ReturnRecord, 0, table.Len())
	err = table.Each(func(row csvfile.Row) error {
		returns = append(returns, domain.ReturnRecord{Values: row.Map()})
		return nil
	})
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	return returns, nil
}

func LoadSponsoredProducts(path string) ([]domain.SponsoredProductRecord, error) {
	table, err := readTable(path, sponsoredColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SponsoredProductRecord, 0, table.Len())
	err = table.Each(func(row csvfile.Row) error {
		spend, err := csvfile.Parse(row, "spend", utils.ParseMoney)
		if err != nil {
			return err
		}

		sales, err := csvfile.Parse(row, "7_day_total_sales", utils.ParseMoney)
		if err != nil {
			return err
		}

		records = append(records, domain.SponsoredProductRecord{
			StartDate:          row.Get("start_date"),
			Spend:              spend,
			SevenDayTotalSales: sales,
		})
		return nil
	})
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	return records, nil
}

func LoadSkuMetrics(path string) ([]domain.SkuMetricRecord, error) {
	table, err := readTable(path, skuColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SkuMetricRecord, 0, table.Len())
	err = table.Each(func(row csvfile.Row) error {
		var err error
		record := domain.SkuMetricRecord{SKU: row.Get("sku")}

		if record.OrdersCnt, err = csvfile.Parse(row, "orders_cnt", utils.ParseCount); err != nil {
			return err
		}
		if record.UnitsSold, err = csvfile.Parse(row, "units_sold", utils.ParseCount); err != nil {
			return err
		}
		if record.GrossSales, err = csvfile.Parse(row, "gross_sales", utils.ParseMoney); err != nil {
			return err
		}
		if record.AdSpendSP, err = csvfile.Parse(row, "ad_spend_sp", utils.ParseMoney); err != nil {
			return err
		}
		if record.NetProfit, err = csvfile.Parse(row, "net_profit", utils.ParseMoney); err != nil {
			return err
		}

		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	return records, nil
}
