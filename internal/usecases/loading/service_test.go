package loading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/pkg/runErrors"
)

const (
	ordersCSV = "purchase_ts,amazon_order_id,item_price\n" +
		"2024-01-05T10:00:00Z,111-1,100.00\n" +
		"2024-01-28T12:30:00Z,111-2,50.50\n" +
		",111-3,\n"
	returnsCSV   = "order_id,reason\n111-1,damaged\n"
	sponsoredCSV = "start_date,spend,7_day_total_sales\n" +
		"2024-01-05,10.00,120.00\n" +
		"2024-02-01,,30.00\n"
	skuCSV = "sku,orders_cnt,units_sold,gross_sales,ad_spend_sp,net_profit\n" +
		"A1,10,12,1000,100,200\n" +
		"UNKNOWN,1,1,10,0,1\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("erro ao criar %s: %v", name, err)
	}
	return path
}

func newTestConfig(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"orders.csv":             ordersCSV,
		"returns.csv":            returnsCSV,
		"sponsored_products.csv": sponsoredCSV,
		"sku_metrics.csv":        skuCSV,
	}
	for name, content := range overrides {
		files[name] = content
	}

	paths := map[string]string{}
	for name, content := range files {
		paths[name] = writeFile(t, dir, name, content)
	}

	return &config.Config{
		Input: config.Input{
			OrdersPath:            paths["orders.csv"],
			ReturnsPath:           paths["returns.csv"],
			SponsoredProductsPath: paths["sponsored_products.csv"],
			SkuMetricsPath:        paths["sku_metrics.csv"],
		},
	}
}

func TestService_Load(t *testing.T) {
	cfg := newTestConfig(t, nil)

	dataset, err := NewService(cfg).Load(context.Background())
	assert.NoError(t, err)
	if !assert.NotNil(t, dataset) {
		return
	}

	assert.Len(t, dataset.Orders, 3)
	assert.Len(t, dataset.Returns, 1)
	assert.Len(t, dataset.SponsoredProducts, 2)
	assert.Len(t, dataset.SkuMetrics, 2)

	// Timestamp vazio vira nil e preço vazio vira zero
	assert.Nil(t, dataset.Orders[2].PurchaseTS)
	assert.True(t, dataset.Orders[2].ItemPrice.IsZero())
	assert.True(t, decimal.RequireFromString("50.50").Equal(dataset.Orders[1].ItemPrice))

	assert.Equal(t, "damaged", dataset.Returns[0].Values["reason"])

	assert.True(t, dataset.SponsoredProducts[1].Spend.IsZero())
	assert.Equal(t, "2024-02-01", dataset.SponsoredProducts[1].StartDate)

	sku := dataset.SkuMetrics[0]
	assert.Equal(t, "A1", sku.SKU)
	assert.Equal(t, int64(10), sku.OrdersCnt)
	assert.Equal(t, int64(12), sku.UnitsSold)
	assert.True(t, decimal.NewFromInt(1000).Equal(sku.GrossSales))
	assert.True(t, decimal.NewFromInt(100).Equal(sku.AdSpendSP))
	assert.True(t, decimal.NewFromInt(200).Equal(sku.NetProfit))
}

func TestService_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) *config.Config
		validate func(t *testing.T, err error)
	}{
		{
			name: "Arquivo ausente retorna ErrFileNotFound",
			setup: func(t *testing.T) *config.Config {
				cfg := newTestConfig(t, nil)
				cfg.Input.ReturnsPath = filepath.Join(t.TempDir(), "returns.csv")
				return cfg
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrFileNotFound))
				assert.Equal(t, runErrors.ErrFileNotFound, runErrors.CodeOf(err))
				assert.Equal(t, 2, runErrors.ExitCode(err))

				var loadErr *LoadError
				if assert.True(t, errors.As(err, &loadErr)) {
					assert.Contains(t, loadErr.File, "returns.csv")
				}
			},
		},
		{
			name: "Valor inválido informa linha e coluna",
			setup: func(t *testing.T) *config.Config {
				return newTestConfig(t, map[string]string{
					"orders.csv": "purchase_ts,amazon_order_id,item_price\n" +
						"2024-01-05T10:00:00Z,111-1,100.00\n" +
						"2024-01-06T10:00:00Z,111-2,dez\n",
				})
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrParse))
				assert.Equal(t, 3, runErrors.ExitCode(err))

				var loadErr *LoadError
				if assert.True(t, errors.As(err, &loadErr)) {
					assert.Equal(t, 3, loadErr.Line)
					assert.Equal(t, "item_price", loadErr.Column)
				}
			},
		},
		{
			name: "Coluna obrigatória ausente",
			setup: func(t *testing.T) *config.Config {
				return newTestConfig(t, map[string]string{
					"sku_metrics.csv": "sku,orders_cnt,units_sold,gross_sales,ad_spend_sp\nA1,1,1,10,1\n",
				})
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrParse))

				var loadErr *LoadError
				if assert.True(t, errors.As(err, &loadErr)) {
					assert.Equal(t, "net_profit", loadErr.Column)
					assert.Equal(t, 0, loadErr.Line)
				}
			},
		},
		{
			name: "Contagem fracionária é rejeitada",
			setup: func(t *testing.T) *config.Config {
				return newTestConfig(t, map[string]string{
					"sku_metrics.csv": "sku,orders_cnt,units_sold,gross_sales,ad_spend_sp,net_profit\nA1,1.5,1,10,1,1\n",
				})
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrParse))

				var loadErr *LoadError
				if assert.True(t, errors.As(err, &loadErr)) {
					assert.Equal(t, 2, loadErr.Line)
					assert.Equal(t, "orders_cnt", loadErr.Column)
				}
			},
		},
		{
			name: "Arquivo vazio é erro de parse",
			setup: func(t *testing.T) *config.Config {
				return newTestConfig(t, map[string]string{"returns.csv": ""})
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrParse))
				assert.False(t, errors.Is(err, ErrFileNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset, err := NewService(tt.setup(t)).Load(context.Background())
			assert.Nil(t, dataset)
			assert.Error(t, err)
			tt.validate(t, err)
		})
	}
}

func TestLoadReturns_AcceptsAnyColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "returns.csv", "a,b,c\n1,2,3\n4,5,6\n")

	returns, err := LoadReturns(path)
	assert.NoError(t, err)
	assert.Len(t, returns, 2)
	assert.Equal(t, "6", returns[1].Values["c"])
}

func TestLoadReturns_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Linha com campos a mais", content: "order_id,reason\n111-1,damaged,extra\n"},
		{name: "Linha com campos a menos", content: "order_id,reason\n111-1\n"},
		{name: "Arquivo sem cabeçalho", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "returns.csv", tt.content)

			returns, err := LoadReturns(path)
			assert.Nil(t, returns)
			assert.True(t, errors.Is(err, ErrParse))
			assert.Equal(t, 3, runErrors.ExitCode(err))
		})
	}
}
