package aggregating

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/log"
)

// Service agrega as tabelas carregadas e calcula as razões derivadas
type Service struct {
	unknownSKU string
}

func NewService(cfg *config.Config) *Service {
	unknownSKU := cfg.Report.UnknownSKU
	if unknownSKU == "" {
		unknownSKU = domain.DefaultUnknownSKU
	}

	return &Service{unknownSKU: unknownSKU}
}

// Aggregate monta o relatório completo a partir do dataset
func (s *Service) Aggregate(ctx context.Context, dataset *domain.Dataset) *domain.PerformanceReport {
	logger := log.ForContext(ctx)

	known := FilterKnownSkus(dataset.SkuMetrics, s.unknownSKU)
	skus := SummarizeSkus(known)
	monthlySales := SummarizeMonthlySales(dataset.Orders)
	monthlyAds, fallbacks := SummarizeMonthlyAds(dataset.SponsoredProducts)

	if fallbacks > 0 {
		logger.WithField("rows", fallbacks).Warn("Datas de início não reconhecidas; usando o prefixo de 7 caracteres como mês")
	}

	logger.WithFields(log.Fields{
		"skus":         len(skus),
		"discarded":    len(dataset.SkuMetrics) - len(known),
		"sales_months": len(monthlySales),
		"ad_months":    len(monthlyAds),
	}).Info("Agregação concluída")

	return &domain.PerformanceReport{
		Aggregate:    Totals(skus),
		Skus:         skus,
		MonthlySales: monthlySales,
		MonthlyAds:   monthlyAds,
		Breakdown:    CombineMonthly(monthlySales, monthlyAds),
		ReturnsCount: len(dataset.Returns),
	}
}

// FilterKnownSkus descarta o SKU sentinela (comparação exata) e SKUs vazios
func FilterKnownSkus(records []domain.SkuMetricRecord, unknownSKU string) []domain.SkuMetricRecord {
	return lo.Filter(records, func(r domain.SkuMetricRecord, _ int) bool {
		return r.SKU != "" && r.SKU != unknownSKU
	})
}

// SummarizeSkus soma os registros por SKU mantendo a ordem da primeira aparição
func SummarizeSkus(records []domain.SkuMetricRecord) []domain.SkuSummary {
	order := lo.Uniq(lo.Map(records, func(r domain.SkuMetricRecord, _ int) string {
		return r.SKU
	}))
	groups := lo.GroupBy(records, func(r domain.SkuMetricRecord) string {
		return r.SKU
	})

	return lo.Map(order, func(sku string, _ int) domain.SkuSummary {
		summary := domain.SkuSummary{SKU: sku}
		for _, record := range groups[sku] {
			summary.Add(record)
		}
		summary.Ratios = domain.CalculateRatios(summary.GrossSales, summary.AdSpendSP, summary.NetProfit)
		return summary
	})
}

// Totals calcula a linha TOTAL a partir das linhas por SKU
func Totals(skus []domain.SkuSummary) domain.AggregateMetrics {
	total := lo.Reduce(skus, func(acc domain.AggregateMetrics, s domain.SkuSummary, _ int) domain.AggregateMetrics {
		acc.TotalSales = acc.TotalSales.Add(s.GrossSales)
		acc.TotalAdSpend = acc.TotalAdSpend.Add(s.AdSpendSP)
		acc.TotalProfit = acc.TotalProfit.Add(s.NetProfit)
		acc.TotalOrders += s.OrdersCnt
		acc.TotalUnits += s.UnitsSold
		return acc
	}, domain.AggregateMetrics{})

	total.Ratios = domain.CalculateRatios(total.TotalSales, total.TotalAdSpend, total.TotalProfit)
	return total
}

// SummarizeMonthlySales soma item_price e conta pedidos por mês de compra.
// Pedidos sem data ficam de fora; pedidos sem ID não entram na contagem.
func SummarizeMonthlySales(orders []domain.Order) []domain.MonthlySales {
	byMonth := map[string]*domain.MonthlySales{}

	for _, order := range orders {
		month, ok := order.Month()
		if !ok {
			continue
		}

		row, exists := byMonth[month]
		if !exists {
			row = &domain.MonthlySales{Month: month}
			byMonth[month] = row
		}

		row.Sales = row.Sales.Add(order.ItemPrice)
		if order.AmazonOrderID != "" {
			row.Orders++
		}
	}

	months := lo.Keys(byMonth)
	slices.Sort(months)

	return lo.Map(months, func(month string, _ int) domain.MonthlySales {
		return *byMonth[month]
	})
}

// SummarizeMonthlyAds soma gasto e vendas de 7 dias por mês de início.
// Retorna também quantas linhas usaram o prefixo textual como mês.
func SummarizeMonthlyAds(records []domain.SponsoredProductRecord) ([]domain.MonthlyAdSummary, int) {
	byMonth := map[string]*domain.MonthlyAdSummary{}
	fallbacks := 0

	for _, record := range records {
		month, fallback, ok := record.Month()
		if !ok {
			continue
		}
		if fallback {
			fallbacks++
		}

		row, exists := byMonth[month]
		if !exists {
			row = &domain.MonthlyAdSummary{Month: month}
			byMonth[month] = row
		}

		row.AdSpend = row.AdSpend.Add(record.Spend)
		row.AdSales = row.AdSales.Add(record.SevenDayTotalSales)
	}

	months := lo.Keys(byMonth)
	slices.Sort(months)

	return lo.Map(months, func(month string, _ int) domain.MonthlyAdSummary {
		return *byMonth[month]
	}), fallbacks
}

// CombineMonthly une vendas e anúncios por mês (união dos meses, em ordem crescente).
// Gross Sales vem dos pedidos e AdSales das vendas atribuídas a anúncios. O
// relatório legado percorria só os meses com anúncio e exibia AdSales na coluna
// Gross Sales; aqui meses só com pedidos também aparecem.
func CombineMonthly(sales []domain.MonthlySales, ads []domain.MonthlyAdSummary) []domain.MonthlyBreakdown {
	salesByMonth := lo.KeyBy(sales, func(s domain.MonthlySales) string { return s.Month })
	adsByMonth := lo.KeyBy(ads, func(a domain.MonthlyAdSummary) string { return a.Month })

	months := lo.Union(lo.Keys(salesByMonth), lo.Keys(adsByMonth))
	slices.Sort(months)

	return lo.Map(months, func(month string, _ int) domain.MonthlyBreakdown {
		row := domain.MonthlyBreakdown{Month: month}
		if s, ok := salesByMonth[month]; ok {
			row.GrossSales = s.Sales
			row.Orders = s.Orders
		}
		if a, ok := adsByMonth[month]; ok {
			row.AdSpend = a.AdSpend
			row.AdSales = a.AdSales
		}
		return row
	})
}
