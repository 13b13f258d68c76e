package reporting

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/log"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

type jsonRatios struct {
	ACoS      *float64 `json:"acos"`
	TACoS     *float64 `json:"tacos"`
	NetMargin *float64 `json:"net_margin"`
}

type jsonAggregate struct {
	TotalSales   float64    `json:"total_sales"`
	TotalAdSpend float64    `json:"total_ad_spend"`
	NetProfit    float64    `json:"net_profit"`
	TotalOrders  int64      `json:"total_orders"`
	TotalUnits   int64      `json:"total_units"`
	Ratios       jsonRatios `json:"ratios"`
}

type jsonSku struct {
	SKU        string     `json:"sku"`
	OrdersCnt  int64      `json:"orders_cnt"`
	UnitsSold  int64      `json:"units_sold"`
	GrossSales float64    `json:"gross_sales"`
	AdSpendSP  float64    `json:"ad_spend_sp"`
	NetProfit  float64    `json:"net_profit"`
	Ratios     jsonRatios `json:"ratios"`
}

type jsonMonth struct {
	Month      string  `json:"month"`
	GrossSales float64 `json:"gross_sales"`
	Orders     int64   `json:"orders"`
	AdSpend    float64 `json:"ad_spend"`
	AdSales    float64 `json:"ad_sales"`
}

type jsonReport struct {
	RunID         string        `json:"run_id,omitempty"`
	Aggregate     jsonAggregate `json:"aggregate"`
	Skus          []jsonSku     `json:"skus"`
	Monthly       []jsonMonth   `json:"monthly_breakdown"`
	ReturnsCount  int           `json:"returns_count"`
	DashboardPath string        `json:"dashboard_path"`
}

// JSONReporter escreve o relatório como um documento JSON indentado
type JSONReporter struct {
	w             io.Writer
	dashboardPath string
}

func NewJSONReporter(w io.Writer, dashboardPath string) *JSONReporter {
	return &JSONReporter{w: w, dashboardPath: dashboardPath}
}

func (j *JSONReporter) WriteReport(ctx context.Context, report *domain.PerformanceReport) error {
	doc := jsonReport{
		RunID: log.GetRunID(ctx),
		Aggregate: jsonAggregate{
			TotalSales:   money(report.Aggregate.TotalSales),
			TotalAdSpend: money(report.Aggregate.TotalAdSpend),
			NetProfit:    money(report.Aggregate.TotalProfit),
			TotalOrders:  report.Aggregate.TotalOrders,
			TotalUnits:   report.Aggregate.TotalUnits,
			Ratios:       ratios(report.Aggregate.Ratios),
		},
		Skus: lo.Map(report.Skus, func(s domain.SkuSummary, _ int) jsonSku {
			return jsonSku{
				SKU:        s.SKU,
				OrdersCnt:  s.OrdersCnt,
				UnitsSold:  s.UnitsSold,
				GrossSales: money(s.GrossSales),
				AdSpendSP:  money(s.AdSpendSP),
				NetProfit:  money(s.NetProfit),
				Ratios:     ratios(s.Ratios),
			}
		}),
		Monthly: lo.Map(report.Breakdown, func(m domain.MonthlyBreakdown, _ int) jsonMonth {
			return jsonMonth{
				Month:      m.Month,
				GrossSales: money(m.GrossSales),
				Orders:     m.Orders,
				AdSpend:    money(m.AdSpend),
				AdSales:    money(m.AdSales),
			}
		}),
		ReturnsCount:  report.ReturnsCount,
		DashboardPath: j.dashboardPath,
	}

	out, err := utils.PrettyJson(doc)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	out = append(out, '\n')
	if _, err := j.w.Write(out); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// WriteFooter não escreve nada; o caminho do dashboard já está no documento
func (j *JSONReporter) WriteFooter(context.Context, string) error {
	return nil
}

func money(d decimal.Decimal) float64 {
	return utils.RoundWithTwoDecimalPlace(d).InexactFloat64()
}

func percent(p domain.Percentage) *float64 {
	if !p.Valid {
		return nil
	}
	return lo.ToPtr(p.Value.InexactFloat64())
}

func ratios(r domain.Ratios) jsonRatios {
	return jsonRatios{
		ACoS:      percent(r.ACoS),
		TACoS:     percent(r.TACoS),
		NetMargin: percent(r.NetMargin),
	}
}
