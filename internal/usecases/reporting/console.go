package reporting

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
)

const (
	reportTitle = "AMAZON ECOMMERCE PERFORMANCE ANALYSIS"
	lineWidth   = 80

	defaultPlaceholder = "N/A"
)

var (
	doubleRule = strings.Repeat("=", lineWidth)
	singleRule = strings.Repeat("-", lineWidth)
)

// ConsoleReporter escreve o relatório em texto com colunas de largura fixa
type ConsoleReporter struct {
	w           io.Writer
	placeholder string
}

func NewConsoleReporter(w io.Writer, placeholder string) *ConsoleReporter {
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}

	return &ConsoleReporter{w: w, placeholder: placeholder}
}

func (c *ConsoleReporter) WriteReport(_ context.Context, report *domain.PerformanceReport) error {
	buf := bufio.NewWriter(c.w)

	fmt.Fprintln(buf, doubleRule)
	fmt.Fprintln(buf, reportTitle)
	fmt.Fprintln(buf, doubleRule)

	c.writeAggregate(buf, report.Aggregate)
	c.writeSkus(buf, report.Skus, report.Aggregate)
	c.writeMonthly(buf, report.Breakdown)

	return buf.Flush()
}

func (c *ConsoleReporter) WriteFooter(_ context.Context, dashboardPath string) error {
	_, err := fmt.Fprintf(c.w, "\n\nVisualization saved to %s\n%s\n", dashboardPath, doubleRule)
	return err
}

func (c *ConsoleReporter) writeAggregate(w io.Writer, agg domain.AggregateMetrics) {
	fmt.Fprintln(w, "\nAGGREGATE METRICS")
	fmt.Fprintln(w, singleRule)
	fmt.Fprintf(w, "Total Sales:        $%s\n", utils.FormatMoney(agg.TotalSales))
	fmt.Fprintf(w, "Total Ad Spend:     $%s\n", utils.FormatMoney(agg.TotalAdSpend))
	fmt.Fprintf(w, "Net Profit:         $%s\n", utils.FormatMoney(agg.TotalProfit))
	fmt.Fprintf(w, "Net Margin:         %s\n", c.percent(agg.NetMargin, 0))
	fmt.Fprintf(w, "ACoS:               %s\n", c.percent(agg.ACoS, 0))
	fmt.Fprintf(w, "TACoS:              %s\n", c.percent(agg.TACoS, 0))
}

func (c *ConsoleReporter) writeSkus(w io.Writer, skus []domain.SkuSummary, agg domain.AggregateMetrics) {
	fmt.Fprintln(w, "\n\nSKU PERFORMANCE")
	fmt.Fprintln(w, singleRule)
	fmt.Fprintf(w, "%-10s %-12s %-12s %-8s %-8s %-12s %-10s\n",
		"SKU", "Sales", "Ad Spend", "ACoS", "TACoS", "Net Profit", "Net Margin")
	fmt.Fprintln(w, singleRule)

	for _, s := range skus {
		c.writeSkuRow(w, s.SKU, s.GrossSales, s.AdSpendSP, s.NetProfit, s.Ratios)
	}

	fmt.Fprintln(w, singleRule)
	c.writeSkuRow(w, "TOTAL", agg.TotalSales, agg.TotalAdSpend, agg.TotalProfit, agg.Ratios)
}

func (c *ConsoleReporter) writeSkuRow(w io.Writer, sku string, sales, adSpend, profit decimal.Decimal, ratios domain.Ratios) {
	fmt.Fprintf(w, "%-10s $%-11s $%-11s %s %s $%-11s %s\n",
		sku,
		utils.FormatMoney(sales),
		utils.FormatMoney(adSpend),
		c.percent(ratios.ACoS, 7),
		c.percent(ratios.TACoS, 7),
		utils.FormatMoney(profit),
		c.percent(ratios.NetMargin, 9),
	)
}

func (c *ConsoleReporter) writeMonthly(w io.Writer, rows []domain.MonthlyBreakdown) {
	fmt.Fprintln(w, "\n\nMONTHLY BREAKDOWN")
	fmt.Fprintln(w, singleRule)
	fmt.Fprintf(w, "%-15s %-15s %-15s %-15s\n", "Month", "Gross Sales", "Ad Spend", "Ad Sales")
	fmt.Fprintln(w, singleRule)

	for _, row := range rows {
		fmt.Fprintf(w, "%-15s $%-14s $%-14s $%-14s\n",
			row.Month,
			utils.FormatMoney(row.GrossSales),
			utils.FormatMoney(row.AdSpend),
			utils.FormatMoney(row.AdSales),
		)
	}
}

// percent alinha o número à esquerda em width colunas seguido de "%".
// Valores indefinidos ocupam as mesmas width+1 colunas com o placeholder.
func (c *ConsoleReporter) percent(p domain.Percentage, width int) string {
	if !p.Valid {
		return fmt.Sprintf("%-*s", width+1, c.placeholder)
	}

	return fmt.Sprintf("%-*s%%", width, p.Value.StringFixed(2))
}
