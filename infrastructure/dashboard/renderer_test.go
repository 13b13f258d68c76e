package dashboard

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
)

func testConfig() *config.Config {
	return &config.Config{
		Chart: config.Chart{
			WidthInches:           16,
			HeightInches:          6,
			DPI:                   50,
			AdSpendHighlightAbove: 2000,
		},
	}
}

func testReport() *domain.PerformanceReport {
	return &domain.PerformanceReport{
		Skus: []domain.SkuSummary{
			{SKU: "A1", GrossSales: decimal.NewFromInt(10000), AdSpendSP: decimal.NewFromInt(2500)},
			{SKU: "B2", GrossSales: decimal.NewFromInt(4000), AdSpendSP: decimal.NewFromInt(300)},
			{SKU: "C3", GrossSales: decimal.NewFromInt(2000), AdSpendSP: decimal.NewFromInt(2000)},
		},
		Breakdown: []domain.MonthlyBreakdown{
			{Month: "2024-01", GrossSales: decimal.NewFromInt(8000), AdSpend: decimal.NewFromInt(1500)},
			{Month: "2024-02", GrossSales: decimal.NewFromInt(6000), AdSpend: decimal.NewFromInt(1800)},
			{Month: "2024-03", GrossSales: decimal.NewFromInt(2000), AdSpend: decimal.NewFromInt(1500)},
		},
	}
}

func assertPNGSize(t *testing.T, path string, width, height int) {
	t.Helper()

	f, err := os.Open(path)
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if assert.NoError(t, err) {
		assert.Equal(t, width, cfg.Width)
		assert.Equal(t, height, cfg.Height)
	}
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name   string
		report *domain.PerformanceReport
	}{
		{name: "Relatório com SKUs e meses", report: testReport()},
		{name: "Relatório vazio ainda gera a imagem", report: &domain.PerformanceReport{}},
		{
			name: "Mês único com gasto zero",
			report: &domain.PerformanceReport{
				Skus:      []domain.SkuSummary{{SKU: "A1"}},
				Breakdown: []domain.MonthlyBreakdown{{Month: "2024-01"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "outputs", "analysis_dashboard.png")

			err := NewRenderer(testConfig()).Render(context.Background(), path, tt.report)
			assert.NoError(t, err)

			// 16x6 polegadas a 50 dpi
			assertPNGSize(t, path, 800, 300)
		})
	}
}

func TestRenderer_RenderInvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewRenderer(testConfig()).Render(context.Background(), filepath.Join(blocker, "dash.png"), testReport())
	assert.Error(t, err)
}

func TestRenderer_RenderSingleMonthFullResolution(t *testing.T) {
	cfg := testConfig()
	cfg.Chart.DPI = 300

	path := filepath.Join(t.TempDir(), "dash.png")
	report := &domain.PerformanceReport{
		Breakdown: []domain.MonthlyBreakdown{
			{Month: "2024-01", GrossSales: decimal.NewFromInt(5), AdSpend: decimal.NewFromInt(3)},
		},
	}

	assert.NoError(t, NewRenderer(cfg).Render(context.Background(), path, report))
	assertPNGSize(t, path, 4800, 1800)
}

func TestMonthTicks(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.MonthlyBreakdown
		expected []gochart.Tick
	}{
		{
			name: "Mês único ganha marcas nas bordas",
			rows: []domain.MonthlyBreakdown{{Month: "2024-01"}},
			expected: []gochart.Tick{
				{Value: -0.5},
				{Value: 0, Label: "2024-01"},
				{Value: 0.5},
			},
		},
		{
			name: "Vários meses mantêm a ordem",
			rows: []domain.MonthlyBreakdown{{Month: "2024-01"}, {Month: "2024-02"}},
			expected: []gochart.Tick{
				{Value: -0.5},
				{Value: 0, Label: "2024-01"},
				{Value: 1, Label: "2024-02"},
				{Value: 1.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := monthTicks(tt.rows)
			assert.Equal(t, tt.expected, ticks)

			// O go-chart recusa intervalo de largura zero no eixo x
			assert.Greater(t, ticks[len(ticks)-1].Value-ticks[0].Value, 0.0)
		})
	}
}

func TestRenderMonthlyChart_SingleMonth(t *testing.T) {
	rows := []domain.MonthlyBreakdown{{Month: "2024-01", GrossSales: decimal.NewFromInt(5), AdSpend: decimal.NewFromInt(3)}}

	img, err := renderMonthlyChart(rows, 600, 400, 100)
	if assert.NoError(t, err) {
		assert.Equal(t, 600, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())
	}
}

func TestBarColor(t *testing.T) {
	tests := []struct {
		name      string
		spend     float64
		threshold float64
		expected  interface{}
	}{
		{name: "Acima do limite fica vermelho", spend: 2500, threshold: 2000, expected: Red},
		{name: "Igual ao limite fica azul", spend: 2000, threshold: 2000, expected: Blue},
		{name: "Abaixo do limite fica azul", spend: 10, threshold: 2000, expected: Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BarColor(tt.spend, tt.threshold))
		})
	}
}

func TestAxisRange(t *testing.T) {
	r := axisRange([]float64{0, 0})
	assert.Greater(t, r.Max, r.Min)

	r = axisRange([]float64{100, 300})
	assert.Equal(t, 0.0, r.Min)
	assert.InDelta(t, 330.0, r.Max, 0.0001)
}
