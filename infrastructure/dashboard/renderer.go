package dashboard

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/log"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	adSpendTitle = "Total Ad Spend by SKU"
	monthlyTitle = "Monthly Sales vs Ad Spend"

	maxBarWidth = 18 // pontos
)

var (
	Blue = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Red  = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

	gridColor = color.Gray{Y: 0xd9}
)

// Renderer gera o dashboard com dois painéis lado a lado em um único PNG
type Renderer struct {
	cfg config.Chart
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg.Chart}
}

// BarColor destaca em vermelho os SKUs cujo gasto passa do limite
func BarColor(adSpend, threshold float64) color.Color {
	if adSpend > threshold {
		return Red
	}
	return Blue
}

// Render desenha os painéis e grava o PNG em path, criando o diretório se preciso
func (r *Renderer) Render(ctx context.Context, path string, report *domain.PerformanceReport) error {
	width := vg.Length(r.cfg.WidthInches) * vg.Inch
	height := vg.Length(r.cfg.HeightInches) * vg.Inch

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(r.cfg.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Points(18),
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
	}

	bars, err := r.adSpendPlot(report.Skus, height)
	if err != nil {
		return err
	}
	bars.Draw(tiles.At(dc, 0, 0))

	if err := r.drawMonthlyPanel(tiles.At(dc, 1, 0), report.Breakdown); err != nil {
		return err
	}

	if err := save(path, img); err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path": path,
		"skus": len(report.Skus),
		"dpi":  r.cfg.DPI,
	}).Info("Dashboard salvo")

	return nil
}

func (r *Renderer) adSpendPlot(skus []domain.SkuSummary, height vg.Length) (*plot.Plot, error) {
	sorted := slices.Clone(skus)
	slices.SortStableFunc(sorted, func(a, b domain.SkuSummary) int {
		return a.AdSpendSP.Cmp(b.AdSpendSP)
	})

	p := plot.New()
	p.Title.Text = adSpendTitle
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = "Ad Spend ($)"
	p.X.Label.TextStyle.Font.Size = vg.Points(11)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	grid.Vertical.Color = gridColor
	p.Add(grid)

	if len(sorted) == 0 {
		return p, nil
	}

	barWidth := vg.Points(maxBarWidth)
	if perBar := height * 0.6 / vg.Length(len(sorted)); perBar < barWidth {
		barWidth = perBar
	}

	names := make([]string, len(sorted))
	positions := make(plotter.XYs, len(sorted))
	texts := make([]string, len(sorted))

	for i, s := range sorted {
		spend := s.AdSpendSP.InexactFloat64()

		bar, err := plotter.NewBarChart(plotter.Values{spend}, barWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao criar barra do SKU %s", s.SKU)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = BarColor(spend, r.cfg.AdSpendHighlightAbove)
		bar.LineStyle.Width = 0
		p.Add(bar)

		names[i] = s.SKU
		positions[i] = plotter.XY{X: spend, Y: float64(i)}
		texts[i] = "$" + utils.FormatWholeMoney(s.AdSpendSP)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: positions, Labels: texts})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar rótulos das barras")
	}
	labels.Offset = vg.Point{X: vg.Points(4)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(labels)

	p.NominalY(names...)

	// Espaço à direita para os rótulos
	if p.X.Max > 0 {
		p.X.Max *= 1.15
	}
	if p.X.Min > 0 {
		p.X.Min = 0
	}

	return p, nil
}

func (r *Renderer) drawMonthlyPanel(c draw.Canvas, rows []domain.MonthlyBreakdown) error {
	if len(rows) == 0 {
		p := plot.New()
		p.Title.Text = monthlyTitle
		p.Title.TextStyle.Font.Size = vg.Points(12)
		p.X.Label.Text = "Month"
		p.HideAxes()
		p.Draw(c)
		return nil
	}

	size := c.Rectangle.Size()
	widthPx := int(float64(size.X/vg.Inch) * float64(r.cfg.DPI))
	heightPx := int(float64(size.Y/vg.Inch) * float64(r.cfg.DPI))

	panel, err := renderMonthlyChart(rows, widthPx, heightPx, float64(r.cfg.DPI))
	if err != nil {
		return err
	}

	c.DrawImage(c.Rectangle, panel)
	return nil
}

func save(path string, img *vgimg.Canvas) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "erro ao criar diretório %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao gravar png %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "erro ao fechar arquivo %s", path)
	}

	return nil
}
