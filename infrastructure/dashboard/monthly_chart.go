package dashboard

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-report/internal/domain"
	"github.com/vfg2006/ecommerce-report/pkg/utils"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	salesColor   = drawing.ColorFromHex("1f77b4")
	adSpendColor = drawing.ColorFromHex("d62728")
	gridStyle    = gochart.Style{StrokeColor: drawing.ColorFromHex("d9d9d9"), StrokeWidth: 1}
)

// renderMonthlyChart desenha vendas (eixo esquerdo) e gasto com anúncios (eixo
// direito) por mês e devolve a imagem já rasterizada
func renderMonthlyChart(rows []domain.MonthlyBreakdown, widthPx, heightPx int, dpi float64) (image.Image, error) {
	xs := make([]float64, len(rows))
	for i := range rows {
		xs[i] = float64(i)
	}

	sales := lo.Map(rows, func(r domain.MonthlyBreakdown, _ int) float64 { return r.GrossSales.InexactFloat64() })
	spend := lo.Map(rows, func(r domain.MonthlyBreakdown, _ int) float64 { return r.AdSpend.InexactFloat64() })

	graph := gochart.Chart{
		Title:  monthlyTitle,
		Width:  widthPx,
		Height: heightPx,
		DPI:    dpi,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           "Month",
			Ticks:          monthTicks(rows),
			GridMajorStyle: gridStyle,
		},
		YAxis: gochart.YAxis{
			Name:           "Sales ($)",
			NameStyle:      gochart.Style{FontColor: salesColor},
			Style:          gochart.Style{FontColor: salesColor},
			Range:          axisRange(sales),
			ValueFormatter: moneyTick,
			GridMajorStyle: gridStyle,
		},
		YAxisSecondary: gochart.YAxis{
			Name:           "Ad Spend ($)",
			NameStyle:      gochart.Style{FontColor: adSpendColor},
			Style:          gochart.Style{FontColor: adSpendColor},
			Range:          axisRange(spend),
			ValueFormatter: moneyTick,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "Sales",
				XValues: xs,
				YValues: sales,
				Style: gochart.Style{
					StrokeColor: salesColor,
					StrokeWidth: 2.5,
					DotColor:    salesColor,
					DotWidth:    4,
				},
			},
			gochart.ContinuousSeries{
				Name:    "Ad Spend",
				YAxis:   gochart.YAxisSecondary,
				XValues: xs,
				YValues: spend,
				Style: gochart.Style{
					StrokeColor: adSpendColor,
					StrokeWidth: 2.5,
					DotColor:    adSpendColor,
					DotWidth:    4,
				},
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar gráfico mensal")
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar gráfico mensal")
	}

	return img, nil
}

// monthTicks rotula cada mês e acrescenta marcas sem rótulo meia posição antes
// e depois. O go-chart usa os ticks como intervalo do eixo x, então com um
// único mês o intervalo continua com largura 1.
func monthTicks(rows []domain.MonthlyBreakdown) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(rows)+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i, row := range rows {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: row.Month})
	}
	return append(ticks, gochart.Tick{Value: float64(len(rows)) - 0.5})
}

// axisRange sempre devolve um intervalo não vazio, inclusive para séries constantes
func axisRange(values []float64) *gochart.ContinuousRange {
	low := lo.Min(append(values, 0))
	high := lo.Max(append(values, 0))
	if high <= low {
		high = low + 1
	}

	return &gochart.ContinuousRange{Min: low, Max: high * 1.1}
}

func moneyTick(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return "$" + utils.FormatWholeMoney(decimal.NewFromFloat(f))
}
