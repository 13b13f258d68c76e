package reporting

import (
	"context"
	"io"

	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/domain"
)

// ReportWriter escreve o relatório calculado na saída padrão
type ReportWriter interface {
	// WriteReport escreve as seções do relatório (antes da geração do dashboard)
	WriteReport(ctx context.Context, report *domain.PerformanceReport) error

	// WriteFooter escreve o rodapé depois que o dashboard foi salvo
	WriteFooter(ctx context.Context, dashboardPath string) error
}

// NewReportWriter escolhe o formato configurado (texto ou json)
func NewReportWriter(cfg *config.Config, w io.Writer) ReportWriter {
	if cfg.Report.Format == config.FormatJSON {
		return NewJSONReporter(w, cfg.Output.DashboardPath)
	}

	return NewConsoleReporter(w, cfg.Report.UndefinedPlaceholder)
}
