package pipeline

import (
	"context"

	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-report/pkg/log"
	"github.com/vfg2006/ecommerce-report/pkg/runErrors"
)

// Runner executa o relatório de ponta a ponta: carga, agregação, relatório
// no console e dashboard
type Runner struct {
	loader     Loader
	aggregator Aggregator
	reporter   reporting.ReportWriter
	renderer   DashboardRenderer
	viewer     Viewer

	dashboardPath string
	show          bool
}

func NewRunner(
	cfg *config.Config,
	loader Loader,
	aggregator Aggregator,
	reporter reporting.ReportWriter,
	renderer DashboardRenderer,
	viewer Viewer,
) *Runner {
	return &Runner{
		loader:        loader,
		aggregator:    aggregator,
		reporter:      reporter,
		renderer:      renderer,
		viewer:        viewer,
		dashboardPath: cfg.Output.DashboardPath,
		show:          cfg.Chart.Show,
	}
}

// Run para no primeiro erro. O relatório já impresso permanece na saída
// mesmo que o dashboard falhe. O contexto é verificado entre as etapas, então
// um sinal de interrupção encerra a execução na próxima fronteira.
func (r *Runner) Run(ctx context.Context) error {
	logger := log.ForContext(ctx)
	logger.Info("Iniciando geração do relatório de performance")

	if err := interrupted(ctx); err != nil {
		return err
	}

	dataset, err := r.loader.Load(ctx)
	if err != nil {
		return err
	}

	if err := interrupted(ctx); err != nil {
		return err
	}

	report := r.aggregator.Aggregate(ctx, dataset)

	if err := r.reporter.WriteReport(ctx, report); err != nil {
		return runErrors.FromError(err, runErrors.ErrOutput, "erro ao escrever relatório")
	}

	if err := interrupted(ctx); err != nil {
		return err
	}

	if err := r.renderer.Render(ctx, r.dashboardPath, report); err != nil {
		return runErrors.FromError(err, runErrors.ErrOutput, "erro ao salvar dashboard")
	}

	r.display(logger)

	if err := r.reporter.WriteFooter(ctx, r.dashboardPath); err != nil {
		return runErrors.FromError(err, runErrors.ErrOutput, "erro ao escrever rodapé")
	}

	logger.Info("Relatório concluído")
	return nil
}

func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return runErrors.FromError(err, runErrors.ErrInternal, "execução interrompida")
	}
	return nil
}

// display é best effort: sem tela ou sem visualizador apenas registra o aviso
func (r *Runner) display(logger log.Logger) {
	if !r.show || r.viewer == nil {
		return
	}

	if !r.viewer.Available() {
		logger.Debug("Nenhuma tela disponível, dashboard não será exibido")
		return
	}

	if err := r.viewer.Open(r.dashboardPath); err != nil {
		logger.WithError(err).Warn("Não foi possível exibir o dashboard")
	}
}
