package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vfg2006/ecommerce-report/infrastructure/dashboard"
	"github.com/vfg2006/ecommerce-report/internal/config"
	"github.com/vfg2006/ecommerce-report/internal/pipeline"
	"github.com/vfg2006/ecommerce-report/internal/usecases/aggregating"
	"github.com/vfg2006/ecommerce-report/internal/usecases/loading"
	"github.com/vfg2006/ecommerce-report/internal/usecases/reporting"
	"github.com/vfg2006/ecommerce-report/pkg/log"
	"github.com/vfg2006/ecommerce-report/pkg/runErrors"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logs vão para stderr, o relatório fica sozinho no stdout
	_ = log.Configure(os.Stderr, "info")

	cfg, err := config.NewConfig()
	if err != nil {
		return runErrors.WriteError(os.Stderr, runErrors.FromError(err, runErrors.ErrConfiguration, "erro ao carregar configuração"))
	}

	if err := log.Configure(os.Stderr, cfg.App.LogLevel); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, runID := log.WithRunID(ctx)
	log.ForContext(ctx).WithField("format", cfg.Report.Format).Debugf("Execução %s iniciada", runID)

	runner := pipeline.NewRunner(
		cfg,
		loading.NewService(cfg),
		aggregating.NewService(cfg),
		reporting.NewReportWriter(cfg, os.Stdout),
		dashboard.NewRenderer(cfg),
		dashboard.SystemViewer{},
	)

	if err := runner.Run(ctx); err != nil {
		return runErrors.WriteError(os.Stderr, err)
	}

	return 0
}
