package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ecommerce-report/internal/domain"
)

// Loader carrega os arquivos de entrada
type Loader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// Aggregator transforma o conjunto carregado no relatório calculado
type Aggregator interface {
	Aggregate(ctx context.Context, dataset *domain.Dataset) *domain.PerformanceReport
}

// DashboardRenderer grava a imagem do dashboard
type DashboardRenderer interface {
	Render(ctx context.Context, path string, report *domain.PerformanceReport) error
}

// Viewer exibe o dashboard salvo, quando há tela disponível
type Viewer interface {
	Available() bool
	Open(path string) error
}
