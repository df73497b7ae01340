package instagram

import (
	"context"

	"github.com/orbicity/hotel-ops-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_insighter.go -package=mocks

// Insighter entrega as métricas do Instagram para o painel. Nenhum método
// devolve erro: falhas viram dados sintéticos marcados como fallback.
type Insighter interface {
	// GetMetrics obtém as métricas da conta
	GetMetrics(ctx context.Context) domain.MetricsResult

	// GetPosts obtém as publicações mais recentes, no máximo limit
	GetPosts(ctx context.Context, limit int) domain.PostsResult

	// GetDashboard obtém métricas e publicações em paralelo
	GetDashboard(ctx context.Context) domain.DashboardResult

	// Status descreve a configuração e a descoberta da origem
	Status(ctx context.Context) domain.SourceStatus

	// RecordProbe guarda o resultado da última verificação agendada
	RecordProbe(outcome domain.ProbeOutcome)
}
