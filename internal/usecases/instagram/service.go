package instagram

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows"
	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/rowsclient"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/shape"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/pkg/log"
)

const (
	// SourceKey é a chave lógica da origem no cache de resolução
	SourceKey = "instagram"

	DefaultPostsLimit = 9
	MaxPostsLimit     = 100

	ReasonUnconfigured = "unconfigured"
	ReasonInternal     = "internal"
	// ReasonNotProvided marca blocos que a planilha nunca fornece
	ReasonNotProvided = "not_provided"
)

type stage string

const (
	stageUnconfigured stage = "unconfigured"
	stageResolving    stage = "resolving"
	stageFetching     stage = "fetching"
	stageParsing      stage = "parsing"
	stageLive         stage = "live"
	stageFallback     stage = "fallback"
)

// Service orquestra configuração, descoberta, busca e parsing. Qualquer falha
// no caminho termina nos dados sintéticos de fallback.
type Service struct {
	cfg       *config.Config
	client    rowsclient.Client
	resolver  *rows.Resolver
	parser    *shape.Parser
	timeout   time.Duration
	lastProbe atomic.Pointer[domain.ProbeOutcome]
}

// NewService cria o serviço de métricas do Instagram
func NewService(cfg *config.Config, client rowsclient.Client, resolver *rows.Resolver) Insighter {
	timeout := cfg.Rows.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRowsRequestTimeout
	}

	return &Service{
		cfg:      cfg,
		client:   client,
		resolver: resolver,
		parser:   shape.NewParser(),
		timeout:  timeout,
	}
}

// GetMetrics obtém as métricas da conta
func (s *Service) GetMetrics(ctx context.Context) (result domain.MetricsResult) {
	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).WithField("panic", r).Error("instagram: metrics acquisition panicked")
			result = metricsFallback(ReasonInternal)
		}
	}()

	payload, reason := s.acquire(ctx, "metrics", rows.MetricsTablePatterns(SourceKey))
	if reason != "" {
		return metricsFallback(reason)
	}

	s.enter(ctx, "metrics", stageParsing)
	record := s.parser.Metrics(payload)
	if record == nil {
		reason = rowsdomain.Reason(rowsdomain.ErrShapeMismatch)
		log.ForContext(ctx).WithFields(log.Fields{
			"operation": "metrics",
			"keys":      payload.Keys(),
		}).Warn("instagram: no strategy recognized the metrics payload")
		s.enter(ctx, "metrics", stageFallback)
		return metricsFallback(reason)
	}

	s.enter(ctx, "metrics", stageLive)
	return domain.MetricsResult{Data: *record, Source: domain.SourceLive}
}

// GetPosts obtém as publicações. limit <= 0 usa o padrão e o máximo é MaxPostsLimit.
func (s *Service) GetPosts(ctx context.Context, limit int) (result domain.PostsResult) {
	limit = normalizeLimit(limit)

	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).WithField("panic", r).Error("instagram: posts acquisition panicked")
			result = postsFallback(ReasonInternal, limit)
		}
	}()

	payload, reason := s.acquire(ctx, "posts", rows.PostsTablePatterns(SourceKey))
	if reason != "" {
		return postsFallback(reason, limit)
	}

	s.enter(ctx, "posts", stageParsing)
	posts := s.parser.Posts(payload)
	if len(posts) == 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"operation": "posts",
			"keys":      payload.Keys(),
		}).Warn("instagram: no strategy recognized the posts payload")
		s.enter(ctx, "posts", stageFallback)
		return postsFallback(rowsdomain.Reason(rowsdomain.ErrShapeMismatch), limit)
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}

	s.enter(ctx, "posts", stageLive)
	return domain.PostsResult{Data: posts, Source: domain.SourceLive}
}

// GetDashboard obtém métricas e publicações em paralelo. O público é sempre o bloco fixo.
func (s *Service) GetDashboard(ctx context.Context) domain.DashboardResult {
	dashboard := domain.DashboardResult{
		Demographics: domain.DemographicsResult{
			Data:   MockDemographics(),
			Source: domain.SourceFallback,
			Reason: ReasonNotProvided,
		},
	}

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		dashboard.Metrics = s.GetMetrics(ctx)
	}()

	go func() {
		defer wg.Done()
		dashboard.Posts = s.GetPosts(ctx, DefaultPostsLimit)
	}()

	wg.Wait()

	return dashboard
}

// Status descreve a origem sem buscar valores: apenas a configuração e a descoberta
func (s *Service) Status(ctx context.Context) (status domain.SourceStatus) {
	status.LastProbe = s.LastProbe()

	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).WithField("panic", r).Error("instagram: status check panicked")
			status.Connected = false
			status.Error = ReasonInternal
		}
		status.DefaultPicks = s.resolver.DefaultPicks()
	}()

	src, ok := s.cfg.Rows.Source()
	if !ok {
		status.Error = ReasonUnconfigured
		return status
	}

	status.Configured = true
	status.Pattern = src.Pattern
	if status.Pattern == "" && src.SpreadsheetID == "" {
		status.Pattern = SourceKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.resolver.ResolveSpreadsheet(ctx, SourceKey, hintFor(src))
	if err != nil {
		status.Error = s.failure(ctx, "status", err)
		return status
	}
	status.Spreadsheet = &ref

	tables, err := s.resolver.Tables(ctx, ref.ID)
	if err != nil {
		status.Error = s.failure(ctx, "status", err)
		return status
	}

	status.Tables = tables
	status.Connected = true
	return status
}

// RecordProbe guarda o resultado da última verificação agendada
func (s *Service) RecordProbe(outcome domain.ProbeOutcome) {
	s.lastProbe.Store(&outcome)
}

// LastProbe devolve uma cópia do último resultado registrado, ou nil
func (s *Service) LastProbe() *domain.ProbeOutcome {
	p := s.lastProbe.Load()
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

// acquire percorre configuração, descoberta e busca. Um motivo não vazio indica fallback.
func (s *Service) acquire(ctx context.Context, operation string, patterns []string) (rowsdomain.Payload, string) {
	src, ok := s.cfg.Rows.Source()
	if !ok {
		s.enter(ctx, operation, stageUnconfigured)
		return nil, ReasonUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.enter(ctx, operation, stageResolving)
	ref, err := s.resolver.ResolveSpreadsheet(ctx, SourceKey, hintFor(src))
	if err != nil {
		return nil, s.failure(ctx, operation, err)
	}

	table, err := s.resolver.ResolveTable(ctx, ref.ID, patterns)
	if err != nil {
		return nil, s.failure(ctx, operation, err)
	}

	s.enter(ctx, operation, stageFetching)
	payload, err := s.client.GetTableValues(ctx, ref.ID, table.ID)
	if err != nil {
		return nil, s.failure(ctx, operation, err)
	}

	return payload, ""
}

// failure registra a falha e devolve o motivo exposto no resultado. Estourar o
// prazo da chamada conta como erro de rede.
func (s *Service) failure(ctx context.Context, operation string, err error) string {
	reason := rowsdomain.Reason(err)
	if ctx.Err() != nil {
		reason = string(rowsdomain.KindNetwork)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"operation": operation,
		"reason":    reason,
	}).WithError(err).Warn("instagram: acquisition failed, serving fallback data")

	s.enter(ctx, operation, stageFallback)
	return reason
}

func (s *Service) enter(ctx context.Context, operation string, st stage) {
	log.ForContext(ctx).WithFields(log.Fields{
		"operation": operation,
		"stage":     string(st),
	}).Debug("instagram: stage")
}

func hintFor(src config.RowsSource) rows.Hint {
	return rows.Hint{SpreadsheetID: src.SpreadsheetID, Pattern: src.Pattern}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPostsLimit
	}
	if limit > MaxPostsLimit {
		return MaxPostsLimit
	}
	return limit
}

func metricsFallback(reason string) domain.MetricsResult {
	return domain.MetricsResult{Data: MockMetrics(), Source: domain.SourceFallback, Reason: reason}
}

func postsFallback(reason string, limit int) domain.PostsResult {
	return domain.PostsResult{Data: MockPosts(limit), Source: domain.SourceFallback, Reason: reason}
}
