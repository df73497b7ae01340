package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/internal/usecases/instagram"
	"github.com/orbicity/hotel-ops-api/pkg/log"
	"github.com/orbicity/hotel-ops-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// SourceProbeConfig representa a configuração da verificação periódica da origem
type SourceProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// SourceProbeService executa periodicamente uma aquisição completa de métricas
// e guarda o resultado para a rota de status. Nada é persistido.
type SourceProbeService struct {
	scheduler       *gocron.Scheduler
	config          SourceProbeConfig
	insighter       instagram.Insighter
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewSourceProbeService cria o serviço de verificação da origem
func NewSourceProbeService(insighter instagram.Insighter, appConfig *config.Config) *SourceProbeService {
	probeConfig := SourceProbeConfig{
		CronSchedule: appConfig.SourceProbe.CronSchedule,
		Enabled:      appConfig.SourceProbe.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da verificação da origem do Instagram carregada")

	return &SourceProbeService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    probeConfig,
		insighter: insighter,
	}
}

// Start inicia o agendador
func (s *SourceProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação da origem do Instagram desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação da origem do Instagram")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação da origem: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação da origem do Instagram")
		s.scheduler.Stop()
	}()

	return nil
}

// RunProbe executa uma verificação imediatamente e devolve o resultado. Devolve
// false quando outra verificação já está em andamento.
func (s *SourceProbeService) RunProbe() (domain.ProbeOutcome, bool) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Verificação da origem já em andamento, ignorando")
		return domain.ProbeOutcome{}, false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.mutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o ID da verificação")
	}

	ctx, correlationID := log.WithCorrelationID(context.Background())
	if runID == "" {
		runID = correlationID
	}

	started := time.Now()
	result := s.insighter.GetMetrics(ctx)

	outcome := domain.ProbeOutcome{
		RunID:     runID,
		Source:    result.Source,
		Reason:    result.Reason,
		StartedAt: started.UTC(),
		Duration:  time.Since(started).Round(time.Millisecond).String(),
	}
	s.insighter.RecordProbe(outcome)

	log.ForContext(ctx).WithFields(log.Fields{
		"run_id": outcome.RunID,
		"source": outcome.Source,
		"reason": outcome.Reason,
	}).Info("instagram: source probe finished")

	return outcome, true
}

func (s *SourceProbeService) probe() {
	s.RunProbe()
}

// TriggerManualSync executa uma verificação fora do agendamento, em segundo plano
func (s *SourceProbeService) TriggerManualSync() {
	if s.IsRunning() {
		logrus.Info("Verificação da origem já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando verificação manual da origem do Instagram")
	go s.probe()
}

// IsRunning informa se há uma verificação em andamento
func (s *SourceProbeService) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *SourceProbeService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"probe_enabled":           s.config.Enabled,
		"probe_cron":              s.config.CronSchedule,
		"probe_running":           s.running,
		"last_probe_started_at":   s.lastStartedAt,
		"last_probe_completed_at": s.lastCompletedAt,
	}
}
