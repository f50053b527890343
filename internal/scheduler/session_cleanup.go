package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/repository"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
)

// SessionCleanupConfig representa a configuração do agendador de limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule   string
	CleanupEnabled bool
}

// SessionCleanupService remove periodicamente as sessões de autorização cujo
// TTL venceu sem o callback chegar. Sessões concluídas também expiram: o
// refresh token não fica retido indefinidamente no armazenamento.
type SessionCleanupService struct {
	scheduler   *gocron.Scheduler
	config      SessionCleanupConfig
	sessionRepo repository.AuthSessionRepository
	now         func() time.Time
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(sessionRepo repository.AuthSessionRepository, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule:   appConfig.SessionCleanup.CronSchedule,
		CleanupEnabled: appConfig.SessionCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   scheduler,
		config:      cleanupConfig,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de sessões de autorização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões de autorização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões de autorização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões de autorização")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup executa uma varredura de sessões expiradas
func (s *SessionCleanupService) runCleanup() {
	removed, err := s.sessionRepo.DeleteExpired(s.now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões de autorização expiradas")
		return
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Sessões de autorização expiradas removidas")
	}
}
