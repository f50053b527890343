package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/database/postgres"
	"github.com/EmmS21/AdAlchemyAIAPICalls/infrastructure/repository"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/api"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/config"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/scheduler"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/advertising"
	"github.com/EmmS21/AdAlchemyAIAPICalls/internal/usecases/authorizing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := sessionRepository(ctx, cfg)

	managerFactory := advertising.NewManagerFactory(cfg)
	authService := authorizing.NewService(cfg, sessionRepo, managerFactory)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões de autorização")
	} else {
		logrus.Info("Agendador de limpeza de sessões de autorização iniciado com sucesso")
	}

	server, err := api.New(cfg, authService, managerFactory)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sessionRepository escolhe o armazenamento das sessões de autorização: um
// banco PostgreSQL compartilhado quando DATABASE_URL está definido, ou um
// mapa em memória restrito ao processo.
func sessionRepository(ctx context.Context, cfg *config.Config) repository.AuthSessionRepository {
	if cfg.Database.URL == "" {
		logrus.Info("DATABASE_URL não definido, usando armazenamento de sessões em memória")
		return repository.NewInMemoryAuthSessionRepository()
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return repository.NewAuthSessionRepository(conn)
}
