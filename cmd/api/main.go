package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/database/postgres"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/api"
	"github.com/salonops/salon-manager-api/internal/audit"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/scheduler"
	"github.com/salonops/salon-manager-api/internal/usecases/costing"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/salonops/salon-manager-api/internal/usecases/importing"
	"github.com/salonops/salon-manager-api/internal/usecases/reporting"
	"github.com/salonops/salon-manager-api/internal/usecases/revenue"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewServiceSessionRepository(pgConn)
	costRepo := repository.NewCostEntryRepository(pgConn)
	exceptionRepo := repository.NewExceptionRecordRepository(pgConn)
	auditRepo := repository.NewAuditLogRepository(pgConn)
	summaryRepo := repository.NewDailySummaryRepository(pgConn)

	detector := detecting.NewEngine(exceptionRepo)
	calculator := revenue.NewShareCalculator(cfg)
	auditor := audit.NewRecorder(auditRepo)

	revenueService := revenue.NewService(sessionRepo, detector, calculator, auditor, cfg)
	costService := costing.NewService(costRepo, detector, auditor, cfg)
	exceptionService := detecting.NewExceptionService(exceptionRepo, cfg)
	reportService := reporting.NewService(sessionRepo, costRepo, summaryRepo)

	parser := importing.NewParser()
	importService := importing.NewOrchestrator(parser, detector, sessionRepo, calculator, cfg)

	// Inicializa o agendador de resumos diários
	dailySummarySyncService := scheduler.NewDailySummarySyncService(
		sessionRepo,
		costRepo,
		summaryRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := dailySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumos diários")
	} else {
		logrus.Info("Agendador de resumos diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		revenueService,
		costService,
		exceptionService,
		importService,
		reportService,
		dailySummarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
