// Package scheduler contém os agendadores de tarefas recorrentes da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DailySummarySyncConfig representa a configuração do agendador de resumos diários
type DailySummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailySummarySyncService pré-calcula os resumos diários por loja, para que
// os painéis não precisem agregar atendimentos e despesas a cada consulta
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySummarySyncConfig
	sessionRepo         repository.ServiceSessionRepository
	costRepo            repository.CostEntryRepository
	summaryRepo         repository.DailySummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySummarySyncService(
	sessionRepo repository.ServiceSessionRepository,
	costRepo repository.CostEntryRepository,
	summaryRepo repository.DailySummaryRepository,
	appConfig *config.Config,
) *DailySummarySyncService {
	syncConfig := DailySummarySyncConfig{
		CronSchedule: appConfig.DailySummarySync.CronSchedule,
		LookbackDays: appConfig.DailySummarySync.LookbackDays,
		SyncEnabled:  appConfig.DailySummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de resumos diários carregada")

	return &DailySummarySyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		sessionRepo: sessionRepo,
		costRepo:    costRepo,
		summaryRepo: summaryRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de resumos diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumos diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncDailySummaries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de resumos diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumos diários")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncDailySummaries recalcula os resumos do período de retrovisão para todas
// as lojas com movimento. Execuções sobrepostas são ignoradas.
func (s *DailySummarySyncService) SyncDailySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de resumos diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização de resumos diários")

	storeIDs, err := s.summaryRepo.ListStoreIDs(startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas com movimento no período")
		return
	}

	if len(storeIDs) == 0 {
		logrus.Info("Nenhuma loja com movimento no período, nada a sincronizar")
		return
	}

	synced := 0
	for _, storeID := range storeIDs {
		count, err := s.syncStore(storeID, startDate, endDate)
		if err != nil {
			logrus.WithError(err).WithField("store_id", storeID).Error("Erro ao sincronizar resumos da loja")
			continue
		}
		synced += count
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"stores":    len(storeIDs),
		"summaries": synced,
	}).Info("Sincronização de resumos diários concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncStore recalcula e grava os resumos de uma loja, um registro por dia
// com movimento
func (s *DailySummarySyncService) syncStore(storeID string, startDate, endDate time.Time) (int, error) {
	sessions, err := s.sessionRepo.GetByDateRange(storeID, startDate, endDate)
	if err != nil {
		return 0, err
	}

	costs, err := s.costRepo.GetByDateRange(storeID, startDate, endDate)
	if err != nil {
		return 0, err
	}

	summaries := buildStoreSummaries(storeID, sessions, costs)

	for _, summary := range summaries {
		id, err := utils.GenerateID()
		if err != nil {
			return 0, err
		}
		summary.ID = id

		if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
			return 0, err
		}
	}

	return len(summaries), nil
}

func buildStoreSummaries(storeID string, sessions []*domain.ServiceSession, costs []*domain.CostEntry) []*domain.DailySummary {
	byDay := make(map[string]*domain.DailySummary)

	summaryFor := func(day string) *domain.DailySummary {
		summary, ok := byDay[day]
		if !ok {
			date, _ := time.ParseInLocation(time.DateOnly, day, time.Local)
			summary = &domain.DailySummary{StoreID: storeID, Date: date}
			byDay[day] = summary
		}
		return summary
	}

	for _, session := range sessions {
		summary := summaryFor(session.ServiceDate.Format(time.DateOnly))
		summary.TotalGross += session.GrossRevenue
		summary.TotalNet += session.NetRevenue
		summary.TotalBeauticianShare += session.BeauticianShare
		summary.SessionCount++
	}

	for _, cost := range costs {
		summary := summaryFor(cost.EntryDate.Format(time.DateOnly))
		summary.TotalCosts += cost.Amount
		summary.CostCount++
	}

	summaries := make([]*domain.DailySummary, 0, len(byDay))
	for _, summary := range byDay {
		summary.GrossProfit = summary.TotalGross - summary.TotalCosts
		summary.NetProfit = summary.TotalNet - summary.TotalCosts
		summaries = append(summaries, summary)
	}

	return summaries
}

// TriggerManualSync inicia manualmente uma sincronização de resumos diários
func (s *DailySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de resumos diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de resumos diários")
	go s.SyncDailySummaries()
}

// GetStatus retorna o status atual do agendador
func (s *DailySummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"retention_policy":       "dados mantidos permanentemente",
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
