// Package reporting implementa a agregação de relatórios financeiros por
// loja e intervalo de datas, somente leitura.
package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/pkg/log"
	"github.com/salonops/salon-manager-api/pkg/utils"
)

const topRevenueDaysLimit = 5
const topPerformersLimit = 3

type ReportService interface {
	GenerateDailyReport(filter domain.ReportFilter) (*domain.DailyReport, error)
	GenerateSummary(filter domain.ReportFilter) (*domain.ReportSummary, error)
	ListDailySummaries(storeID string, dateFrom, dateTo time.Time) ([]*domain.DailySummary, error)
	ExportReport(filter domain.ReportFilter, format string) (*ExportedReport, error)
}

type Service struct {
	sessionRepo repository.ServiceSessionRepository
	costRepo    repository.CostEntryRepository
	summaryRepo repository.DailySummaryRepository
}

func NewService(
	sessionRepo repository.ServiceSessionRepository,
	costRepo repository.CostEntryRepository,
	summaryRepo repository.DailySummaryRepository,
) ReportService {
	return &Service{
		sessionRepo: sessionRepo,
		costRepo:    costRepo,
		summaryRepo: summaryRepo,
	}
}

// GenerateDailyReport monta o relatório completo do período: totais, quebra
// diária, desempenho por profissional, melhores dias e tendência de despesas.
// Leitura pura: duas execuções sobre os mesmos dados produzem o mesmo relatório.
func (s *Service) GenerateDailyReport(filter domain.ReportFilter) (*domain.DailyReport, error) {
	log.L.WithFields(log.Fields{
		"store_id":  filter.StoreID,
		"date_from": filter.DateFrom.Format(time.DateOnly),
		"date_to":   filter.DateTo.Format(time.DateOnly),
	}).Info("Gerando relatório diário")

	sessions, err := s.sessionRepo.GetByDateRange(filter.StoreID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar atendimentos do período")
	}

	costs, err := s.costRepo.GetByDateRange(filter.StoreID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar despesas do período")
	}

	revenue := aggregateRevenue(sessions)
	costAgg := aggregateCosts(costs)

	report := &domain.DailyReport{
		Period:                buildPeriod(filter),
		Summary:               buildSummary(revenue, costAgg),
		DailyBreakdown:        buildDailyBreakdown(sessions, costs),
		BeauticianPerformance: buildBeauticianPerformance(sessions),
		TopRevenueDays:        buildTopRevenueDays(sessions),
		CostTrends:            buildCostTrends(costs),
	}

	return report, nil
}

// GenerateSummary devolve a versão condensada do relatório, com as três
// profissionais de maior receita
func (s *Service) GenerateSummary(filter domain.ReportFilter) (*domain.ReportSummary, error) {
	report, err := s.GenerateDailyReport(filter)
	if err != nil {
		return nil, err
	}

	performers := report.BeauticianPerformance
	if len(performers) > topPerformersLimit {
		performers = performers[:topPerformersLimit]
	}

	return &domain.ReportSummary{
		Period:        report.Period,
		Summary:       report.Summary,
		TopPerformers: performers,
	}, nil
}

// ListDailySummaries lê os resumos pré-calculados pelo agendador noturno
func (s *Service) ListDailySummaries(storeID string, dateFrom, dateTo time.Time) ([]*domain.DailySummary, error) {
	summaries, err := s.summaryRepo.GetByStoreAndDateRange(storeID, dateFrom, dateTo)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar resumos diários")
	}

	return summaries, nil
}

func buildPeriod(filter domain.ReportFilter) domain.ReportPeriod {
	return domain.ReportPeriod{
		StartDate: filter.DateFrom.Format(time.DateOnly),
		EndDate:   filter.DateTo.Format(time.DateOnly),
		TotalDays: int(math.Ceil(filter.DateTo.Sub(filter.DateFrom).Hours() / 24)),
	}
}

func aggregateRevenue(sessions []*domain.ServiceSession) domain.RevenueAggregate {
	agg := domain.RevenueAggregate{}

	for _, session := range sessions {
		agg.TotalGross += session.GrossRevenue
		agg.TotalNet += session.NetRevenue
		agg.TotalBeauticianShare += session.BeauticianShare
		agg.SessionCount++
	}

	if agg.SessionCount > 0 {
		agg.AveragePerSession = utils.RoundWithTwoDecimalPlace(agg.TotalGross / float64(agg.SessionCount))
	}

	return agg
}

func aggregateCosts(costs []*domain.CostEntry) domain.CostAggregate {
	agg := domain.CostAggregate{
		ByCategory: make(map[string]float64),
	}

	for _, cost := range costs {
		agg.TotalAmount += cost.Amount
		agg.CostCount++
		agg.ByCategory[cost.Category] += cost.Amount
	}

	if agg.CostCount > 0 {
		agg.AverageAmount = utils.RoundWithTwoDecimalPlace(agg.TotalAmount / float64(agg.CostCount))
	}

	return agg
}

// deriveProfit calcula o lucro derivado. A margem é definida como zero quando
// não há receita bruta, nunca NaN.
func deriveProfit(revenue domain.RevenueAggregate, costs domain.CostAggregate) domain.ProfitAggregate {
	grossProfit := revenue.TotalGross - costs.TotalAmount
	netProfit := revenue.TotalNet - costs.TotalAmount

	profitMargin := 0.0
	if revenue.TotalGross > 0 {
		profitMargin = netProfit / revenue.TotalGross * 100
	}

	return domain.ProfitAggregate{
		GrossProfit:  grossProfit,
		NetProfit:    netProfit,
		ProfitMargin: profitMargin,
	}
}

func buildSummary(revenue domain.RevenueAggregate, costs domain.CostAggregate) domain.DailyReportData {
	return domain.DailyReportData{
		Date:    "summary",
		Revenue: revenue,
		Costs:   costs,
		Profit:  deriveProfit(revenue, costs),
	}
}

// buildDailyBreakdown agrega receitas e despesas por dia do período, em ordem
// cronológica. Dias sem movimento algum não aparecem.
func buildDailyBreakdown(sessions []*domain.ServiceSession, costs []*domain.CostEntry) []domain.DailyReportData {
	sessionsByDay := make(map[string][]*domain.ServiceSession)
	for _, session := range sessions {
		day := session.ServiceDate.Format(time.DateOnly)
		sessionsByDay[day] = append(sessionsByDay[day], session)
	}

	costsByDay := make(map[string][]*domain.CostEntry)
	for _, cost := range costs {
		day := cost.EntryDate.Format(time.DateOnly)
		costsByDay[day] = append(costsByDay[day], cost)
	}

	days := make([]string, 0, len(sessionsByDay))
	seen := make(map[string]bool)
	for day := range sessionsByDay {
		days = append(days, day)
		seen[day] = true
	}
	for day := range costsByDay {
		if !seen[day] {
			days = append(days, day)
		}
	}
	sort.Strings(days)

	breakdown := make([]domain.DailyReportData, 0, len(days))
	for _, day := range days {
		revenue := aggregateRevenue(sessionsByDay[day])
		costAgg := aggregateCosts(costsByDay[day])

		breakdown = append(breakdown, domain.DailyReportData{
			Date:    day,
			Revenue: revenue,
			Costs:   costAgg,
			Profit:  deriveProfit(revenue, costAgg),
		})
	}

	return breakdown
}

// buildBeauticianPerformance classifica as profissionais por receita bruta
// gerada no período, em ordem decrescente
func buildBeauticianPerformance(sessions []*domain.ServiceSession) []domain.BeauticianPerformance {
	byBeautician := make(map[string]*domain.BeauticianPerformance)

	for _, session := range sessions {
		perf, ok := byBeautician[session.BeauticianID]
		if !ok {
			perf = &domain.BeauticianPerformance{BeauticianID: session.BeauticianID}
			byBeautician[session.BeauticianID] = perf
		}

		perf.TotalRevenue += session.GrossRevenue
		perf.SessionCount++
		perf.TotalShare += session.BeauticianShare
	}

	performance := make([]domain.BeauticianPerformance, 0, len(byBeautician))
	for _, perf := range byBeautician {
		if perf.SessionCount > 0 {
			perf.AveragePerSession = utils.RoundWithTwoDecimalPlace(perf.TotalRevenue / float64(perf.SessionCount))
		}
		performance = append(performance, *perf)
	}

	sort.Slice(performance, func(i, j int) bool {
		if performance[i].TotalRevenue != performance[j].TotalRevenue {
			return performance[i].TotalRevenue > performance[j].TotalRevenue
		}
		return performance[i].BeauticianID < performance[j].BeauticianID
	})

	return performance
}

func buildTopRevenueDays(sessions []*domain.ServiceSession) []domain.TopRevenueDay {
	revenueByDay := make(map[string]float64)
	for _, session := range sessions {
		revenueByDay[session.ServiceDate.Format(time.DateOnly)] += session.GrossRevenue
	}

	topDays := make([]domain.TopRevenueDay, 0, len(revenueByDay))
	for day, total := range revenueByDay {
		topDays = append(topDays, domain.TopRevenueDay{Date: day, TotalRevenue: total})
	}

	sort.Slice(topDays, func(i, j int) bool {
		if topDays[i].TotalRevenue != topDays[j].TotalRevenue {
			return topDays[i].TotalRevenue > topDays[j].TotalRevenue
		}
		return topDays[i].Date < topDays[j].Date
	})

	if len(topDays) > topRevenueDaysLimit {
		topDays = topDays[:topRevenueDaysLimit]
	}

	return topDays
}

// buildCostTrends apresenta cada categoria de despesa com sua participação
// percentual no total do período, da maior para a menor
func buildCostTrends(costs []*domain.CostEntry) []domain.CostTrend {
	byCategory := make(map[string]float64)
	total := 0.0

	for _, cost := range costs {
		byCategory[cost.Category] += cost.Amount
		total += cost.Amount
	}

	trends := make([]domain.CostTrend, 0, len(byCategory))
	for category, amount := range byCategory {
		percentage := 0.0
		if total > 0 {
			percentage = amount / total * 100
		}

		trends = append(trends, domain.CostTrend{
			Category:    category,
			TotalAmount: amount,
			Percentage:  percentage,
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].TotalAmount != trends[j].TotalAmount {
			return trends[i].TotalAmount > trends[j].TotalAmount
		}
		return trends[i].Category < trends[j].Category
	})

	return trends
}
