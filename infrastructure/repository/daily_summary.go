package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/salonops/salon-manager-api/infrastructure/database/postgres"
	"github.com/salonops/salon-manager-api/internal/domain"
)

const (
	dailySummariesTable = "daily_summaries ds"
)

type DailySummaryRepository interface {
	SaveOrUpdate(summary *domain.DailySummary) error
	GetByStoreAndDateRange(storeID string, startDate, endDate time.Time) ([]*domain.DailySummary, error)
	ListStoreIDs(startDate, endDate time.Time) ([]string, error)
}

type dailySummaryRepository struct {
	conn *postgres.Connection
}

func NewDailySummaryRepository(conn *postgres.Connection) DailySummaryRepository {
	return &dailySummaryRepository{
		conn: conn,
	}
}

func (r *dailySummaryRepository) SaveOrUpdate(summary *domain.DailySummary) error {
	query, args, err := squirrel.
		Insert("daily_summaries").
		Columns(
			"id",
			"store_id",
			"date",
			"total_gross",
			"total_net",
			"total_beautician_share",
			"session_count",
			"total_costs",
			"cost_count",
			"gross_profit",
			"net_profit",
		).
		Values(
			summary.ID,
			summary.StoreID,
			summary.Date.Format(time.DateOnly),
			summary.TotalGross,
			summary.TotalNet,
			summary.TotalBeauticianShare,
			summary.SessionCount,
			summary.TotalCosts,
			summary.CostCount,
			summary.GrossProfit,
			summary.NetProfit,
		).
		Suffix(`
			ON CONFLICT (store_id, date) DO UPDATE SET
				total_gross = EXCLUDED.total_gross,
				total_net = EXCLUDED.total_net,
				total_beautician_share = EXCLUDED.total_beautician_share,
				session_count = EXCLUDED.session_count,
				total_costs = EXCLUDED.total_costs,
				cost_count = EXCLUDED.cost_count,
				gross_profit = EXCLUDED.gross_profit,
				net_profit = EXCLUDED.net_profit,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailySummaryRepository) GetByStoreAndDateRange(storeID string, startDate, endDate time.Time) ([]*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select(
			"ds.id",
			"ds.store_id",
			"ds.date",
			"ds.total_gross",
			"ds.total_net",
			"ds.total_beautician_share",
			"ds.session_count",
			"ds.total_costs",
			"ds.cost_count",
			"ds.gross_profit",
			"ds.net_profit",
			"ds.created_at",
			"ds.updated_at",
		).
		From(dailySummariesTable).
		Where(squirrel.Eq{"ds.store_id": storeID}).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)}).
		OrderBy("ds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary := &domain.DailySummary{}

		err := rows.Scan(
			&summary.ID,
			&summary.StoreID,
			&summary.Date,
			&summary.TotalGross,
			&summary.TotalNet,
			&summary.TotalBeauticianShare,
			&summary.SessionCount,
			&summary.TotalCosts,
			&summary.CostCount,
			&summary.GrossProfit,
			&summary.NetProfit,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo diário: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

// ListStoreIDs devolve as lojas com movimento no intervalo, para o agendador
// saber quais resumos recalcular
func (r *dailySummaryRepository) ListStoreIDs(startDate, endDate time.Time) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT store_id").
		From("service_sessions").
		Where(squirrel.GtOrEq{"service_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"service_date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	storeIDs := make([]string, 0)
	for rows.Next() {
		var storeID string
		if err := rows.Scan(&storeID); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		storeIDs = append(storeIDs, storeID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return storeIDs, nil
}
