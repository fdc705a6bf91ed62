package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/salonops/salon-manager-api/infrastructure/database/postgres"
	"github.com/salonops/salon-manager-api/internal/domain"
)

const (
	costEntriesTable = "cost_entries ce"
)

type CostEntryRepository interface {
	Create(entry *domain.CostEntry) error
	GetByID(id string) (*domain.CostEntry, error)
	List(filter domain.CostFilter) ([]*domain.CostEntry, int, error)
	Summarize(filter domain.CostFilter) (*domain.CostSummary, error)
	GetByDateRange(storeID string, startDate, endDate time.Time) ([]*domain.CostEntry, error)
	Update(entry *domain.CostEntry) error
	SoftDelete(id string, deletedBy string) error
}

type costEntryRepository struct {
	conn *postgres.Connection
}

func NewCostEntryRepository(conn *postgres.Connection) CostEntryRepository {
	return &costEntryRepository{
		conn: conn,
	}
}

func (r *costEntryRepository) Create(entry *domain.CostEntry) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := squirrel.
		Insert("cost_entries").
		Columns(
			"id",
			"store_id",
			"category",
			"payer",
			"amount",
			"entry_date",
			"allocation_rule_id",
			"description",
			"created_by",
			"created_at",
			"updated_at",
		).
		Values(
			entry.ID,
			entry.StoreID,
			entry.Category,
			entry.Payer,
			entry.Amount,
			entry.EntryDate.Format(time.DateOnly),
			entry.AllocationRuleID,
			entry.Description,
			entry.CreatedBy,
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *costEntryRepository) GetByID(id string) (*domain.CostEntry, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ce.id": id}).
		Where(squirrel.Eq{"ce.deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntryRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
	}

	return entry, nil
}

func (r *costEntryRepository) List(filter domain.CostFilter) ([]*domain.CostEntry, int, error) {
	total, err := r.count(filter)
	if err != nil {
		return nil, 0, err
	}

	builder := r.selectBuilder().
		OrderBy("ce.id ASC").
		Limit(uint64(filter.Limit))

	builder = applyCostFilter(builder, filter)

	if filter.Cursor != "" {
		builder = builder.Where(squirrel.Gt{"ce.id": filter.Cursor})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CostEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, total, nil
}

// Summarize agrega o conjunto filtrado completo, sem considerar a paginação
func (r *costEntryRepository) Summarize(filter domain.CostFilter) (*domain.CostSummary, error) {
	builder := squirrel.
		Select("ce.category", "ce.payer", "ce.amount").
		From(costEntriesTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyCostFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summary := &domain.CostSummary{
		CostsByCategory: make(map[string]float64),
		CostsByPayer:    make(map[string]float64),
	}

	for rows.Next() {
		var category, payer string
		var amount float64

		if err := rows.Scan(&category, &payer, &amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}

		summary.TotalCosts += amount
		summary.CostsByCategory[category] += amount
		summary.CostsByPayer[payer] += amount
		summary.Count++
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summary, nil
}

func (r *costEntryRepository) GetByDateRange(storeID string, startDate, endDate time.Time) ([]*domain.CostEntry, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ce.store_id": storeID}).
		Where(squirrel.Eq{"ce.deleted_at": nil}).
		Where(squirrel.GtOrEq{"ce.entry_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ce.entry_date": endDate.Format(time.DateOnly)}).
		OrderBy("ce.entry_date ASC").
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

	entries := make([]*domain.CostEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *costEntryRepository) Update(entry *domain.CostEntry) error {
	entry.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update("cost_entries").
		Set("category", entry.Category).
		Set("payer", entry.Payer).
		Set("amount", entry.Amount).
		Set("entry_date", entry.EntryDate.Format(time.DateOnly)).
		Set("allocation_rule_id", entry.AllocationRuleID).
		Set("description", entry.Description).
		Set("updated_by", entry.UpdatedBy).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SoftDelete marca a despesa como removida preenchendo deleted_at,
// preservando a categoria e os demais campos originais
func (r *costEntryRepository) SoftDelete(id string, deletedBy string) error {
	now := time.Now()

	query, args, err := squirrel.
		Update("cost_entries").
		Set("deleted_at", now).
		Set("updated_by", deletedBy).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *costEntryRepository) count(filter domain.CostFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(costEntriesTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyCostFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar despesas: %w", err)
	}

	return total, nil
}

func applyCostFilter(builder squirrel.SelectBuilder, filter domain.CostFilter) squirrel.SelectBuilder {
	// Registros removidos logicamente nunca aparecem em listagens nem em resumos
	builder = builder.Where(squirrel.Eq{"ce.deleted_at": nil})

	if filter.StoreID != "" {
		builder = builder.Where(squirrel.Eq{"ce.store_id": filter.StoreID})
	}

	// Categoria e pagador casam por substring, sem diferenciar maiúsculas
	if filter.Category != "" {
		builder = builder.Where(squirrel.ILike{"ce.category": "%" + filter.Category + "%"})
	}

	if filter.Payer != "" {
		builder = builder.Where(squirrel.ILike{"ce.payer": "%" + filter.Payer + "%"})
	}

	if filter.AllocationRuleID != "" {
		builder = builder.Where(squirrel.Eq{"ce.allocation_rule_id": filter.AllocationRuleID})
	}

	if filter.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"ce.entry_date": filter.DateFrom.Format(time.DateOnly)})
	}

	if filter.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"ce.entry_date": filter.DateTo.Format(time.DateOnly)})
	}

	return builder
}

func (r *costEntryRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ce.id",
			"ce.store_id",
			"ce.category",
			"ce.payer",
			"ce.amount",
			"ce.entry_date",
			"ce.allocation_rule_id",
			"ce.description",
			"ce.created_by",
			"ce.updated_by",
			"ce.deleted_at",
			"ce.created_at",
			"ce.updated_at",
		).
		From(costEntriesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *costEntryRepository) scanEntry(rows *sql.Rows) (*domain.CostEntry, error) {
	entry := &domain.CostEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.StoreID,
		&entry.Category,
		&entry.Payer,
		&entry.Amount,
		&entry.EntryDate,
		&entry.AllocationRuleID,
		&entry.Description,
		&entry.CreatedBy,
		&entry.UpdatedBy,
		&entry.DeletedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *costEntryRepository) scanEntryRow(row *sql.Row) (*domain.CostEntry, error) {
	entry := &domain.CostEntry{}

	err := row.Scan(
		&entry.ID,
		&entry.StoreID,
		&entry.Category,
		&entry.Payer,
		&entry.Amount,
		&entry.EntryDate,
		&entry.AllocationRuleID,
		&entry.Description,
		&entry.CreatedBy,
		&entry.UpdatedBy,
		&entry.DeletedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
