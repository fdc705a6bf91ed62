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
	exceptionRecordsTable = "exception_records er"
)

type ExceptionRecordRepository interface {
	CreateBatch(records []*domain.ExceptionRecord) error
	GetByID(id string) (*domain.ExceptionRecord, error)
	List(filter domain.ExceptionFilter) ([]*domain.ExceptionRecord, int, error)
	Resolve(id string, resolvedBy string) error
	Stats(storeID string) (*domain.ExceptionStats, error)
}

type exceptionRecordRepository struct {
	conn *postgres.Connection
}

func NewExceptionRecordRepository(conn *postgres.Connection) ExceptionRecordRepository {
	return &exceptionRecordRepository{
		conn: conn,
	}
}

// CreateBatch persiste todas as exceções de um mesmo registro em uma única instrução
func (r *exceptionRecordRepository) CreateBatch(records []*domain.ExceptionRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()

	builder := squirrel.
		Insert("exception_records").
		Columns(
			"id",
			"table_name",
			"record_id",
			"exception_type",
			"severity",
			"message",
			"field_name",
			"field_value",
			"rule_name",
			"store_id",
			"resolved",
			"created_at",
			"updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		record.CreatedAt = now
		record.UpdatedAt = now

		builder = builder.Values(
			record.ID,
			record.TableName,
			record.RecordID,
			record.ExceptionType,
			record.Severity,
			record.Message,
			record.FieldName,
			record.FieldValue,
			record.RuleName,
			record.StoreID,
			record.Resolved,
			record.CreatedAt,
			record.UpdatedAt,
		)
	}

	query, args, err := builder.ToSql()
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

func (r *exceptionRecordRepository) GetByID(id string) (*domain.ExceptionRecord, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"er.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := r.scanRecordRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear exceção: %w", err)
	}

	return record, nil
}

func (r *exceptionRecordRepository) List(filter domain.ExceptionFilter) ([]*domain.ExceptionRecord, int, error) {
	total, err := r.count(filter)
	if err != nil {
		return nil, 0, err
	}

	builder := r.selectBuilder().
		OrderBy("er.id ASC").
		Limit(uint64(filter.Limit))

	builder = applyExceptionFilter(builder, filter)

	if filter.Cursor != "" {
		builder = builder.Where(squirrel.Gt{"er.id": filter.Cursor})
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

	records := make([]*domain.ExceptionRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear exceção: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, total, nil
}

// Resolve marca a exceção como resolvida. Exceções nunca são removidas.
func (r *exceptionRecordRepository) Resolve(id string, resolvedBy string) error {
	now := time.Now()

	query, args, err := squirrel.
		Update("exception_records").
		Set("resolved", true).
		Set("resolved_by", resolvedBy).
		Set("resolved_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
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

func (r *exceptionRecordRepository) Stats(storeID string) (*domain.ExceptionStats, error) {
	builder := squirrel.
		Select("er.severity", "er.exception_type", "er.resolved").
		From(exceptionRecordsTable).
		PlaceholderFormat(squirrel.Dollar)

	if storeID != "" {
		builder = builder.Where(squirrel.Eq{"er.store_id": storeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := &domain.ExceptionStats{
		BySeverity: make(map[string]int),
		ByType:     make(map[string]int),
	}

	for rows.Next() {
		var severity, exceptionType string
		var resolved bool

		if err := rows.Scan(&severity, &exceptionType, &resolved); err != nil {
			return nil, fmt.Errorf("erro ao escanear exceção: %w", err)
		}

		stats.Total++
		if resolved {
			stats.Resolved++
		} else {
			stats.Unresolved++
		}
		stats.BySeverity[severity]++
		stats.ByType[exceptionType]++
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *exceptionRecordRepository) count(filter domain.ExceptionFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(exceptionRecordsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyExceptionFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar exceções: %w", err)
	}

	return total, nil
}

func applyExceptionFilter(builder squirrel.SelectBuilder, filter domain.ExceptionFilter) squirrel.SelectBuilder {
	if filter.StoreID != "" {
		builder = builder.Where(squirrel.Eq{"er.store_id": filter.StoreID})
	}

	if filter.TableName != "" {
		builder = builder.Where(squirrel.Eq{"er.table_name": filter.TableName})
	}

	if filter.Severity != "" {
		builder = builder.Where(squirrel.Eq{"er.severity": filter.Severity})
	}

	if filter.Resolved != nil {
		builder = builder.Where(squirrel.Eq{"er.resolved": *filter.Resolved})
	}

	return builder
}

func (r *exceptionRecordRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"er.id",
			"er.table_name",
			"er.record_id",
			"er.exception_type",
			"er.severity",
			"er.message",
			"er.field_name",
			"er.field_value",
			"er.rule_name",
			"er.store_id",
			"er.resolved",
			"er.resolved_by",
			"er.resolved_at",
			"er.created_at",
			"er.updated_at",
		).
		From(exceptionRecordsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *exceptionRecordRepository) scanRecord(rows *sql.Rows) (*domain.ExceptionRecord, error) {
	record := &domain.ExceptionRecord{}

	err := rows.Scan(
		&record.ID,
		&record.TableName,
		&record.RecordID,
		&record.ExceptionType,
		&record.Severity,
		&record.Message,
		&record.FieldName,
		&record.FieldValue,
		&record.RuleName,
		&record.StoreID,
		&record.Resolved,
		&record.ResolvedBy,
		&record.ResolvedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *exceptionRecordRepository) scanRecordRow(row *sql.Row) (*domain.ExceptionRecord, error) {
	record := &domain.ExceptionRecord{}

	err := row.Scan(
		&record.ID,
		&record.TableName,
		&record.RecordID,
		&record.ExceptionType,
		&record.Severity,
		&record.Message,
		&record.FieldName,
		&record.FieldValue,
		&record.RuleName,
		&record.StoreID,
		&record.Resolved,
		&record.ResolvedBy,
		&record.ResolvedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
