// Package repository contém as implementações dos repositórios para acesso aos dados
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
	serviceSessionsTable = "service_sessions ss"
)

type ServiceSessionRepository interface {
	Create(session *domain.ServiceSession) error
	GetByID(id string) (*domain.ServiceSession, error)
	List(filter domain.ServiceSessionFilter) ([]*domain.ServiceSession, int, error)
	GetByDateRange(storeID string, startDate, endDate time.Time) ([]*domain.ServiceSession, error)
	Update(session *domain.ServiceSession) error
	SetExceptionFlag(id string, flagged bool) error
}

type serviceSessionRepository struct {
	conn *postgres.Connection
}

func NewServiceSessionRepository(conn *postgres.Connection) ServiceSessionRepository {
	return &serviceSessionRepository{
		conn: conn,
	}
}

func (r *serviceSessionRepository) Create(session *domain.ServiceSession) error {
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	query, args, err := squirrel.
		Insert("service_sessions").
		Columns(
			"id",
			"store_id",
			"beautician_id",
			"service_date",
			"gross_revenue",
			"payment_method",
			"beautician_share",
			"subsidy",
			"net_revenue",
			"entry_channel",
			"exception_flag",
			"created_at",
			"updated_at",
		).
		Values(
			session.ID,
			session.StoreID,
			session.BeauticianID,
			session.ServiceDate.Format(time.DateOnly),
			session.GrossRevenue,
			session.PaymentMethod,
			session.BeauticianShare,
			session.Subsidy,
			session.NetRevenue,
			session.EntryChannel,
			session.ExceptionFlag,
			session.CreatedAt,
			session.UpdatedAt,
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

func (r *serviceSessionRepository) GetByID(id string) (*domain.ServiceSession, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ss.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	session, err := r.scanSessionRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear atendimento: %w", err)
	}

	return session, nil
}

func (r *serviceSessionRepository) List(filter domain.ServiceSessionFilter) ([]*domain.ServiceSession, int, error) {
	total, err := r.count(filter)
	if err != nil {
		return nil, 0, err
	}

	builder := r.selectBuilder().
		OrderBy("ss.id ASC").
		Limit(uint64(filter.Limit))

	builder = applySessionFilter(builder, filter)

	// Paginação por cursor: o cursor é o id do último registro da página anterior
	if filter.Cursor != "" {
		builder = builder.Where(squirrel.Gt{"ss.id": filter.Cursor})
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

	sessions := make([]*domain.ServiceSession, 0)
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear atendimento: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sessions, total, nil
}

func (r *serviceSessionRepository) GetByDateRange(storeID string, startDate, endDate time.Time) ([]*domain.ServiceSession, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"ss.store_id": storeID}).
		Where(squirrel.GtOrEq{"ss.service_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ss.service_date": endDate.Format(time.DateOnly)}).
		OrderBy("ss.service_date ASC").
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

	sessions := make([]*domain.ServiceSession, 0)
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atendimento: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sessions, nil
}

func (r *serviceSessionRepository) Update(session *domain.ServiceSession) error {
	session.UpdatedAt = time.Now()

	query, args, err := squirrel.
		Update("service_sessions").
		Set("service_date", session.ServiceDate.Format(time.DateOnly)).
		Set("gross_revenue", session.GrossRevenue).
		Set("payment_method", session.PaymentMethod).
		Set("beautician_share", session.BeauticianShare).
		Set("subsidy", session.Subsidy).
		Set("net_revenue", session.NetRevenue).
		Set("exception_flag", session.ExceptionFlag).
		Set("updated_at", session.UpdatedAt).
		Where(squirrel.Eq{"id": session.ID}).
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

func (r *serviceSessionRepository) SetExceptionFlag(id string, flagged bool) error {
	query, args, err := squirrel.
		Update("service_sessions").
		Set("exception_flag", flagged).
		Set("updated_at", time.Now()).
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

func (r *serviceSessionRepository) count(filter domain.ServiceSessionFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(serviceSessionsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applySessionFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar atendimentos: %w", err)
	}

	return total, nil
}

func applySessionFilter(builder squirrel.SelectBuilder, filter domain.ServiceSessionFilter) squirrel.SelectBuilder {
	if filter.StoreID != "" {
		builder = builder.Where(squirrel.Eq{"ss.store_id": filter.StoreID})
	}

	if filter.BeauticianID != "" {
		builder = builder.Where(squirrel.Eq{"ss.beautician_id": filter.BeauticianID})
	}

	if filter.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"ss.service_date": filter.DateFrom.Format(time.DateOnly)})
	}

	if filter.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"ss.service_date": filter.DateTo.Format(time.DateOnly)})
	}

	return builder
}

func (r *serviceSessionRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ss.id",
			"ss.store_id",
			"ss.beautician_id",
			"ss.service_date",
			"ss.gross_revenue",
			"ss.payment_method",
			"ss.beautician_share",
			"ss.subsidy",
			"ss.net_revenue",
			"ss.entry_channel",
			"ss.exception_flag",
			"ss.created_at",
			"ss.updated_at",
		).
		From(serviceSessionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *serviceSessionRepository) scanSession(rows *sql.Rows) (*domain.ServiceSession, error) {
	session := &domain.ServiceSession{}

	err := rows.Scan(
		&session.ID,
		&session.StoreID,
		&session.BeauticianID,
		&session.ServiceDate,
		&session.GrossRevenue,
		&session.PaymentMethod,
		&session.BeauticianShare,
		&session.Subsidy,
		&session.NetRevenue,
		&session.EntryChannel,
		&session.ExceptionFlag,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *serviceSessionRepository) scanSessionRow(row *sql.Row) (*domain.ServiceSession, error) {
	session := &domain.ServiceSession{}

	err := row.Scan(
		&session.ID,
		&session.StoreID,
		&session.BeauticianID,
		&session.ServiceDate,
		&session.GrossRevenue,
		&session.PaymentMethod,
		&session.BeauticianShare,
		&session.Subsidy,
		&session.NetRevenue,
		&session.EntryChannel,
		&session.ExceptionFlag,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}
