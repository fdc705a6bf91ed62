package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/salonops/salon-manager-api/infrastructure/database/postgres"
	"github.com/salonops/salon-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AuditLogRepository interface {
	Create(entry *domain.AuditLog) error
}

type auditLogRepository struct {
	conn *postgres.Connection
}

func NewAuditLogRepository(conn *postgres.Connection) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

func (r *auditLogRepository) Create(entry *domain.AuditLog) error {
	var oldValuesJSON, newValuesJSON []byte
	var err error

	if entry.OldValues != nil {
		oldValuesJSON, err = json.Marshal(entry.OldValues)
		if err != nil {
			return fmt.Errorf("erro ao serializar old_values para JSON: %w", err)
		}
	}

	if entry.NewValues != nil {
		newValuesJSON, err = json.Marshal(entry.NewValues)
		if err != nil {
			return fmt.Errorf("erro ao serializar new_values para JSON: %w", err)
		}
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query, args, err := squirrel.
		Insert("audit_logs").
		Columns(
			"id",
			"table_name",
			"record_id",
			"action",
			"old_values",
			"new_values",
			"changed_by",
			"store_id",
			"created_at",
		).
		Values(
			entry.ID,
			entry.TableName,
			entry.RecordID,
			entry.Action,
			oldValuesJSON,
			newValuesJSON,
			entry.ChangedBy,
			entry.StoreID,
			entry.Timestamp,
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
