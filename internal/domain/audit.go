package domain

import "time"

// AuditAction identifica a operação registrada na trilha de auditoria
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditLog é um evento da trilha de auditoria. A escrita é de melhor esforço:
// falhas são registradas em log e nunca interrompem a operação auditada.
type AuditLog struct {
	ID        string      `json:"id"`
	TableName string      `json:"table_name"`
	RecordID  string      `json:"record_id"`
	Action    AuditAction `json:"action"`
	OldValues any         `json:"old_values,omitempty"`
	NewValues any         `json:"new_values,omitempty"`
	ChangedBy string      `json:"changed_by"`
	StoreID   string      `json:"store_id"`
	Timestamp time.Time   `json:"timestamp"`
}
