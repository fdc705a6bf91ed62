package domain

import "time"

// ExceptionType classifica a natureza da anomalia detectada
type ExceptionType string

const (
	ExceptionValidationError       ExceptionType = "VALIDATION_ERROR"
	ExceptionBusinessRuleViolation ExceptionType = "BUSINESS_RULE_VIOLATION"
	ExceptionDataAnomaly           ExceptionType = "DATA_ANOMALY"
	ExceptionSuspiciousActivity    ExceptionType = "SUSPICIOUS_ACTIVITY"
)

// ExceptionSeverity gradua o impacto da anomalia
type ExceptionSeverity string

const (
	SeverityLow      ExceptionSeverity = "LOW"
	SeverityMedium   ExceptionSeverity = "MEDIUM"
	SeverityHigh     ExceptionSeverity = "HIGH"
	SeverityCritical ExceptionSeverity = "CRITICAL"
)

// Nomes das tabelas de origem referenciadas pelos registros de exceção
const (
	TableServiceSessions = "service_sessions"
	TableCostEntries     = "cost_entries"
)

// ExceptionInfo é o resultado de uma regra de validação, ainda não persistido
type ExceptionInfo struct {
	Type       ExceptionType     `json:"type"`
	Severity   ExceptionSeverity `json:"severity"`
	Message    string            `json:"message"`
	FieldName  string            `json:"field_name,omitempty"`
	FieldValue string            `json:"field_value,omitempty"`
	RuleName   string            `json:"rule_name"`
}

// ValidationResult agrega o resultado de todas as regras aplicadas a um registro.
// IsValid é verdadeiro somente quando nenhuma regra produziu exceção.
type ValidationResult struct {
	IsValid    bool            `json:"isValid"`
	Exceptions []ExceptionInfo `json:"exceptions"`
}

// Messages devolve apenas as mensagens das exceções, na ordem de avaliação
func (r ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r.Exceptions))
	for _, ex := range r.Exceptions {
		msgs = append(msgs, ex.Message)
	}
	return msgs
}

// ExceptionRecord é uma anomalia persistida, vinculada ao registro de origem
// por referência fraca (tabela + id). Nunca é removida; apenas resolvida.
type ExceptionRecord struct {
	ID            string            `json:"id"`
	TableName     string            `json:"table_name"`
	RecordID      string            `json:"record_id"`
	ExceptionType ExceptionType     `json:"exception_type"`
	Severity      ExceptionSeverity `json:"severity"`
	Message       string            `json:"message"`
	FieldName     *string           `json:"field_name,omitempty"`
	FieldValue    *string           `json:"field_value,omitempty"`
	RuleName      string            `json:"rule_name"`
	StoreID       string            `json:"store_id"`
	Resolved      bool              `json:"resolved"`
	ResolvedBy    *string           `json:"resolved_by,omitempty"`
	ResolvedAt    *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ExceptionFilter define os filtros de listagem de exceções
type ExceptionFilter struct {
	StoreID   string
	TableName string
	Severity  string
	Resolved  *bool
	Limit     int
	Cursor    string
}

// ExceptionList é a resposta paginada da listagem de exceções
type ExceptionList struct {
	Data       []*ExceptionRecord `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// ExceptionStats resume as exceções de uma loja para o painel de revisão
type ExceptionStats struct {
	Total      int            `json:"total"`
	Unresolved int            `json:"unresolved"`
	Resolved   int            `json:"resolved"`
	BySeverity map[string]int `json:"bySeverity"`
	ByType     map[string]int `json:"byType"`
}
