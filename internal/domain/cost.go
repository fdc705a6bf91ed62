package domain

import "time"

// CostEntry representa uma despesa lançada para uma loja.
// A exclusão é lógica: deleted_at preenchido marca o registro como removido
// sem alterar a categoria original.
type CostEntry struct {
	ID               string     `json:"id"`
	StoreID          string     `json:"store_id"`
	Category         string     `json:"category"`
	Payer            string     `json:"payer"`
	Amount           float64    `json:"amount"`
	EntryDate        time.Time  `json:"entry_date"`
	AllocationRuleID *string    `json:"allocation_rule_id,omitempty"`
	Description      *string    `json:"description,omitempty"`
	CreatedBy        string     `json:"created_by"`
	UpdatedBy        *string    `json:"updated_by,omitempty"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateCostEntryInput contém os dados de entrada para criação de uma despesa
type CreateCostEntryInput struct {
	StoreID          string  `json:"store_id"`
	Category         string  `json:"category"`
	Payer            string  `json:"payer"`
	Amount           float64 `json:"amount"`
	EntryDate        string  `json:"entry_date"`
	AllocationRuleID *string `json:"allocation_rule_id,omitempty"`
	Description      *string `json:"description,omitempty"`
	CreatedBy        string  `json:"created_by"`
}

// UpdateCostEntryInput contém os campos editáveis de uma despesa (patch parcial)
type UpdateCostEntryInput struct {
	Category         *string  `json:"category,omitempty"`
	Payer            *string  `json:"payer,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	EntryDate        *string  `json:"entry_date,omitempty"`
	AllocationRuleID *string  `json:"allocation_rule_id,omitempty"`
	Description      *string  `json:"description,omitempty"`
	UpdatedBy        *string  `json:"updated_by,omitempty"`
}

// CostFilter define os filtros de listagem de despesas
type CostFilter struct {
	StoreID          string
	Category         string
	Payer            string
	AllocationRuleID string
	DateFrom         *time.Time
	DateTo           *time.Time
	Limit            int
	Cursor           string
}

// CostSummary agrega as despesas do conjunto filtrado
type CostSummary struct {
	TotalCosts      float64            `json:"totalCosts"`
	CostsByCategory map[string]float64 `json:"costsByCategory"`
	CostsByPayer    map[string]float64 `json:"costsByPayer"`
	Count           int                `json:"count"`
}

// CostEntryList é a resposta paginada da listagem de despesas, com resumo do conjunto filtrado
type CostEntryList struct {
	Data       []*CostEntry `json:"data"`
	Pagination Pagination   `json:"pagination"`
	Summary    *CostSummary `json:"summary"`
}
