package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderCostFilter(t *testing.T, filter domain.CostFilter) (string, []any) {
	builder := squirrel.
		Select("ce.id").
		From(costEntriesTable)

	query, args, err := applyCostFilter(builder, filter).ToSql()
	require.NoError(t, err)

	return query, args
}

func TestApplyCostFilter_CategoryAndPayerMatchBySubstring(t *testing.T) {
	query, args := renderCostFilter(t, domain.CostFilter{
		Category: "alu",
		Payer:    "Empresa",
	})

	assert.Contains(t, query, "ce.category ILIKE ?")
	assert.Contains(t, query, "ce.payer ILIKE ?")
	assert.Contains(t, args, "%alu%")
	assert.Contains(t, args, "%Empresa%")
}

func TestApplyCostFilter_ExactAndRangeFilters(t *testing.T) {
	dateFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	dateTo := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.Local)

	query, args := renderCostFilter(t, domain.CostFilter{
		StoreID:          "store-1",
		AllocationRuleID: "rule-1",
		DateFrom:         &dateFrom,
		DateTo:           &dateTo,
	})

	assert.Contains(t, query, "ce.deleted_at IS NULL")
	assert.Contains(t, query, "ce.store_id = ?")
	assert.Contains(t, query, "ce.allocation_rule_id = ?")
	assert.Contains(t, query, "ce.entry_date >= ?")
	assert.Contains(t, query, "ce.entry_date <= ?")
	assert.Contains(t, args, "store-1")
	assert.Contains(t, args, "2025-01-01")
	assert.Contains(t, args, "2025-01-31")
}
