// Package detecting implementa o motor de detecção de exceções: regras de
// validação nomeadas aplicadas a lançamentos de receita e despesa.
package detecting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/pkg/log"
	"github.com/salonops/salon-manager-api/pkg/utils"
)

// Limites das regras de anomalia, em unidades monetárias
const (
	unusualHighAmountThreshold   = 5000.0
	weekendHighActivityThreshold = 2000.0
	unusualHighCostThreshold     = 50000.0
)

// sessionRule é uma regra pura aplicada a um lançamento de receita.
// A regra nunca altera o dado e devolve todas as exceções que detectar.
type sessionRule struct {
	name  string
	check func(domain.CreateServiceSessionInput) []domain.ExceptionInfo
}

type costRule struct {
	name  string
	check func(domain.CreateCostEntryInput) []domain.ExceptionInfo
}

type ExceptionDetector interface {
	ValidateSession(input domain.CreateServiceSessionInput, recordID string) domain.ValidationResult
	ValidateCost(input domain.CreateCostEntryInput, recordID string) domain.ValidationResult
}

type Engine struct {
	exceptionRepo repository.ExceptionRecordRepository
	sessionRules  []sessionRule
	costRules     []costRule
}

func NewEngine(exceptionRepo repository.ExceptionRecordRepository) *Engine {
	return &Engine{
		exceptionRepo: exceptionRepo,
		sessionRules:  buildSessionRules(),
		costRules:     buildCostRules(),
	}
}

// ValidateSession aplica todas as regras de receita ao lançamento. Quando
// recordID é informado, as exceções detectadas são persistidas em lote.
func (e *Engine) ValidateSession(input domain.CreateServiceSessionInput, recordID string) domain.ValidationResult {
	exceptions := make([]domain.ExceptionInfo, 0)

	for _, rule := range e.sessionRules {
		exceptions = append(exceptions, runSessionRule(rule, input)...)
	}

	if recordID != "" && len(exceptions) > 0 {
		e.storeExceptions(domain.TableServiceSessions, recordID, input.StoreID, exceptions)
	}

	return domain.ValidationResult{
		IsValid:    len(exceptions) == 0,
		Exceptions: exceptions,
	}
}

// ValidateCost aplica todas as regras de despesa ao lançamento
func (e *Engine) ValidateCost(input domain.CreateCostEntryInput, recordID string) domain.ValidationResult {
	exceptions := make([]domain.ExceptionInfo, 0)

	for _, rule := range e.costRules {
		exceptions = append(exceptions, runCostRule(rule, input)...)
	}

	if recordID != "" && len(exceptions) > 0 {
		e.storeExceptions(domain.TableCostEntries, recordID, input.StoreID, exceptions)
	}

	return domain.ValidationResult{
		IsValid:    len(exceptions) == 0,
		Exceptions: exceptions,
	}
}

// runSessionRule isola a execução da regra: um pânico dentro de uma regra
// vira uma exceção CRITICAL e as demais regras continuam sendo avaliadas
func runSessionRule(rule sessionRule, input domain.CreateServiceSessionInput) (exceptions []domain.ExceptionInfo) {
	defer func() {
		if r := recover(); r != nil {
			log.L.WithField("rule", rule.name).Errorf("Erro ao executar regra de validação: %v", r)

			exceptions = []domain.ExceptionInfo{{
				Type:     domain.ExceptionValidationError,
				Severity: domain.SeverityCritical,
				Message:  fmt.Sprintf("Validation rule error: %v", r),
				RuleName: rule.name,
			}}
		}
	}()

	return rule.check(input)
}

func runCostRule(rule costRule, input domain.CreateCostEntryInput) (exceptions []domain.ExceptionInfo) {
	defer func() {
		if r := recover(); r != nil {
			log.L.WithField("rule", rule.name).Errorf("Erro ao executar regra de validação: %v", r)

			exceptions = []domain.ExceptionInfo{{
				Type:     domain.ExceptionValidationError,
				Severity: domain.SeverityCritical,
				Message:  fmt.Sprintf("Validation rule error: %v", r),
				RuleName: rule.name,
			}}
		}
	}()

	return rule.check(input)
}

// storeExceptions persiste as exceções em lote. Falha de persistência é
// apenas registrada em log: nunca desfaz a escrita que disparou a validação.
func (e *Engine) storeExceptions(tableName, recordID, storeID string, exceptions []domain.ExceptionInfo) {
	records := make([]*domain.ExceptionRecord, 0, len(exceptions))

	for _, ex := range exceptions {
		id, err := utils.GenerateID()
		if err != nil {
			log.L.WithError(err).Error("Erro ao gerar identificador de exceção")
			return
		}

		record := &domain.ExceptionRecord{
			ID:            id,
			TableName:     tableName,
			RecordID:      recordID,
			ExceptionType: ex.Type,
			Severity:      ex.Severity,
			Message:       ex.Message,
			RuleName:      ex.RuleName,
			StoreID:       storeID,
		}

		if ex.FieldName != "" {
			record.FieldName = &ex.FieldName
		}
		if ex.FieldValue != "" {
			record.FieldValue = &ex.FieldValue
		}

		records = append(records, record)
	}

	if err := e.exceptionRepo.CreateBatch(records); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"table_name": tableName,
			"record_id":  recordID,
		}).Error("Erro ao persistir exceções detectadas")
		return
	}

	log.L.WithFields(log.Fields{
		"table_name": tableName,
		"record_id":  recordID,
		"count":      len(records),
	}).Info("Exceções registradas para revisão")
}

func buildSessionRules() []sessionRule {
	return []sessionRule{
		{
			name: "positive_amount",
			check: func(input domain.CreateServiceSessionInput) []domain.ExceptionInfo {
				if input.GrossRevenue > 0 {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionValidationError,
					Severity:   domain.SeverityHigh,
					Message:    "Revenue amount must be positive",
					FieldName:  "gross_revenue",
					FieldValue: formatAmount(input.GrossRevenue),
					RuleName:   "positive_amount",
				}}
			},
		},
		{
			name: "future_date_check",
			check: func(input domain.CreateServiceSessionInput) []domain.ExceptionInfo {
				serviceDate, err := time.ParseInLocation(time.DateOnly, input.ServiceDate, time.Local)
				if err != nil {
					return nil
				}

				// O dia corrente inteiro ainda é válido; só amanhã em diante é futuro
				now := time.Now()
				endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.Local)

				if !serviceDate.After(endOfToday) {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionBusinessRuleViolation,
					Severity:   domain.SeverityMedium,
					Message:    "Service date cannot be in the future",
					FieldName:  "service_date",
					FieldValue: input.ServiceDate,
					RuleName:   "future_date_check",
				}}
			},
		},
		{
			name: "unusual_high_amount",
			check: func(input domain.CreateServiceSessionInput) []domain.ExceptionInfo {
				if input.GrossRevenue <= unusualHighAmountThreshold {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionDataAnomaly,
					Severity:   domain.SeverityMedium,
					Message:    fmt.Sprintf("Revenue amount %s seems unusually high", formatAmount(input.GrossRevenue)),
					FieldName:  "gross_revenue",
					FieldValue: formatAmount(input.GrossRevenue),
					RuleName:   "unusual_high_amount",
				}}
			},
		},
		{
			name: "weekend_high_activity",
			check: func(input domain.CreateServiceSessionInput) []domain.ExceptionInfo {
				serviceDate, err := time.ParseInLocation(time.DateOnly, input.ServiceDate, time.Local)
				if err != nil {
					return nil
				}

				weekday := serviceDate.Weekday()
				if weekday != time.Saturday && weekday != time.Sunday {
					return nil
				}
				if input.GrossRevenue <= weekendHighActivityThreshold {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionSuspiciousActivity,
					Severity:   domain.SeverityLow,
					Message:    fmt.Sprintf("High revenue %s on weekend", formatAmount(input.GrossRevenue)),
					FieldName:  "gross_revenue",
					FieldValue: formatAmount(input.GrossRevenue),
					RuleName:   "weekend_high_activity",
				}}
			},
		},
	}
}

func buildCostRules() []costRule {
	return []costRule{
		{
			name: "positive_cost_amount",
			check: func(input domain.CreateCostEntryInput) []domain.ExceptionInfo {
				if input.Amount > 0 {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionValidationError,
					Severity:   domain.SeverityHigh,
					Message:    "Cost amount must be positive",
					FieldName:  "amount",
					FieldValue: formatAmount(input.Amount),
					RuleName:   "positive_cost_amount",
				}}
			},
		},
		{
			name: "unusual_high_cost",
			check: func(input domain.CreateCostEntryInput) []domain.ExceptionInfo {
				if input.Amount <= unusualHighCostThreshold {
					return nil
				}
				return []domain.ExceptionInfo{{
					Type:       domain.ExceptionDataAnomaly,
					Severity:   domain.SeverityMedium,
					Message:    fmt.Sprintf("Cost amount %s seems unusually high", formatAmount(input.Amount)),
					FieldName:  "amount",
					FieldValue: formatAmount(input.Amount),
					RuleName:   "unusual_high_cost",
				}}
			},
		},
		{
			name: "required_fields_check",
			check: func(input domain.CreateCostEntryInput) []domain.ExceptionInfo {
				exceptions := make([]domain.ExceptionInfo, 0)

				// Uma exceção por campo ausente, não apenas o primeiro
				fields := []struct {
					name  string
					value string
					blank bool
				}{
					{"store_id", input.StoreID, strings.TrimSpace(input.StoreID) == ""},
					{"category", input.Category, strings.TrimSpace(input.Category) == ""},
					{"payer", input.Payer, strings.TrimSpace(input.Payer) == ""},
					{"amount", formatAmount(input.Amount), input.Amount == 0},
				}

				for _, field := range fields {
					if !field.blank {
						continue
					}
					exceptions = append(exceptions, domain.ExceptionInfo{
						Type:       domain.ExceptionValidationError,
						Severity:   domain.SeverityHigh,
						Message:    fmt.Sprintf("Required field '%s' is missing or empty", field.name),
						FieldName:  field.name,
						FieldValue: field.value,
						RuleName:   "required_fields_check",
					})
				}

				return exceptions
			},
		},
	}
}

// formatAmount formata valores monetários nas mensagens sem zeros à direita
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
