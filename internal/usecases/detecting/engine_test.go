package detecting

import (
	"testing"
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/repository/mocks"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// lastSaturday devolve o sábado mais recente já passado (ou hoje, se for sábado)
func lastSaturday() string {
	d := time.Now()
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, -1)
	}
	return d.Format(time.DateOnly)
}

// lastWednesday garante um dia útil no passado, fora do fim de semana
func lastWednesday() string {
	d := time.Now().AddDate(0, 0, -1)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, -1)
	}
	return d.Format(time.DateOnly)
}

func TestEngine_ValidateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(time.DateOnly)

	tests := []struct {
		name     string
		input    domain.CreateServiceSessionInput
		validate func(t *testing.T, result domain.ValidationResult)
	}{
		{
			name: "Lançamento sem anomalias é válido",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastWednesday(),
				GrossRevenue:  150.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.True(t, result.IsValid)
				assert.Empty(t, result.Exceptions)
			},
		},
		{
			name: "Receita negativa dispara positive_amount",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastWednesday(),
				GrossRevenue:  -50.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 1)
				assert.Equal(t, "positive_amount", result.Exceptions[0].RuleName)
				assert.Equal(t, domain.SeverityHigh, result.Exceptions[0].Severity)
				assert.Equal(t, "Revenue amount must be positive", result.Exceptions[0].Message)
				assert.Equal(t, "-50", result.Exceptions[0].FieldValue)
			},
		},
		{
			name: "Data futura dispara future_date_check",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   tomorrow,
				GrossRevenue:  150.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 1)
				assert.Equal(t, "future_date_check", result.Exceptions[0].RuleName)
				assert.Equal(t, domain.SeverityMedium, result.Exceptions[0].Severity)
				assert.Equal(t, "Service date cannot be in the future", result.Exceptions[0].Message)
			},
		},
		{
			name: "Data de hoje não é futura",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   time.Now().Format(time.DateOnly),
				GrossRevenue:  150.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				for _, ex := range result.Exceptions {
					assert.NotEqual(t, "future_date_check", ex.RuleName)
				}
			},
		},
		{
			name: "Valor acima do limite dispara unusual_high_amount",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastWednesday(),
				GrossRevenue:  10000.00,
				PaymentMethod: "transfer",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 1)
				assert.Equal(t, "unusual_high_amount", result.Exceptions[0].RuleName)
				assert.Equal(t, "Revenue amount 10000 seems unusually high", result.Exceptions[0].Message)
			},
		},
		{
			name: "Valor no limite exato não dispara unusual_high_amount",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastWednesday(),
				GrossRevenue:  5000.00,
				PaymentMethod: "transfer",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.True(t, result.IsValid)
			},
		},
		{
			name: "Receita alta no fim de semana dispara weekend_high_activity",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastSaturday(),
				GrossRevenue:  3000.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 1)
				assert.Equal(t, "weekend_high_activity", result.Exceptions[0].RuleName)
				assert.Equal(t, domain.SeverityLow, result.Exceptions[0].Severity)
				assert.Equal(t, "High revenue 3000 on weekend", result.Exceptions[0].Message)
			},
		},
		{
			name: "Sábado com valor anômalo acumula as duas regras de valor",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   lastSaturday(),
				GrossRevenue:  7500.00,
				PaymentMethod: "cash",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 2)

				rules := []string{result.Exceptions[0].RuleName, result.Exceptions[1].RuleName}
				assert.Contains(t, rules, "unusual_high_amount")
				assert.Contains(t, rules, "weekend_high_activity")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Sem recordID nada é persistido
			result := engine.ValidateSession(tt.input, "")
			tt.validate(t, result)
		})
	}
}

func TestEngine_ValidateSession_PersistsExceptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	mockExceptionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(records []*domain.ExceptionRecord) error {
			assert.Len(t, records, 1)
			assert.Equal(t, domain.TableServiceSessions, records[0].TableName)
			assert.Equal(t, "sess-123", records[0].RecordID)
			assert.Equal(t, "store-1", records[0].StoreID)
			assert.Equal(t, "positive_amount", records[0].RuleName)
			assert.NotEmpty(t, records[0].ID)
			return nil
		})

	result := engine.ValidateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   lastWednesday(),
		GrossRevenue:  0,
		PaymentMethod: "cash",
	}, "sess-123")

	assert.False(t, result.IsValid)
}

func TestEngine_ValidateSession_PersistFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	mockExceptionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		Return(assert.AnError)

	// A falha de persistência é apenas logada; o resultado da validação
	// continua sendo devolvido normalmente
	result := engine.ValidateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   lastWednesday(),
		GrossRevenue:  -10,
		PaymentMethod: "cash",
	}, "sess-456")

	assert.False(t, result.IsValid)
	assert.Len(t, result.Exceptions, 1)
}

func TestEngine_ValidateSession_RulePanicBecomesCriticalException(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	// Uma regra que estoura não derruba a avaliação: vira exceção CRITICAL
	// e as demais regras continuam rodando
	engine.sessionRules = append([]sessionRule{{
		name: "broken_rule",
		check: func(input domain.CreateServiceSessionInput) []domain.ExceptionInfo {
			panic("índice fora do intervalo")
		},
	}}, engine.sessionRules...)

	result := engine.ValidateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   lastWednesday(),
		GrossRevenue:  -50.00,
		PaymentMethod: "cash",
	}, "")

	assert.False(t, result.IsValid)
	assert.Len(t, result.Exceptions, 2)

	assert.Equal(t, "broken_rule", result.Exceptions[0].RuleName)
	assert.Equal(t, domain.SeverityCritical, result.Exceptions[0].Severity)
	assert.Equal(t, domain.ExceptionValidationError, result.Exceptions[0].Type)
	assert.Equal(t, "Validation rule error: índice fora do intervalo", result.Exceptions[0].Message)

	assert.Equal(t, "positive_amount", result.Exceptions[1].RuleName)
}

func TestEngine_ValidateCost_RulePanicBecomesCriticalException(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	engine.costRules = append([]costRule{{
		name: "broken_cost_rule",
		check: func(input domain.CreateCostEntryInput) []domain.ExceptionInfo {
			panic("conversão inválida")
		},
	}}, engine.costRules...)

	result := engine.ValidateCost(domain.CreateCostEntryInput{
		StoreID:   "store-1",
		Category:  "rent",
		Payer:     "company",
		Amount:    1200.00,
		EntryDate: "2025-01-10",
	}, "")

	assert.False(t, result.IsValid)
	assert.Len(t, result.Exceptions, 1)
	assert.Equal(t, "broken_cost_rule", result.Exceptions[0].RuleName)
	assert.Equal(t, domain.SeverityCritical, result.Exceptions[0].Severity)
	assert.Equal(t, "Validation rule error: conversão inválida", result.Exceptions[0].Message)
}

func TestEngine_ValidateCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExceptionRepo := mocks.NewMockExceptionRecordRepository(ctrl)
	engine := NewEngine(mockExceptionRepo)

	tests := []struct {
		name     string
		input    domain.CreateCostEntryInput
		validate func(t *testing.T, result domain.ValidationResult)
	}{
		{
			name: "Despesa completa é válida",
			input: domain.CreateCostEntryInput{
				StoreID:   "store-1",
				Category:  "rent",
				Payer:     "company",
				Amount:    1200.00,
				EntryDate: "2025-01-10",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.True(t, result.IsValid)
				assert.Empty(t, result.Exceptions)
			},
		},
		{
			name: "Custo acima do limite dispara unusual_high_cost",
			input: domain.CreateCostEntryInput{
				StoreID:   "store-1",
				Category:  "equipment",
				Payer:     "company",
				Amount:    60000.00,
				EntryDate: "2025-01-10",
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 1)
				assert.Equal(t, "unusual_high_cost", result.Exceptions[0].RuleName)
				assert.Equal(t, "Cost amount 60000 seems unusually high", result.Exceptions[0].Message)
			},
		},
		{
			name: "Cada campo obrigatório ausente gera uma exceção própria",
			input: domain.CreateCostEntryInput{
				StoreID:  "",
				Category: "  ",
				Payer:    "company",
				Amount:   500.00,
			},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				assert.Len(t, result.Exceptions, 2)
				assert.Equal(t, "Required field 'store_id' is missing or empty", result.Exceptions[0].Message)
				assert.Equal(t, "Required field 'category' is missing or empty", result.Exceptions[1].Message)
				for _, ex := range result.Exceptions {
					assert.Equal(t, domain.SeverityHigh, ex.Severity)
					assert.Equal(t, "required_fields_check", ex.RuleName)
				}
			},
		},
		{
			name:  "Despesa vazia acumula valor não positivo e campos ausentes",
			input: domain.CreateCostEntryInput{},
			validate: func(t *testing.T, result domain.ValidationResult) {
				assert.False(t, result.IsValid)
				// positive_cost_amount mais os quatro campos obrigatórios
				assert.Len(t, result.Exceptions, 5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ValidateCost(tt.input, "")
			tt.validate(t, result)
		})
	}
}
