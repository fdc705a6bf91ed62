package costing

import (
	"testing"
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/repository/mocks"
	"github.com/salonops/salon-manager-api/internal/audit"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	costRepo      *mocks.MockCostEntryRepository
	exceptionRepo *mocks.MockExceptionRecordRepository
	auditRepo     *mocks.MockAuditLogRepository
}

func newTestService(ctrl *gomock.Controller) (CostService, serviceMocks) {
	m := serviceMocks{
		costRepo:      mocks.NewMockCostEntryRepository(ctrl),
		exceptionRepo: mocks.NewMockExceptionRecordRepository(ctrl),
		auditRepo:     mocks.NewMockAuditLogRepository(ctrl),
	}

	cfg := &config.Config{
		Pagination: config.Pagination{
			DefaultLimit: 50,
			MaxLimit:     100,
		},
	}

	service := NewService(
		m.costRepo,
		detecting.NewEngine(m.exceptionRepo),
		audit.NewRecorder(m.auditRepo),
		cfg,
	)

	return service, m
}

func validInput() domain.CreateCostEntryInput {
	return domain.CreateCostEntryInput{
		StoreID:   "store-1",
		Category:  "rent",
		Payer:     "company",
		Amount:    1200.00,
		EntryDate: "2025-01-10",
		CreatedBy: "manager-1",
	}
}

func TestService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.costRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.CostEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "store-1", entry.StoreID)
			assert.Equal(t, "rent", entry.Category)
			assert.Equal(t, 1200.00, entry.Amount)
			return nil
		})

	m.auditRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.AuditLog) error {
			assert.Equal(t, domain.TableCostEntries, entry.TableName)
			assert.Equal(t, domain.AuditCreate, entry.Action)
			assert.Equal(t, "manager-1", entry.ChangedBy)
			return nil
		})

	entry, err := service.CreateEntry(validInput())
	require.NoError(t, err)
	assert.Equal(t, "company", entry.Payer)
}

func TestService_CreateEntry_RejectedByRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	// Valor anômalo reprova o lançamento antes de qualquer escrita
	input := validInput()
	input.Amount = 60000.00

	entry, err := service.CreateEntry(input)

	assert.Nil(t, entry)

	var validationErr *ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Cost amount 60000 seems unusually high"}, validationErr.Messages)
}

func TestService_CreateEntry_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	tests := []struct {
		name   string
		mutate func(input *domain.CreateCostEntryInput)
	}{
		{"Loja ausente", func(input *domain.CreateCostEntryInput) { input.StoreID = "" }},
		{"Categoria ausente", func(input *domain.CreateCostEntryInput) { input.Category = "  " }},
		{"Pagador ausente", func(input *domain.CreateCostEntryInput) { input.Payer = "" }},
		{"Autor ausente", func(input *domain.CreateCostEntryInput) { input.CreatedBy = "" }},
		{"Valor zerado", func(input *domain.CreateCostEntryInput) { input.Amount = 0 }},
		{"Valor negativo", func(input *domain.CreateCostEntryInput) { input.Amount = -10 }},
		{"Data malformada", func(input *domain.CreateCostEntryInput) { input.EntryDate = "10/01/2025" }},
		{"Mais de duas casas decimais", func(input *domain.CreateCostEntryInput) { input.Amount = 10.123 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateEntry(input)

			var invalidErr *InvalidInputError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	entries := []*domain.CostEntry{{ID: "c1"}, {ID: "c2"}}
	summary := &domain.CostSummary{
		TotalCosts:      3400.00,
		CostsByCategory: map[string]float64{"rent": 2400.00, "supplies": 1000.00},
		CostsByPayer:    map[string]float64{"company": 3400.00},
		Count:           4,
	}

	m.costRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter domain.CostFilter) ([]*domain.CostEntry, int, error) {
			assert.Equal(t, 50, filter.Limit)
			return entries, 4, nil
		})

	m.costRepo.EXPECT().
		Summarize(gomock.Any()).
		Return(summary, nil)

	list, err := service.ListEntries(domain.CostFilter{StoreID: "store-1"})
	require.NoError(t, err)

	assert.Len(t, list.Data, 2)
	assert.Equal(t, 4, list.Pagination.Total)
	require.NotNil(t, list.Summary)
	assert.Equal(t, 3400.00, list.Summary.TotalCosts)
	assert.Equal(t, 2400.00, list.Summary.CostsByCategory["rent"])
}

func TestService_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	existing := &domain.CostEntry{
		ID:        "c1",
		StoreID:   "store-1",
		Category:  "rent",
		Payer:     "company",
		Amount:    1200.00,
		EntryDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		CreatedBy: "manager-1",
	}

	m.costRepo.EXPECT().GetByID("c1").Return(existing, nil)
	m.costRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(entry *domain.CostEntry) error {
			assert.Equal(t, 1500.00, entry.Amount)
			assert.Equal(t, "rent", entry.Category)
			return nil
		})
	m.auditRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.AuditLog) error {
			assert.Equal(t, domain.AuditUpdate, entry.Action)
			assert.Equal(t, "manager-2", entry.ChangedBy)
			return nil
		})

	newAmount := 1500.00
	updatedBy := "manager-2"
	entry, err := service.UpdateEntry("c1", domain.UpdateCostEntryInput{
		Amount:    &newAmount,
		UpdatedBy: &updatedBy,
	})

	require.NoError(t, err)
	assert.Equal(t, 1500.00, entry.Amount)
}

func TestService_UpdateEntry_RejectedByRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	existing := &domain.CostEntry{
		ID:        "c1",
		StoreID:   "store-1",
		Category:  "rent",
		Payer:     "company",
		Amount:    1200.00,
		EntryDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		CreatedBy: "manager-1",
	}

	m.costRepo.EXPECT().GetByID("c1").Return(existing, nil)

	// O novo valor reprova na revalidação: Update nunca é chamado
	newAmount := 60000.00
	entry, err := service.UpdateEntry("c1", domain.UpdateCostEntryInput{
		Amount: &newAmount,
	})

	assert.Nil(t, entry)

	var validationErr *ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Cost amount 60000 seems unusually high"}, validationErr.Messages)
}

func TestService_UpdateEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.costRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	_, err := service.UpdateEntry("nao-existe", domain.UpdateCostEntryInput{})
	assert.ErrorIs(t, err, ErrCostEntryNotFound)
}

func TestService_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	existing := &domain.CostEntry{
		ID:       "c1",
		StoreID:  "store-1",
		Category: "rent",
	}

	m.costRepo.EXPECT().GetByID("c1").Return(existing, nil)
	m.costRepo.EXPECT().SoftDelete("c1", "manager-1").Return(nil)
	m.auditRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.AuditLog) error {
			assert.Equal(t, domain.AuditDelete, entry.Action)
			assert.Equal(t, "manager-1", entry.ChangedBy)
			return nil
		})

	err := service.DeleteEntry("c1", "manager-1")
	require.NoError(t, err)
}

func TestService_DeleteEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.costRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	err := service.DeleteEntry("nao-existe", "manager-1")
	assert.ErrorIs(t, err, ErrCostEntryNotFound)
}

func TestService_ValidateEntry_DoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	result := service.ValidateEntry(domain.CreateCostEntryInput{
		StoreID:   "store-1",
		Category:  "equipment",
		Payer:     "company",
		Amount:    60000.00,
		EntryDate: "2025-01-10",
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Cost amount 60000 seems unusually high"}, result.Messages())
}
