package revenue

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
	sessionRepo   *mocks.MockServiceSessionRepository
	exceptionRepo *mocks.MockExceptionRecordRepository
	auditRepo     *mocks.MockAuditLogRepository
}

func newTestService(ctrl *gomock.Controller) (RevenueService, serviceMocks) {
	m := serviceMocks{
		sessionRepo:   mocks.NewMockServiceSessionRepository(ctrl),
		exceptionRepo: mocks.NewMockExceptionRecordRepository(ctrl),
		auditRepo:     mocks.NewMockAuditLogRepository(ctrl),
	}

	cfg := &config.Config{
		RevenueShare: config.RevenueShare{
			BeauticianSharePercent: 60,
			DefaultSubsidy:         10.00,
		},
		Pagination: config.Pagination{
			DefaultLimit: 50,
			MaxLimit:     100,
		},
	}

	service := NewService(
		m.sessionRepo,
		detecting.NewEngine(m.exceptionRepo),
		NewShareCalculator(cfg),
		audit.NewRecorder(m.auditRepo),
		cfg,
	)

	return service, m
}

// pastWeekday devolve uma quarta-feira recente, evitando que as regras de
// fim de semana interfiram nos casos que não as exercitam
func pastWeekday() string {
	d := time.Now().AddDate(0, 0, -1)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, -1)
	}
	return d.Format(time.DateOnly)
}

func TestService_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sessionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(session *domain.ServiceSession) error {
			assert.NotEmpty(t, session.ID)
			assert.Equal(t, "store-1", session.StoreID)
			assert.Equal(t, 600.00, session.BeauticianShare)
			assert.Equal(t, 400.00, session.NetRevenue)
			assert.Equal(t, 10.00, session.Subsidy)
			assert.Equal(t, domain.EntryChannelManual, session.EntryChannel)
			assert.False(t, session.ExceptionFlag)
			return nil
		})

	m.auditRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.AuditLog) error {
			assert.Equal(t, domain.TableServiceSessions, entry.TableName)
			assert.Equal(t, domain.AuditCreate, entry.Action)
			return nil
		})

	session, err := service.CreateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   pastWeekday(),
		GrossRevenue:  1000.00,
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 1000.00, session.GrossRevenue)
	assert.Equal(t, domain.PaymentCash, session.PaymentMethod)
}

func TestService_CreateSession_RejectedByRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	// Valor anômalo reprova o lançamento: nada é escrito, nem o atendimento
	// nem registros de exceção
	session, err := service.CreateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   pastWeekday(),
		GrossRevenue:  9000.00,
		PaymentMethod: "transfer",
	})

	assert.Nil(t, session)

	var validationErr *ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Revenue amount 9000 seems unusually high"}, validationErr.Messages)
}

// driftingDetector aprova a pré-validação e reprova a passada vinculada ao
// registro, simulando regra que dispara entre a pré-validação e a escrita
type driftingDetector struct{}

func (d *driftingDetector) ValidateSession(input domain.CreateServiceSessionInput, recordID string) domain.ValidationResult {
	if recordID == "" {
		return domain.ValidationResult{IsValid: true}
	}
	return domain.ValidationResult{
		IsValid: false,
		Exceptions: []domain.ExceptionInfo{{
			Type:     domain.ExceptionDataAnomaly,
			Severity: domain.SeverityMedium,
			Message:  "Service date cannot be in the future",
			RuleName: "future_date_check",
		}},
	}
}

func (d *driftingDetector) ValidateCost(input domain.CreateCostEntryInput, recordID string) domain.ValidationResult {
	return domain.ValidationResult{IsValid: true}
}

func TestService_CreateSession_FlagsWhenLinkedDetectionTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := serviceMocks{
		sessionRepo: mocks.NewMockServiceSessionRepository(ctrl),
		auditRepo:   mocks.NewMockAuditLogRepository(ctrl),
	}

	cfg := &config.Config{
		RevenueShare: config.RevenueShare{BeauticianSharePercent: 60},
		Pagination:   config.Pagination{DefaultLimit: 50, MaxLimit: 100},
	}

	service := NewService(
		m.sessionRepo,
		&driftingDetector{},
		NewShareCalculator(cfg),
		audit.NewRecorder(m.auditRepo),
		cfg,
	)

	m.sessionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(session *domain.ServiceSession) error {
			assert.False(t, session.ExceptionFlag)
			return nil
		})
	m.sessionRepo.EXPECT().
		SetExceptionFlag(gomock.Any(), true).
		Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	session, err := service.CreateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   pastWeekday(),
		GrossRevenue:  1000.00,
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.True(t, session.ExceptionFlag)
}

func TestService_CreateSession_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	tests := []struct {
		name  string
		input domain.CreateServiceSessionInput
	}{
		{
			name: "Loja ausente",
			input: domain.CreateServiceSessionInput{
				BeauticianID:  "b-1",
				ServiceDate:   pastWeekday(),
				GrossRevenue:  100.00,
				PaymentMethod: "cash",
			},
		},
		{
			name: "Data malformada",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   "10/01/2025",
				GrossRevenue:  100.00,
				PaymentMethod: "cash",
			},
		},
		{
			name: "Receita zerada",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   pastWeekday(),
				GrossRevenue:  0,
				PaymentMethod: "cash",
			},
		},
		{
			name: "Forma de pagamento desconhecida",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   pastWeekday(),
				GrossRevenue:  100.00,
				PaymentMethod: "card",
			},
		},
		{
			name: "Mais de duas casas decimais",
			input: domain.CreateServiceSessionInput{
				StoreID:       "store-1",
				BeauticianID:  "b-1",
				ServiceDate:   pastWeekday(),
				GrossRevenue:  100.555,
				PaymentMethod: "cash",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma escrita acontece quando a entrada é rejeitada
			_, err := service.CreateSession(tt.input)

			var invalidErr *InvalidInputError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestService_GetSessionByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sessionRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	_, err := service.GetSessionByID("nao-existe")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	sessions := []*domain.ServiceSession{
		{ID: "s1"}, {ID: "s2"},
	}

	m.sessionRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter domain.ServiceSessionFilter) ([]*domain.ServiceSession, int, error) {
			// Sem limite informado, aplica o padrão configurado
			assert.Equal(t, 50, filter.Limit)
			return sessions, 7, nil
		})

	list, err := service.ListSessions(domain.ServiceSessionFilter{StoreID: "store-1"})
	require.NoError(t, err)

	assert.Len(t, list.Data, 2)
	assert.Equal(t, 7, list.Pagination.Total)
	assert.Equal(t, 50, list.Pagination.Limit)
	assert.False(t, list.Pagination.HasMore)
}

func TestService_ListSessions_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.sessionRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter domain.ServiceSessionFilter) ([]*domain.ServiceSession, int, error) {
			assert.Equal(t, 100, filter.Limit)
			return nil, 0, nil
		})

	_, err := service.ListSessions(domain.ServiceSessionFilter{Limit: 500})
	require.NoError(t, err)
}

func TestService_UpdateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	existing := &domain.ServiceSession{
		ID:              "s1",
		StoreID:         "store-1",
		BeauticianID:    "b-1",
		ServiceDate:     time.Now().AddDate(0, 0, -2),
		GrossRevenue:    500.00,
		PaymentMethod:   domain.PaymentCash,
		BeauticianShare: 300.00,
		NetRevenue:      200.00,
		ExceptionFlag:   true,
	}

	m.sessionRepo.EXPECT().GetByID("s1").Return(existing, nil)
	m.sessionRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(session *domain.ServiceSession) error {
			// Nova receita recalcula as parcelas derivadas e limpa a
			// sinalização depois de reaprovada nas regras
			assert.Equal(t, 800.00, session.GrossRevenue)
			assert.Equal(t, 480.00, session.BeauticianShare)
			assert.Equal(t, 320.00, session.NetRevenue)
			assert.False(t, session.ExceptionFlag)
			return nil
		})
	m.auditRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.AuditLog) error {
			assert.Equal(t, domain.AuditUpdate, entry.Action)
			assert.NotNil(t, entry.OldValues)
			return nil
		})

	newGross := 800.00
	session, err := service.UpdateSession("s1", domain.UpdateServiceSessionInput{
		GrossRevenue: &newGross,
	})

	require.NoError(t, err)
	assert.Equal(t, 480.00, session.BeauticianShare)
}

func TestService_UpdateSession_RejectedByRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	serviceDate, err := time.Parse(time.DateOnly, pastWeekday())
	require.NoError(t, err)

	existing := &domain.ServiceSession{
		ID:              "s1",
		StoreID:         "store-1",
		BeauticianID:    "b-1",
		ServiceDate:     serviceDate,
		GrossRevenue:    500.00,
		PaymentMethod:   domain.PaymentCash,
		BeauticianShare: 300.00,
		NetRevenue:      200.00,
	}

	m.sessionRepo.EXPECT().GetByID("s1").Return(existing, nil)

	// A nova receita reprova na revalidação: Update nunca é chamado
	newGross := 10000.00
	session, err := service.UpdateSession("s1", domain.UpdateServiceSessionInput{
		GrossRevenue: &newGross,
	})

	assert.Nil(t, session)

	var validationErr *ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Revenue amount 10000 seems unusually high"}, validationErr.Messages)
}

func TestService_UpdateSession_KeepsSharesWithoutRevenueChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	existing := &domain.ServiceSession{
		ID:              "s1",
		StoreID:         "store-1",
		BeauticianID:    "b-1",
		GrossRevenue:    500.00,
		PaymentMethod:   domain.PaymentCash,
		BeauticianShare: 300.00,
		NetRevenue:      200.00,
	}

	m.sessionRepo.EXPECT().GetByID("s1").Return(existing, nil)
	m.sessionRepo.EXPECT().Update(gomock.Any()).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	newMethod := "transfer"
	session, err := service.UpdateSession("s1", domain.UpdateServiceSessionInput{
		PaymentMethod: &newMethod,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentTransfer, session.PaymentMethod)
	assert.Equal(t, 300.00, session.BeauticianShare)
	assert.Equal(t, 200.00, session.NetRevenue)
}

func TestService_ValidateSession_DoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	// Nenhuma expectativa nos repositórios: a pré-validação não escreve nada
	result := service.ValidateSession(domain.CreateServiceSessionInput{
		StoreID:       "store-1",
		BeauticianID:  "b-1",
		ServiceDate:   pastWeekday(),
		GrossRevenue:  -5,
		PaymentMethod: "cash",
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"Revenue amount must be positive"}, result.Messages())
}
