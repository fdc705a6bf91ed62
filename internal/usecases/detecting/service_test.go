package detecting

import (
	"testing"
	"time"

	"github.com/salonops/salon-manager-api/infrastructure/repository/mocks"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestExceptionService(ctrl *gomock.Controller) (ExceptionService, *mocks.MockExceptionRecordRepository) {
	mockRepo := mocks.NewMockExceptionRecordRepository(ctrl)

	cfg := &config.Config{
		Pagination: config.Pagination{
			DefaultLimit: 50,
			MaxLimit:     100,
		},
	}

	return NewExceptionService(mockRepo, cfg), mockRepo
}

func TestExceptionService_ListExceptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newTestExceptionService(ctrl)

	records := []*domain.ExceptionRecord{
		{ID: "e1", RuleName: "positive_amount"},
		{ID: "e2", RuleName: "unusual_high_amount"},
	}

	mockRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter domain.ExceptionFilter) ([]*domain.ExceptionRecord, int, error) {
			assert.Equal(t, "store-1", filter.StoreID)
			assert.Equal(t, 50, filter.Limit)
			return records, 12, nil
		})

	list, err := service.ListExceptions(domain.ExceptionFilter{StoreID: "store-1"})
	require.NoError(t, err)

	assert.Len(t, list.Data, 2)
	assert.Equal(t, 12, list.Pagination.Total)
	assert.False(t, list.Pagination.HasMore)
}

func TestExceptionService_ResolveException(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newTestExceptionService(ctrl)

	pending := &domain.ExceptionRecord{ID: "e1", Resolved: false}

	resolvedBy := "manager-1"
	resolvedAt := time.Now()
	resolved := &domain.ExceptionRecord{
		ID:         "e1",
		Resolved:   true,
		ResolvedBy: &resolvedBy,
		ResolvedAt: &resolvedAt,
	}

	first := mockRepo.EXPECT().GetByID("e1").Return(pending, nil)
	mockRepo.EXPECT().Resolve("e1", "manager-1").Return(nil)
	mockRepo.EXPECT().GetByID("e1").Return(resolved, nil).After(first)

	record, err := service.ResolveException("e1", "manager-1")
	require.NoError(t, err)

	assert.True(t, record.Resolved)
	require.NotNil(t, record.ResolvedBy)
	assert.Equal(t, "manager-1", *record.ResolvedBy)
	assert.NotNil(t, record.ResolvedAt)
}

func TestExceptionService_ResolveException_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newTestExceptionService(ctrl)

	mockRepo.EXPECT().GetByID("nao-existe").Return(nil, nil)

	_, err := service.ResolveException("nao-existe", "manager-1")
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}

func TestExceptionService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newTestExceptionService(ctrl)

	mockRepo.EXPECT().
		Stats("store-1").
		Return(&domain.ExceptionStats{
			Total:      10,
			Unresolved: 7,
			Resolved:   3,
			BySeverity: map[string]int{"HIGH": 4, "MEDIUM": 6},
			ByType:     map[string]int{"VALIDATION_ERROR": 4, "DATA_ANOMALY": 6},
		}, nil)

	stats, err := service.GetStats("store-1")
	require.NoError(t, err)

	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 7, stats.Unresolved)
	assert.Equal(t, 4, stats.BySeverity["HIGH"])
}
