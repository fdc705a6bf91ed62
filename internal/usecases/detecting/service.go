package detecting

import (
	"github.com/pkg/errors"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/pkg/log"
)

// ErrExceptionNotFound indica que a exceção referenciada não existe
var ErrExceptionNotFound = errors.New("exceção não encontrada")

type ExceptionService interface {
	ListExceptions(filter domain.ExceptionFilter) (*domain.ExceptionList, error)
	ResolveException(id string, resolvedBy string) (*domain.ExceptionRecord, error)
	GetStats(storeID string) (*domain.ExceptionStats, error)
}

type exceptionService struct {
	exceptionRepo repository.ExceptionRecordRepository
	cfg           *config.Config
}

func NewExceptionService(exceptionRepo repository.ExceptionRecordRepository, cfg *config.Config) ExceptionService {
	return &exceptionService{
		exceptionRepo: exceptionRepo,
		cfg:           cfg,
	}
}

func (s *exceptionService) ListExceptions(filter domain.ExceptionFilter) (*domain.ExceptionList, error) {
	filter.Limit = s.cfg.Pagination.Clamp(filter.Limit)

	records, total, err := s.exceptionRepo.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar exceções")
	}

	lastID := ""
	if len(records) > 0 {
		lastID = records[len(records)-1].ID
	}

	return &domain.ExceptionList{
		Data: records,
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   filter.Limit,
			Cursor:  domain.NextCursor(lastID, len(records), filter.Limit),
			HasMore: len(records) == filter.Limit,
		},
	}, nil
}

func (s *exceptionService) ResolveException(id string, resolvedBy string) (*domain.ExceptionRecord, error) {
	record, err := s.exceptionRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar exceção")
	}
	if record == nil {
		return nil, ErrExceptionNotFound
	}

	if err := s.exceptionRepo.Resolve(id, resolvedBy); err != nil {
		return nil, errors.Wrap(err, "erro ao resolver exceção")
	}

	log.L.WithFields(log.Fields{
		"exception_id": id,
		"resolved_by":  resolvedBy,
	}).Info("Exceção marcada como resolvida")

	resolved, err := s.exceptionRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar exceção")
	}

	return resolved, nil
}

func (s *exceptionService) GetStats(storeID string) (*domain.ExceptionStats, error) {
	stats, err := s.exceptionRepo.Stats(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular estatísticas de exceções")
	}

	return stats, nil
}
