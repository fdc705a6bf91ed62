// Package costing implementa os lançamentos de despesa das lojas, com
// exclusão lógica e resumo por categoria e pagador.
package costing

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/audit"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/salonops/salon-manager-api/pkg/log"
	"github.com/salonops/salon-manager-api/pkg/utils"
)

// ErrCostEntryNotFound indica que a despesa referenciada não existe ou já foi removida
var ErrCostEntryNotFound = errors.New("despesa não encontrada")

// ValidationFailedError sinaliza lançamento reprovado nas regras de detecção.
// O registro não é persistido; a camada HTTP responde 400 com as mensagens.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return "registro reprovado nas regras de validação: " + strings.Join(e.Messages, ", ")
}

// InvalidInputError sinaliza entrada estruturalmente inválida, mapeada para
// resposta 400 pela camada HTTP
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

type CostService interface {
	CreateEntry(input domain.CreateCostEntryInput) (*domain.CostEntry, error)
	GetEntryByID(id string) (*domain.CostEntry, error)
	ListEntries(filter domain.CostFilter) (*domain.CostEntryList, error)
	UpdateEntry(id string, input domain.UpdateCostEntryInput) (*domain.CostEntry, error)
	DeleteEntry(id string, deletedBy string) error
	ValidateEntry(input domain.CreateCostEntryInput) domain.ValidationResult
}

type Service struct {
	costRepo repository.CostEntryRepository
	detector detecting.ExceptionDetector
	auditor  audit.Recorder
	cfg      *config.Config
}

func NewService(
	costRepo repository.CostEntryRepository,
	detector detecting.ExceptionDetector,
	auditor audit.Recorder,
	cfg *config.Config,
) CostService {
	return &Service{
		costRepo: costRepo,
		detector: detector,
		auditor:  auditor,
		cfg:      cfg,
	}
}

// CreateEntry cria uma despesa. Lançamento reprovado nas regras de detecção é
// rejeitado antes de qualquer escrita; a detecção roda de novo após a criação,
// já vinculada ao registro.
func (s *Service) CreateEntry(input domain.CreateCostEntryInput) (*domain.CostEntry, error) {
	entryDate, err := validateEntryInput(input)
	if err != nil {
		return nil, err
	}

	// Pré-validação sem vínculo de registro: nada é persistido quando o
	// lançamento é reprovado
	if result := s.detector.ValidateCost(input, ""); !result.IsValid {
		return nil, &ValidationFailedError{Messages: result.Messages()}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da despesa")
	}

	entry := &domain.CostEntry{
		ID:               id,
		StoreID:          input.StoreID,
		Category:         input.Category,
		Payer:            input.Payer,
		Amount:           input.Amount,
		EntryDate:        entryDate,
		AllocationRuleID: input.AllocationRuleID,
		Description:      input.Description,
		CreatedBy:        input.CreatedBy,
	}

	if err := s.costRepo.Create(entry); err != nil {
		return nil, errors.Wrap(err, "erro ao criar despesa")
	}

	// Segunda passada vinculada ao registro criado: se alguma regra disparar
	// entre a pré-validação e a escrita, as exceções ficam registradas
	s.detector.ValidateCost(input, id)

	log.L.WithFields(log.Fields{
		"cost_entry_id": entry.ID,
		"store_id":      entry.StoreID,
	}).Info("Despesa criada")

	s.auditor.Record(domain.TableCostEntries, entry.ID, domain.AuditCreate, nil, entry, entry.CreatedBy, entry.StoreID)

	return entry, nil
}

func (s *Service) GetEntryByID(id string) (*domain.CostEntry, error) {
	entry, err := s.costRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar despesa")
	}
	if entry == nil {
		return nil, ErrCostEntryNotFound
	}

	return entry, nil
}

// ListEntries devolve a página pedida e o resumo do conjunto filtrado inteiro
func (s *Service) ListEntries(filter domain.CostFilter) (*domain.CostEntryList, error) {
	filter.Limit = s.cfg.Pagination.Clamp(filter.Limit)

	entries, total, err := s.costRepo.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar despesas")
	}

	summary, err := s.costRepo.Summarize(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resumir despesas")
	}

	lastID := ""
	if len(entries) > 0 {
		lastID = entries[len(entries)-1].ID
	}

	return &domain.CostEntryList{
		Data: entries,
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   filter.Limit,
			Cursor:  domain.NextCursor(lastID, len(entries), filter.Limit),
			HasMore: len(entries) == filter.Limit,
		},
		Summary: summary,
	}, nil
}

func (s *Service) UpdateEntry(id string, input domain.UpdateCostEntryInput) (*domain.CostEntry, error) {
	entry, err := s.costRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar despesa")
	}
	if entry == nil {
		return nil, ErrCostEntryNotFound
	}

	previous := *entry

	if input.Category != nil {
		if err := domain.ValidateShortText("category", *input.Category); err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}
		entry.Category = *input.Category
	}

	if input.Payer != nil {
		if err := domain.ValidateShortText("payer", *input.Payer); err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}
		entry.Payer = *input.Payer
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, &InvalidInputError{Message: "amount deve ser positivo"}
		}
		if err := domain.ValidateMonetaryAmount("amount", *input.Amount); err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}
		entry.Amount = *input.Amount
	}

	if input.EntryDate != nil {
		entryDate, err := domain.ValidateDate("entry_date", *input.EntryDate)
		if err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}
		entry.EntryDate = entryDate
	}

	if input.AllocationRuleID != nil {
		entry.AllocationRuleID = input.AllocationRuleID
	}

	if input.Description != nil {
		entry.Description = input.Description
	}

	if input.UpdatedBy != nil {
		entry.UpdatedBy = input.UpdatedBy
	}

	// Quando o valor muda, o registro mesclado passa de novo pelas regras de
	// detecção; reprovado, a edição é rejeitada sem escrita
	if input.Amount != nil {
		merged := domain.CreateCostEntryInput{
			StoreID:          entry.StoreID,
			Category:         entry.Category,
			Payer:            entry.Payer,
			Amount:           entry.Amount,
			EntryDate:        entry.EntryDate.Format(time.DateOnly),
			AllocationRuleID: entry.AllocationRuleID,
			Description:      entry.Description,
			CreatedBy:        entry.CreatedBy,
		}
		if result := s.detector.ValidateCost(merged, ""); !result.IsValid {
			return nil, &ValidationFailedError{Messages: result.Messages()}
		}
	}

	if err := s.costRepo.Update(entry); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar despesa")
	}

	log.L.WithField("cost_entry_id", entry.ID).Info("Despesa atualizada")

	changedBy := entry.CreatedBy
	if entry.UpdatedBy != nil {
		changedBy = *entry.UpdatedBy
	}
	s.auditor.Record(domain.TableCostEntries, entry.ID, domain.AuditUpdate, &previous, entry, changedBy, entry.StoreID)

	return entry, nil
}

// DeleteEntry aplica exclusão lógica: preenche deleted_at e preserva todos os
// campos originais, inclusive a categoria
func (s *Service) DeleteEntry(id string, deletedBy string) error {
	entry, err := s.costRepo.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar despesa")
	}
	if entry == nil {
		return ErrCostEntryNotFound
	}

	if err := s.costRepo.SoftDelete(id, deletedBy); err != nil {
		return errors.Wrap(err, "erro ao remover despesa")
	}

	log.L.WithFields(log.Fields{
		"cost_entry_id": id,
		"deleted_by":    deletedBy,
	}).Info("Despesa removida logicamente")

	s.auditor.Record(domain.TableCostEntries, id, domain.AuditDelete, entry, nil, deletedBy, entry.StoreID)

	return nil
}

// ValidateEntry roda as regras de detecção sem persistir nada
func (s *Service) ValidateEntry(input domain.CreateCostEntryInput) domain.ValidationResult {
	return s.detector.ValidateCost(input, "")
}

func validateEntryInput(input domain.CreateCostEntryInput) (time.Time, error) {
	if err := domain.ValidateShortText("store_id", input.StoreID); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}
	if err := domain.ValidateShortText("category", input.Category); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}
	if err := domain.ValidateShortText("payer", input.Payer); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}
	if err := domain.ValidateShortText("created_by", input.CreatedBy); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	entryDate, err := domain.ValidateDate("entry_date", input.EntryDate)
	if err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	if input.Amount <= 0 {
		return time.Time{}, &InvalidInputError{Message: "amount deve ser positivo"}
	}
	if err := domain.ValidateMonetaryAmount("amount", input.Amount); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	return entryDate, nil
}
