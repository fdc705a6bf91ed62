package importing

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/salonops/salon-manager-api/infrastructure/repository"
	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/salonops/salon-manager-api/internal/usecases/revenue"
	"github.com/salonops/salon-manager-api/pkg/log"
	"github.com/salonops/salon-manager-api/pkg/utils"
)

// Erros de pré-condição da importação: nada é processado quando ocorrem
var (
	ErrEmptyFile      = errors.New("arquivo de importação é obrigatório")
	ErrMissingStoreID = errors.New("store_id é obrigatório")
)

type ImportService interface {
	BulkImport(filename string, data []byte, storeID string) (*domain.BulkImportResult, error)
}

type Orchestrator struct {
	parser      FileParser
	detector    detecting.ExceptionDetector
	sessionRepo repository.ServiceSessionRepository
	calculator  *revenue.ShareCalculator
	cfg         *config.Config
}

func NewOrchestrator(
	parser FileParser,
	detector detecting.ExceptionDetector,
	sessionRepo repository.ServiceSessionRepository,
	calculator *revenue.ShareCalculator,
	cfg *config.Config,
) ImportService {
	return &Orchestrator{
		parser:      parser,
		detector:    detector,
		sessionRepo: sessionRepo,
		calculator:  calculator,
		cfg:         cfg,
	}
}

// BulkImport executa o pipeline completo: parse, validação por regra e
// persistência linha a linha. Cada linha é independente: a falha de uma não
// interrompe as demais, tanto na validação quanto na escrita.
func (o *Orchestrator) BulkImport(filename string, data []byte, storeID string) (*domain.BulkImportResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, ErrMissingStoreID
	}

	rows, parseErrors, err := o.parser.ParseFile(filename, data)
	if err != nil {
		return nil, err
	}

	result := &domain.BulkImportResult{
		Total:  len(rows) + len(parseErrors),
		Errors: make([]domain.ImportRowError, 0, len(parseErrors)),
	}
	result.Errors = append(result.Errors, parseErrors...)
	result.Failed = len(parseErrors)

	// Valida todas as linhas antes de escrever qualquer uma; linhas
	// reprovadas saem do conjunto de escrita
	validRows := make([]ParsedRow, 0, len(rows))
	for _, row := range rows {
		validation := o.detector.ValidateSession(row.Input, "")
		if validation.IsValid {
			validRows = append(validRows, row)
			continue
		}

		result.Failed++
		result.Errors = append(result.Errors, domain.ImportRowError{
			Row:   row.Row,
			Error: strings.Join(validation.Messages(), "; "),
			Data:  row.Input,
		})
	}

	for _, row := range validRows {
		if err := o.persistRow(row, storeID); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, domain.ImportRowError{
				Row:   row.Row,
				Error: err.Error(),
				Data:  row.Input,
			})

			log.L.WithError(err).WithField("row", row.Row).Error("Erro ao importar linha do arquivo")
			continue
		}

		result.Successful++
	}

	log.L.WithFields(log.Fields{
		"store_id":   storeID,
		"total":      result.Total,
		"successful": result.Successful,
		"failed":     result.Failed,
	}).Info("Importação em lote concluída")

	return result, nil
}

func (o *Orchestrator) persistRow(row ParsedRow, storeID string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar identificador do atendimento")
	}

	serviceDate, err := domain.ValidateDate("service_date", row.Input.ServiceDate)
	if err != nil {
		return err
	}

	sctx := revenue.ShareContext{
		StoreID:      storeID,
		BeauticianID: row.Input.BeauticianID,
		ServiceDate:  serviceDate,
	}
	shares := o.calculator.ComputeShares(sctx, row.Input.GrossRevenue)

	subsidy := o.cfg.RevenueShare.DefaultSubsidy
	if row.Input.Subsidy != nil {
		subsidy = *row.Input.Subsidy
	}

	// A loja do contexto de upload prevalece sobre a coluna do arquivo
	session := &domain.ServiceSession{
		ID:              id,
		StoreID:         storeID,
		BeauticianID:    row.Input.BeauticianID,
		ServiceDate:     serviceDate,
		GrossRevenue:    row.Input.GrossRevenue,
		PaymentMethod:   domain.PaymentMethod(row.Input.PaymentMethod),
		BeauticianShare: shares.BeauticianShare,
		Subsidy:         subsidy,
		NetRevenue:      shares.NetRevenue,
		EntryChannel:    domain.EntryChannelBulkImport,
	}

	return o.sessionRepo.Create(session)
}
