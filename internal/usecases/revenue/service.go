package revenue

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

// ErrSessionNotFound indica que o atendimento referenciado não existe
var ErrSessionNotFound = errors.New("atendimento não encontrado")

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

type RevenueService interface {
	CreateSession(input domain.CreateServiceSessionInput) (*domain.ServiceSession, error)
	GetSessionByID(id string) (*domain.ServiceSession, error)
	ListSessions(filter domain.ServiceSessionFilter) (*domain.ServiceSessionList, error)
	UpdateSession(id string, input domain.UpdateServiceSessionInput) (*domain.ServiceSession, error)
	ValidateSession(input domain.CreateServiceSessionInput) domain.ValidationResult
}

type Service struct {
	sessionRepo repository.ServiceSessionRepository
	detector    detecting.ExceptionDetector
	calculator  *ShareCalculator
	auditor     audit.Recorder
	cfg         *config.Config
}

func NewService(
	sessionRepo repository.ServiceSessionRepository,
	detector detecting.ExceptionDetector,
	calculator *ShareCalculator,
	auditor audit.Recorder,
	cfg *config.Config,
) RevenueService {
	return &Service{
		sessionRepo: sessionRepo,
		detector:    detector,
		calculator:  calculator,
		auditor:     auditor,
		cfg:         cfg,
	}
}

// CreateSession cria um atendimento de entrada manual. Lançamento reprovado
// nas regras de detecção é rejeitado antes de qualquer escrita; a detecção
// roda de novo após a criação, já vinculada ao registro.
func (s *Service) CreateSession(input domain.CreateServiceSessionInput) (*domain.ServiceSession, error) {
	serviceDate, err := validateSessionInput(input)
	if err != nil {
		return nil, err
	}

	// Pré-validação sem vínculo de registro: nada é persistido quando o
	// lançamento é reprovado
	if result := s.detector.ValidateSession(input, ""); !result.IsValid {
		return nil, &ValidationFailedError{Messages: result.Messages()}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador do atendimento")
	}

	sctx := ShareContext{
		StoreID:      input.StoreID,
		BeauticianID: input.BeauticianID,
		ServiceDate:  serviceDate,
	}
	shares := s.calculator.ComputeShares(sctx, input.GrossRevenue)

	subsidy := s.cfg.RevenueShare.DefaultSubsidy
	if input.Subsidy != nil {
		subsidy = *input.Subsidy
	}

	session := &domain.ServiceSession{
		ID:              id,
		StoreID:         input.StoreID,
		BeauticianID:    input.BeauticianID,
		ServiceDate:     serviceDate,
		GrossRevenue:    input.GrossRevenue,
		PaymentMethod:   domain.PaymentMethod(input.PaymentMethod),
		BeauticianShare: shares.BeauticianShare,
		Subsidy:         subsidy,
		NetRevenue:      shares.NetRevenue,
		EntryChannel:    domain.EntryChannelManual,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, errors.Wrap(err, "erro ao criar atendimento")
	}

	// Segunda passada vinculada ao registro criado: se alguma regra disparar
	// entre a pré-validação e a escrita, as exceções ficam registradas e o
	// atendimento é sinalizado
	if result := s.detector.ValidateSession(input, id); !result.IsValid {
		session.ExceptionFlag = true
		if err := s.sessionRepo.SetExceptionFlag(id, true); err != nil {
			log.L.WithError(err).WithField("session_id", id).Error("Erro ao sinalizar atendimento com exceção")
		}
	}

	log.L.WithFields(log.Fields{
		"session_id": session.ID,
		"store_id":   session.StoreID,
	}).Info("Atendimento criado")

	s.auditor.Record(domain.TableServiceSessions, session.ID, domain.AuditCreate, nil, session, session.BeauticianID, session.StoreID)

	return session, nil
}

func (s *Service) GetSessionByID(id string) (*domain.ServiceSession, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar atendimento")
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *Service) ListSessions(filter domain.ServiceSessionFilter) (*domain.ServiceSessionList, error) {
	filter.Limit = s.cfg.Pagination.Clamp(filter.Limit)

	sessions, total, err := s.sessionRepo.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar atendimentos")
	}

	lastID := ""
	if len(sessions) > 0 {
		lastID = sessions[len(sessions)-1].ID
	}

	return &domain.ServiceSessionList{
		Data: sessions,
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   filter.Limit,
			Cursor:  domain.NextCursor(lastID, len(sessions), filter.Limit),
			HasMore: len(sessions) == filter.Limit,
		},
	}, nil
}

// UpdateSession aplica edição parcial. Quando a receita bruta muda, as
// parcelas derivadas são recalculadas e o registro mesclado é revalidado
// pelas regras de detecção.
func (s *Service) UpdateSession(id string, input domain.UpdateServiceSessionInput) (*domain.ServiceSession, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar atendimento")
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	previous := *session

	if input.ServiceDate != nil {
		serviceDate, err := domain.ValidateDate("service_date", *input.ServiceDate)
		if err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}
		session.ServiceDate = serviceDate
	}

	if input.PaymentMethod != nil {
		if !domain.IsValidPaymentMethod(*input.PaymentMethod) {
			return nil, &InvalidInputError{Message: "payment_method inválido"}
		}
		session.PaymentMethod = domain.PaymentMethod(*input.PaymentMethod)
	}

	if input.GrossRevenue != nil {
		if *input.GrossRevenue <= 0 {
			return nil, &InvalidInputError{Message: "gross_revenue deve ser positivo"}
		}
		if err := domain.ValidateMonetaryAmount("gross_revenue", *input.GrossRevenue); err != nil {
			return nil, &InvalidInputError{Message: err.Error()}
		}

		session.GrossRevenue = *input.GrossRevenue

		sctx := ShareContext{
			StoreID:      session.StoreID,
			BeauticianID: session.BeauticianID,
			ServiceDate:  session.ServiceDate,
		}
		shares := s.calculator.ComputeShares(sctx, session.GrossRevenue)
		session.BeauticianShare = shares.BeauticianShare
		session.NetRevenue = shares.NetRevenue

		// O registro mesclado passa de novo pelas regras de detecção; reprovado,
		// a edição é rejeitada sem escrita. Aprovado, a sinalização anterior cai.
		merged := domain.CreateServiceSessionInput{
			StoreID:       session.StoreID,
			BeauticianID:  session.BeauticianID,
			ServiceDate:   session.ServiceDate.Format(time.DateOnly),
			GrossRevenue:  session.GrossRevenue,
			PaymentMethod: string(session.PaymentMethod),
		}
		if result := s.detector.ValidateSession(merged, ""); !result.IsValid {
			return nil, &ValidationFailedError{Messages: result.Messages()}
		}
		session.ExceptionFlag = false
	}

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar atendimento")
	}

	log.L.WithField("session_id", session.ID).Info("Atendimento atualizado")

	s.auditor.Record(domain.TableServiceSessions, session.ID, domain.AuditUpdate, &previous, session, session.BeauticianID, session.StoreID)

	return session, nil
}

// ValidateSession roda as regras de detecção sem persistir nada, para
// pré-validação de dados antes do envio definitivo
func (s *Service) ValidateSession(input domain.CreateServiceSessionInput) domain.ValidationResult {
	return s.detector.ValidateSession(input, "")
}

func validateSessionInput(input domain.CreateServiceSessionInput) (time.Time, error) {
	if err := domain.ValidateShortText("store_id", input.StoreID); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}
	if err := domain.ValidateShortText("beautician_id", input.BeauticianID); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	serviceDate, err := domain.ValidateDate("service_date", input.ServiceDate)
	if err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	if input.GrossRevenue <= 0 {
		return time.Time{}, &InvalidInputError{Message: "gross_revenue deve ser positivo"}
	}
	if err := domain.ValidateMonetaryAmount("gross_revenue", input.GrossRevenue); err != nil {
		return time.Time{}, &InvalidInputError{Message: err.Error()}
	}

	if !domain.IsValidPaymentMethod(input.PaymentMethod) {
		return time.Time{}, &InvalidInputError{Message: "payment_method inválido"}
	}

	if input.Subsidy != nil {
		if err := domain.ValidateMonetaryAmount("subsidy", *input.Subsidy); err != nil {
			return time.Time{}, &InvalidInputError{Message: err.Error()}
		}
	}

	return serviceDate, nil
}
