package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/importing"
	"github.com/salonops/salon-manager-api/internal/usecases/revenue"
	"github.com/salonops/salon-manager-api/pkg/apiErrors"
	"github.com/salonops/salon-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Limite de tamanho do arquivo de importação em memória
const maxImportFileSize = 10 << 20 // 10 MB

// CreateSession cria um atendimento de entrada manual
func CreateSession(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CreateServiceSessionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		session, err := service.CreateSession(input)
		if err != nil {
			var invalidErr *revenue.InvalidInputError
			if errors.As(err, &invalidErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidErr.Message, nil)
				return
			}

			var validationErr *revenue.ValidationFailedError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Registro reprovado nas regras de validação", validationErr.Messages)
				return
			}

			logrus.Error("Erro ao criar atendimento:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar atendimento", nil)
			return
		}

		writeJSON(w, http.StatusCreated, session)
	}
}

// ListSessions lista atendimentos com filtros e paginação por cursor
func ListSessions(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.ServiceSessionFilter{
			StoreID:      query.Get("store_id"),
			BeauticianID: query.Get("beautician_id"),
			Cursor:       query.Get("cursor"),
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
				return
			}
			filter.Limit = limit
		}

		dateFrom, err := utils.ParseDate(query.Get("date_from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date_from deve estar no formato YYYY-MM-DD", nil)
			return
		}
		if !dateFrom.IsZero() {
			filter.DateFrom = dateFrom
		}

		dateTo, err := utils.ParseDate(query.Get("date_to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date_to deve estar no formato YYYY-MM-DD", nil)
			return
		}
		if !dateTo.IsZero() {
			filter.DateTo = dateTo
		}

		list, err := service.ListSessions(filter)
		if err != nil {
			logrus.Error("Erro ao listar atendimentos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar atendimentos", nil)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// GetSession busca um atendimento pelo id
func GetSession(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.GetSessionByID(id)
		if err != nil {
			if errors.Is(err, revenue.ErrSessionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Atendimento não encontrado", nil)
				return
			}

			logrus.Error("Erro ao buscar atendimento:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar atendimento", nil)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

// UpdateSession aplica edição parcial a um atendimento
func UpdateSession(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.UpdateServiceSessionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		session, err := service.UpdateSession(id, input)
		if err != nil {
			if errors.Is(err, revenue.ErrSessionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Atendimento não encontrado", nil)
				return
			}

			var invalidErr *revenue.InvalidInputError
			if errors.As(err, &invalidErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidErr.Message, nil)
				return
			}

			var validationErr *revenue.ValidationFailedError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Registro reprovado nas regras de validação", validationErr.Messages)
				return
			}

			logrus.Error("Erro ao atualizar atendimento:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar atendimento", nil)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

// ValidateSessionData roda as regras de detecção sem persistir nada
func ValidateSessionData(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CreateServiceSessionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result := service.ValidateSession(input)

		writeJSON(w, http.StatusOK, map[string]any{
			"isValid":    result.IsValid,
			"exceptions": result.Messages(),
		})
	}
}

// BulkImportSessions recebe um arquivo multipart e executa a importação em lote
func BulkImportSessions(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo de importação é obrigatório", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logrus.Error("Erro ao ler arquivo de importação:", err)
			apiErrors.WriteError(w, apiErrors.ErrFileProcessing, "Erro ao ler o arquivo enviado", nil)
			return
		}

		storeID := r.FormValue("store_id")

		result, err := service.BulkImport(header.Filename, data, storeID)
		if err != nil {
			var formatErr *importing.UnsupportedFormatError
			if errors.As(err, &formatErr) {
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, formatErr.Error(), nil)
				return
			}

			if errors.Is(err, importing.ErrEmptyFile) || errors.Is(err, importing.ErrMissingStoreID) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logrus.Error("Erro ao importar arquivo:", err)
			apiErrors.WriteError(w, apiErrors.ErrFileProcessing, "Erro ao processar o arquivo enviado", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// writeJSON serializa a resposta com o content type correto
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}
