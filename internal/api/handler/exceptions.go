package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/detecting"
	"github.com/salonops/salon-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListExceptions lista exceções de validação com filtros e paginação
func ListExceptions(service detecting.ExceptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.ExceptionFilter{
			StoreID:   query.Get("store_id"),
			TableName: query.Get("table_name"),
			Severity:  query.Get("severity"),
			Cursor:    query.Get("cursor"),
		}

		if raw := query.Get("resolved"); raw != "" {
			resolved, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "resolved deve ser true ou false", nil)
				return
			}
			filter.Resolved = &resolved
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
				return
			}
			filter.Limit = limit
		}

		list, err := service.ListExceptions(filter)
		if err != nil {
			logrus.Error("Erro ao listar exceções:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar exceções", nil)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// ResolveException marca uma exceção como resolvida
func ResolveException(service detecting.ExceptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body struct {
			ResolvedBy string `json:"resolved_by"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if body.ResolvedBy == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "resolved_by é obrigatório", nil)
			return
		}

		record, err := service.ResolveException(id, body.ResolvedBy)
		if err != nil {
			if errors.Is(err, detecting.ErrExceptionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Exceção não encontrada", nil)
				return
			}

			logrus.Error("Erro ao resolver exceção:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resolver exceção", nil)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

// ExceptionStats retorna os contadores agregados de exceções
func ExceptionStats(service detecting.ExceptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storeID := r.URL.Query().Get("store_id")

		stats, err := service.GetStats(storeID)
		if err != nil {
			logrus.Error("Erro ao calcular estatísticas de exceções:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas de exceções", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
