package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/costing"
	"github.com/salonops/salon-manager-api/pkg/apiErrors"
	"github.com/salonops/salon-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CreateCostEntry lança uma nova despesa
func CreateCostEntry(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CreateCostEntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		entry, err := service.CreateEntry(input)
		if err != nil {
			var invalidErr *costing.InvalidInputError
			if errors.As(err, &invalidErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidErr.Message, nil)
				return
			}

			var validationErr *costing.ValidationFailedError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Registro reprovado nas regras de validação", validationErr.Messages)
				return
			}

			logrus.Error("Erro ao criar despesa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar despesa", nil)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// ListCostEntries lista despesas com filtros, paginação e resumo do conjunto filtrado
func ListCostEntries(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.CostFilter{
			StoreID:          query.Get("store_id"),
			Category:         query.Get("category"),
			Payer:            query.Get("payer"),
			AllocationRuleID: query.Get("allocation_rule_id"),
			Cursor:           query.Get("cursor"),
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

		list, err := service.ListEntries(filter)
		if err != nil {
			logrus.Error("Erro ao listar despesas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar despesas", nil)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

// GetCostEntry busca uma despesa pelo id
func GetCostEntry(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.GetEntryByID(id)
		if err != nil {
			if errors.Is(err, costing.ErrCostEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Despesa não encontrada", nil)
				return
			}

			logrus.Error("Erro ao buscar despesa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar despesa", nil)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// UpdateCostEntry aplica edição parcial a uma despesa
func UpdateCostEntry(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.UpdateCostEntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		entry, err := service.UpdateEntry(id, input)
		if err != nil {
			if errors.Is(err, costing.ErrCostEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Despesa não encontrada", nil)
				return
			}

			var invalidErr *costing.InvalidInputError
			if errors.As(err, &invalidErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, invalidErr.Message, nil)
				return
			}

			var validationErr *costing.ValidationFailedError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Registro reprovado nas regras de validação", validationErr.Messages)
				return
			}

			logrus.Error("Erro ao atualizar despesa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar despesa", nil)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// DeleteCostEntry faz a exclusão lógica de uma despesa
func DeleteCostEntry(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deletedBy := r.URL.Query().Get("deleted_by")
		if deletedBy == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "deleted_by é obrigatório", nil)
			return
		}

		if err := service.DeleteEntry(id, deletedBy); err != nil {
			if errors.Is(err, costing.ErrCostEntryNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Despesa não encontrada", nil)
				return
			}

			logrus.Error("Erro ao remover despesa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover despesa", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ValidateCostData roda as regras de detecção de despesas sem persistir nada
func ValidateCostData(service costing.CostService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.CreateCostEntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result := service.ValidateEntry(input)

		writeJSON(w, http.StatusOK, map[string]any{
			"isValid":    result.IsValid,
			"exceptions": result.Messages(),
		})
	}
}
