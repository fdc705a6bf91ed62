package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/salonops/salon-manager-api/internal/usecases/reporting"
	"github.com/salonops/salon-manager-api/pkg/apiErrors"
	"github.com/salonops/salon-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// reportFilterFromRequest monta o filtro de relatório a partir da query string.
// store_id, date_from e date_to são obrigatórios para qualquer relatório.
func reportFilterFromRequest(r *http.Request) (domain.ReportFilter, error) {
	query := r.URL.Query()

	storeID := query.Get("store_id")
	if storeID == "" {
		return domain.ReportFilter{}, fmt.Errorf("store_id é obrigatório")
	}

	dateFrom, err := utils.ParseDate(query.Get("date_from"))
	if err != nil || dateFrom.IsZero() {
		return domain.ReportFilter{}, fmt.Errorf("date_from deve estar no formato YYYY-MM-DD")
	}

	dateTo, err := utils.ParseDate(query.Get("date_to"))
	if err != nil || dateTo.IsZero() {
		return domain.ReportFilter{}, fmt.Errorf("date_to deve estar no formato YYYY-MM-DD")
	}

	if dateTo.Before(*dateFrom) {
		return domain.ReportFilter{}, fmt.Errorf("date_to não pode ser anterior a date_from")
	}

	return domain.ReportFilter{
		StoreID:  storeID,
		DateFrom: *dateFrom,
		DateTo:   *dateTo,
	}, nil
}

// GetDailyReport gera o relatório diário consolidado de uma loja
func GetDailyReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := reportFilterFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.GenerateDailyReport(filter)
		if err != nil {
			logrus.Error("Erro ao gerar relatório diário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório diário", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetReportSummary gera o resumo executivo do período
func GetReportSummary(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := reportFilterFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summary, err := service.GenerateSummary(filter)
		if err != nil {
			logrus.Error("Erro ao gerar resumo do período:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar resumo do período", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// ExportReport gera o relatório do período no formato pedido e devolve como anexo
func ExportReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := reportFilterFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = reporting.ExportFormatExcel
		}

		exported, err := service.ExportReport(filter, format)
		if err != nil {
			if errors.Is(err, reporting.ErrUnsupportedExportFormat) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "format deve ser excel, pdf ou csv", nil)
				return
			}

			logrus.Error("Erro ao exportar relatório:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", exported.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exported.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(exported.Content); err != nil {
			logrus.Error("Erro ao enviar arquivo exportado:", err)
		}
	}
}

// ListDailySummaries lista os resumos diários pré-calculados de uma loja
func ListDailySummaries(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := reportFilterFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summaries, err := service.ListDailySummaries(filter.StoreID, filter.DateFrom, filter.DateTo)
		if err != nil {
			logrus.Error("Erro ao listar resumos diários:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar resumos diários", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":         summaries,
			"generated_at": time.Now(),
		})
	}
}
