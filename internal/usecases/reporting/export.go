package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Formatos de exportação aceitos
const (
	ExportFormatExcel = "excel"
	ExportFormatPDF   = "pdf"
	ExportFormatCSV   = "csv"
)

// ErrUnsupportedExportFormat indica formato de exportação desconhecido
var ErrUnsupportedExportFormat = errors.New("formato de exportação não suportado: use excel, pdf ou csv")

// ExportedReport é o relatório renderizado pronto para download
type ExportedReport struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportReport gera o relatório do período e o renderiza no formato pedido
func (s *Service) ExportReport(filter domain.ReportFilter, format string) (*ExportedReport, error) {
	report, err := s.GenerateDailyReport(filter)
	if err != nil {
		return nil, err
	}

	baseName := fmt.Sprintf("relatorio_%s_%s_%s", filter.StoreID,
		filter.DateFrom.Format(time.DateOnly), filter.DateTo.Format(time.DateOnly))

	switch format {
	case ExportFormatExcel:
		content, err := renderExcel(report)
		if err != nil {
			return nil, err
		}
		return &ExportedReport{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    baseName + ".xlsx",
		}, nil
	case ExportFormatPDF:
		content, err := renderPDF(report)
		if err != nil {
			return nil, err
		}
		return &ExportedReport{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    baseName + ".pdf",
		}, nil
	case ExportFormatCSV:
		content, err := renderCSV(report)
		if err != nil {
			return nil, err
		}
		return &ExportedReport{
			Content:     content,
			ContentType: "text/csv",
			Filename:    baseName + ".csv",
		}, nil
	default:
		return nil, ErrUnsupportedExportFormat
	}
}

func renderExcel(report *domain.DailyReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	summarySheet := "Resumo"
	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, errors.Wrap(err, "erro ao montar planilha")
	}

	summaryRows := [][]any{
		{"Período", fmt.Sprintf("%s a %s", report.Period.StartDate, report.Period.EndDate)},
		{"Dias", report.Period.TotalDays},
		{},
		{"Receita bruta", report.Summary.Revenue.TotalGross},
		{"Receita líquida", report.Summary.Revenue.TotalNet},
		{"Repasse às profissionais", report.Summary.Revenue.TotalBeauticianShare},
		{"Atendimentos", report.Summary.Revenue.SessionCount},
		{"Ticket médio", report.Summary.Revenue.AveragePerSession},
		{},
		{"Despesas", report.Summary.Costs.TotalAmount},
		{"Lançamentos de despesa", report.Summary.Costs.CostCount},
		{},
		{"Lucro bruto", report.Summary.Profit.GrossProfit},
		{"Lucro líquido", report.Summary.Profit.NetProfit},
		{"Margem (%)", report.Summary.Profit.ProfitMargin},
	}

	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := file.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "erro ao montar planilha")
		}
	}

	dailySheet := "Quebra diária"
	if _, err := file.NewSheet(dailySheet); err != nil {
		return nil, errors.Wrap(err, "erro ao montar planilha")
	}

	dailyHeader := []any{"Data", "Receita bruta", "Receita líquida", "Repasse", "Atendimentos", "Despesas", "Lucro líquido"}
	if err := file.SetSheetRow(dailySheet, "A1", &dailyHeader); err != nil {
		return nil, errors.Wrap(err, "erro ao montar planilha")
	}

	for i, day := range report.DailyBreakdown {
		row := []any{
			day.Date,
			day.Revenue.TotalGross,
			day.Revenue.TotalNet,
			day.Revenue.TotalBeauticianShare,
			day.Revenue.SessionCount,
			day.Costs.TotalAmount,
			day.Profit.NetProfit,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(dailySheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "erro ao montar planilha")
		}
	}

	performanceSheet := "Profissionais"
	if _, err := file.NewSheet(performanceSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao montar planilha")
	}

	performanceHeader := []any{"Profissional", "Receita total", "Atendimentos", "Ticket médio", "Repasse total"}
	if err := file.SetSheetRow(performanceSheet, "A1", &performanceHeader); err != nil {
		return nil, errors.Wrap(err, "erro ao montar planilha")
	}

	for i, perf := range report.BeauticianPerformance {
		row := []any{
			perf.BeauticianID,
			perf.TotalRevenue,
			perf.SessionCount,
			perf.AveragePerSession,
			perf.TotalShare,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(performanceSheet, cell, &row); err != nil {
			return nil, errors.Wrap(err, "erro ao montar planilha")
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar planilha")
	}

	return buffer.Bytes(), nil
}

func renderPDF(report *domain.DailyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Relatorio financeiro")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Periodo: %s a %s (%d dias)",
		report.Period.StartDate, report.Period.EndDate, report.Period.TotalDays))
	pdf.Ln(10)

	writeLine := func(label string, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	writeLine("Receita bruta", money(report.Summary.Revenue.TotalGross))
	writeLine("Receita liquida", money(report.Summary.Revenue.TotalNet))
	writeLine("Repasse as profissionais", money(report.Summary.Revenue.TotalBeauticianShare))
	writeLine("Atendimentos", strconv.Itoa(report.Summary.Revenue.SessionCount))
	writeLine("Despesas", money(report.Summary.Costs.TotalAmount))
	writeLine("Lucro bruto", money(report.Summary.Profit.GrossProfit))
	writeLine("Lucro liquido", money(report.Summary.Profit.NetProfit))
	writeLine("Margem", fmt.Sprintf("%.2f%%", report.Summary.Profit.ProfitMargin))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Quebra diaria")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(28, 6, "Data", "1", 0, "L", false, 0, "")
	pdf.CellFormat(32, 6, "Receita bruta", "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 6, "Receita liquida", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 6, "Atendimentos", "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 6, "Despesas", "1", 0, "R", false, 0, "")
	pdf.CellFormat(32, 6, "Lucro liquido", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, day := range report.DailyBreakdown {
		pdf.CellFormat(28, 6, day.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 6, money(day.Revenue.TotalGross), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, money(day.Revenue.TotalNet), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, strconv.Itoa(day.Revenue.SessionCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, money(day.Costs.TotalAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(32, 6, money(day.Profit.NetProfit), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Desempenho por profissional")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(50, 6, "Profissional", "1", 0, "L", false, 0, "")
	pdf.CellFormat(36, 6, "Receita total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Atendimentos", "1", 0, "R", false, 0, "")
	pdf.CellFormat(36, 6, "Repasse total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, perf := range report.BeauticianPerformance {
		pdf.CellFormat(50, 6, perf.BeauticianID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(36, 6, money(perf.TotalRevenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, strconv.Itoa(perf.SessionCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 6, money(perf.TotalShare), "1", 1, "R", false, 0, "")
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar PDF")
	}

	return buffer.Bytes(), nil
}

func renderCSV(report *domain.DailyReport) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	rows := [][]string{
		{"section", "date", "total_gross", "total_net", "beautician_share", "session_count", "total_costs", "net_profit"},
		{
			"summary",
			fmt.Sprintf("%s a %s", report.Period.StartDate, report.Period.EndDate),
			money(report.Summary.Revenue.TotalGross),
			money(report.Summary.Revenue.TotalNet),
			money(report.Summary.Revenue.TotalBeauticianShare),
			strconv.Itoa(report.Summary.Revenue.SessionCount),
			money(report.Summary.Costs.TotalAmount),
			money(report.Summary.Profit.NetProfit),
		},
	}

	for _, day := range report.DailyBreakdown {
		rows = append(rows, []string{
			"daily",
			day.Date,
			money(day.Revenue.TotalGross),
			money(day.Revenue.TotalNet),
			money(day.Revenue.TotalBeauticianShare),
			strconv.Itoa(day.Revenue.SessionCount),
			money(day.Costs.TotalAmount),
			money(day.Profit.NetProfit),
		})
	}

	for _, perf := range report.BeauticianPerformance {
		rows = append(rows, []string{
			"beautician",
			perf.BeauticianID,
			money(perf.TotalRevenue),
			"",
			money(perf.TotalShare),
			strconv.Itoa(perf.SessionCount),
			"",
			"",
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar CSV")
	}

	return buffer.Bytes(), nil
}

func money(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
