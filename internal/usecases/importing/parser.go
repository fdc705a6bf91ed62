// Package importing implementa a importação em lote de atendimentos a partir
// de arquivos CSV e planilhas.
package importing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// UnsupportedFormatError sinaliza extensão de arquivo não aceita. Falha
// imediata, antes de qualquer linha ser processada.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return "Unsupported file format. Please upload CSV or Excel file."
}

// ParsedRow é uma linha do arquivo convertida em dados de criação de
// atendimento. Row é 1-indexado e desconsidera o cabeçalho.
type ParsedRow struct {
	Row   int
	Input domain.CreateServiceSessionInput
}

var requiredColumns = []string{"store_id", "beautician_id", "service_date", "gross_revenue", "payment_method"}

type FileParser interface {
	ParseFile(filename string, data []byte) ([]ParsedRow, []domain.ImportRowError, error)
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseFile converte o arquivo enviado em linhas de criação de atendimento.
// Falhas de linha são isoladas: uma linha ruim não interrompe as demais, em
// ambos os formatos. Erros estruturais (extensão, arquivo ilegível) abortam
// o parse inteiro.
func (p *Parser) ParseFile(filename string, data []byte) ([]ParsedRow, []domain.ImportRowError, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "csv":
		return p.parseCSV(data)
	case "xlsx", "xls":
		return p.parseSpreadsheet(data)
	default:
		return nil, nil, &UnsupportedFormatError{Extension: ext}
	}
}

func (p *Parser) parseCSV(data []byte) ([]ParsedRow, []domain.ImportRowError, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("CSV parsing error: %w", err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file must contain at least 2 rows (header + data)")
	}

	headers := records[0]
	for i, header := range headers {
		headers[i] = strings.TrimSpace(header)
	}

	rows := make([]ParsedRow, 0, len(records)-1)
	rowErrors := make([]domain.ImportRowError, 0)

	for i, record := range records[1:] {
		rowNumber := i + 1

		if isBlankRecord(record) {
			continue
		}

		rowData := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(record) {
				rowData[header] = strings.TrimSpace(record[j])
			}
		}

		input, err := mapRow(rowData)
		if err != nil {
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:   rowNumber,
				Error: err.Error(),
				Data:  rowData,
			})
			continue
		}

		rows = append(rows, ParsedRow{Row: rowNumber, Input: input})
	}

	return rows, rowErrors, nil
}

func (p *Parser) parseSpreadsheet(data []byte) ([]ParsedRow, []domain.ImportRowError, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("Excel parsing error: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("Excel file has no sheets")
	}

	// Valores crus para preservar os seriais de data do Excel
	records, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("Excel parsing error: %w", err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("Excel file must contain at least 2 rows (header + data)")
	}

	headers := records[0]
	for i, header := range headers {
		headers[i] = strings.TrimSpace(header)
	}

	rows := make([]ParsedRow, 0, len(records)-1)
	rowErrors := make([]domain.ImportRowError, 0)

	for i, record := range records[1:] {
		rowNumber := i + 1

		if isBlankRecord(record) {
			continue
		}

		rowData := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(record) {
				rowData[header] = strings.TrimSpace(record[j])
			}
		}

		input, err := mapRow(rowData)
		if err != nil {
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:   rowNumber,
				Error: err.Error(),
				Data:  rowData,
			})
			continue
		}

		rows = append(rows, ParsedRow{Row: rowNumber, Input: input})
	}

	return rows, rowErrors, nil
}

// mapRow valida e converte uma linha já em forma de mapa coluna→valor
func mapRow(row map[string]string) (domain.CreateServiceSessionInput, error) {
	var input domain.CreateServiceSessionInput

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if row[column] == "" {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return input, fmt.Errorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	grossRevenue, err := strconv.ParseFloat(row["gross_revenue"], 64)
	if err != nil || grossRevenue <= 0 {
		return input, fmt.Errorf("gross_revenue must be a positive number")
	}

	serviceDate, ok := parseDate(row["service_date"])
	if !ok {
		return input, fmt.Errorf("service_date must be a valid date (YYYY-MM-DD format)")
	}

	paymentMethod := strings.ToLower(row["payment_method"])
	if !domain.IsValidPaymentMethod(paymentMethod) {
		valid := make([]string, 0, len(domain.ValidPaymentMethods))
		for _, m := range domain.ValidPaymentMethods {
			valid = append(valid, string(m))
		}
		return input, fmt.Errorf("payment_method must be one of: %s", strings.Join(valid, ", "))
	}

	input = domain.CreateServiceSessionInput{
		StoreID:       row["store_id"],
		BeauticianID:  row["beautician_id"],
		ServiceDate:   serviceDate,
		GrossRevenue:  grossRevenue,
		PaymentMethod: paymentMethod,
	}

	if raw, hasSubsidy := row["subsidy"]; hasSubsidy && raw != "" {
		subsidy, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.CreateServiceSessionInput{}, fmt.Errorf("subsidy must be a valid number")
		}
		input.Subsidy = &subsidy
	}

	return input, nil
}

// parseDate aceita datas em texto ou seriais de data do Excel e normaliza
// para YYYY-MM-DD
func parseDate(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	layouts := []string{time.DateOnly, time.RFC3339, "2006/01/02", "01/02/2006"}
	for _, layout := range layouts {
		if date, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return date.Format(time.DateOnly), true
		}
	}

	// Serial de data do Excel: dias desde 1900-01-00
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		date, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return date.Format(time.DateOnly), true
		}
	}

	return "", false
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
