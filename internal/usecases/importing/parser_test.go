package importing

import (
	"testing"

	"github.com/salonops/salon-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParser_ParseFile_UnsupportedFormat(t *testing.T) {
	parser := NewParser()

	for _, filename := range []string{"dados.txt", "dados.pdf", "dados"} {
		_, _, err := parser.ParseFile(filename, []byte("qualquer coisa"))

		require.Error(t, err)
		var formatErr *UnsupportedFormatError
		assert.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "Unsupported file format. Please upload CSV or Excel file.", err.Error())
	}
}

func TestParser_ParseCSV(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		content  string
		validate func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error)
	}{
		{
			name: "Linhas válidas são convertidas e a inválida isolada",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,150.00,cash\n" +
				"store-1,b-2,2025-01-11,200.50,transfer\n" +
				"store-1,b-3,2025-01-12,,cash\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 2)
				require.Len(t, rowErrors, 1)

				assert.Equal(t, 1, rows[0].Row)
				assert.Equal(t, "store-1", rows[0].Input.StoreID)
				assert.Equal(t, "b-1", rows[0].Input.BeauticianID)
				assert.Equal(t, "2025-01-10", rows[0].Input.ServiceDate)
				assert.Equal(t, 150.00, rows[0].Input.GrossRevenue)
				assert.Equal(t, "cash", rows[0].Input.PaymentMethod)

				assert.Equal(t, 3, rowErrors[0].Row)
				assert.Equal(t, "Missing required fields: gross_revenue", rowErrors[0].Error)
			},
		},
		{
			name: "Receita não numérica",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,abc,cash\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				assert.Empty(t, rows)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, "gross_revenue must be a positive number", rowErrors[0].Error)
			},
		},
		{
			name: "Receita negativa",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,-10,cash\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, "gross_revenue must be a positive number", rowErrors[0].Error)
			},
		},
		{
			name: "Data inválida",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,10 de janeiro,150.00,cash\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, "service_date must be a valid date (YYYY-MM-DD format)", rowErrors[0].Error)
			},
		},
		{
			name: "Forma de pagamento desconhecida",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,150.00,card\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, "payment_method must be one of: cash, transfer, other", rowErrors[0].Error)
			},
		},
		{
			name: "Forma de pagamento normalizada para minúsculas",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,150.00,CASH\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Empty(t, rowErrors)
				assert.Equal(t, "cash", rows[0].Input.PaymentMethod)
			},
		},
		{
			name: "Subsídio opcional é convertido",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method,subsidy\n" +
				"store-1,b-1,2025-01-10,150.00,cash,25.50\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 1)
				require.NotNil(t, rows[0].Input.Subsidy)
				assert.Equal(t, 25.50, *rows[0].Input.Subsidy)
			},
		},
		{
			name: "Subsídio inválido reprova a linha",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method,subsidy\n" +
				"store-1,b-1,2025-01-10,150.00,cash,muito\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				require.Len(t, rowErrors, 1)
				assert.Equal(t, "subsidy must be a valid number", rowErrors[0].Error)
			},
		},
		{
			name: "Linhas em branco são ignoradas",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n" +
				"store-1,b-1,2025-01-10,150.00,cash\n" +
				",,,,\n" +
				"store-1,b-2,2025-01-11,200.00,cash\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.NoError(t, err)
				assert.Len(t, rows, 2)
				assert.Empty(t, rowErrors)
			},
		},
		{
			name:    "Arquivo somente com cabeçalho é rejeitado",
			content: "store_id,beautician_id,service_date,gross_revenue,payment_method\n",
			validate: func(t *testing.T, rows []ParsedRow, rowErrors []domain.ImportRowError, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "at least 2 rows")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, rowErrors, err := parser.ParseFile("import.csv", []byte(tt.content))
			tt.validate(t, rows, rowErrors, err)
		})
	}
}

func TestParser_ParseSpreadsheet(t *testing.T) {
	parser := NewParser()

	file := excelize.NewFile()
	sheet := file.GetSheetList()[0]

	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{
		"store_id", "beautician_id", "service_date", "gross_revenue", "payment_method",
	}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{
		"store-1", "b-1", "2025-01-10", "150.00", "cash",
	}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{
		"store-1", "b-2", "2025-01-11", "", "transfer",
	}))

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	rows, rowErrors, err := parser.ParseFile("import.xlsx", buffer.Bytes())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "b-1", rows[0].Input.BeauticianID)
	assert.Equal(t, 150.00, rows[0].Input.GrossRevenue)

	require.Len(t, rowErrors, 1)
	assert.Equal(t, 2, rowErrors[0].Row)
	assert.Equal(t, "Missing required fields: gross_revenue", rowErrors[0].Error)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		ok       bool
	}{
		{"Formato ISO", "2025-01-10", "2025-01-10", true},
		{"Formato com barras", "2025/01/10", "2025-01-10", true},
		{"Formato americano", "01/10/2025", "2025-01-10", true},
		{"Serial do Excel", "44927", "2023-01-01", true},
		{"Texto livre", "ontem", "", false},
		{"Vazio", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := parseDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}
