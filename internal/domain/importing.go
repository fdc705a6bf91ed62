package domain

// ImportRowError descreve a falha de uma única linha do arquivo importado.
// Row é 1-indexado e desconsidera a linha de cabeçalho, para que o usuário
// localize a linha no arquivo original.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// BulkImportResult é o resultado agregado de uma importação em lote.
// Total = linhas de dados do arquivo; Failed = rejeições de parse +
// falhas de validação + falhas de persistência. Nunca é persistido.
type BulkImportResult struct {
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors"`
}
