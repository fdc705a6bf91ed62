package domain

// Pagination descreve a paginação por cursor usada nas listagens.
// O cursor é o ID do último registro retornado na página anterior.
type Pagination struct {
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	Cursor  *string `json:"cursor"`
	HasMore bool    `json:"hasMore"`
}

// NextCursor devolve o cursor da próxima página quando a página atual veio cheia
func NextCursor(lastID string, pageLen, limit int) *string {
	if pageLen == limit && lastID != "" {
		return &lastID
	}
	return nil
}
