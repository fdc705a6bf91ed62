package utils

import "time"

// ParseDate interpreta uma data YYYY-MM-DD vinda de query string. String
// vazia devolve data zero, não erro, para que filtros de data sejam opcionais.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
