package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Limites estruturais dos campos de entrada. Valores fora destes limites são
// rejeitados antes de qualquer regra de negócio ser avaliada.
const (
	MaxMonetaryAmount = 999999.99
	MaxShortTextLen   = 100
)

// ValidateMonetaryAmount rejeita valores acima do teto monetário ou com mais
// de duas casas decimais
func ValidateMonetaryAmount(field string, value float64) error {
	if value > MaxMonetaryAmount {
		return fmt.Errorf("%s não pode exceder %.2f", field, MaxMonetaryAmount)
	}

	d := decimal.NewFromFloat(value)
	if !d.Equal(d.Round(2)) {
		return fmt.Errorf("%s não pode ter mais de duas casas decimais", field)
	}

	return nil
}

// ValidateShortText exige texto não vazio com no máximo MaxShortTextLen caracteres
func ValidateShortText(field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%s é obrigatório", field)
	}
	if len([]rune(trimmed)) > MaxShortTextLen {
		return fmt.Errorf("%s não pode exceder %d caracteres", field, MaxShortTextLen)
	}
	return nil
}

// ValidateDate exige data no formato YYYY-MM-DD
func ValidateDate(field, value string) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s deve estar no formato YYYY-MM-DD", field)
	}
	return date, nil
}
