package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, o suficiente
// para médias e totais exibidos em relatórios
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
