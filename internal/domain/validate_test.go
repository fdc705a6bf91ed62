package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMonetaryAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr string
	}{
		{
			name:  "aceita valor com duas casas decimais",
			value: 150.50,
		},
		{
			name:  "aceita valor no teto",
			value: 999999.99,
		},
		{
			name:    "rejeita valor acima do teto",
			value:   1000000.00,
			wantErr: "não pode exceder",
		},
		{
			name:    "rejeita mais de duas casas decimais",
			value:   100.555,
			wantErr: "não pode ter mais de duas casas decimais",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonetaryAmount("valor", tt.value)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateShortText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{
			name:  "aceita texto curto",
			value: "loja-centro",
		},
		{
			name:  "aceita texto com acentos no limite",
			value: strings.Repeat("ç", MaxShortTextLen),
		},
		{
			name:    "rejeita texto vazio",
			value:   "   ",
			wantErr: "é obrigatório",
		},
		{
			name:    "rejeita texto acima do limite",
			value:   strings.Repeat("a", MaxShortTextLen+1),
			wantErr: "não pode exceder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShortText("campo", tt.value)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDate(t *testing.T) {
	date, err := ValidateDate("data", "2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.Local), date)

	for _, value := range []string{"10/01/2025", "2025-13-01", "amanhã", ""} {
		_, err := ValidateDate("data", value)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "formato YYYY-MM-DD")
	}
}
