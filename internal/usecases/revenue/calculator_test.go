package revenue

import (
	"testing"

	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestCalculator(percent int) *ShareCalculator {
	return NewShareCalculator(&config.Config{
		RevenueShare: config.RevenueShare{
			BeauticianSharePercent: percent,
		},
	})
}

func TestShareCalculator_ComputeShares(t *testing.T) {
	tests := []struct {
		name          string
		percent       int
		grossRevenue  float64
		expectedShare float64
		expectedNet   float64
	}{
		{
			name:          "Divisão 60/40 em valor redondo",
			percent:       60,
			grossRevenue:  1000.00,
			expectedShare: 600.00,
			expectedNet:   400.00,
		},
		{
			name:          "Valor com centavos",
			percent:       60,
			grossRevenue:  150.50,
			expectedShare: 90.30,
			expectedNet:   60.20,
		},
		{
			name:          "Meio centavo arredonda para cima",
			percent:       50,
			grossRevenue:  0.01,
			expectedShare: 0.01,
			expectedNet:   0.00,
		},
		{
			name:          "Terça parte gera dízima e arredonda em duas casas",
			percent:       33,
			grossRevenue:  100.00,
			expectedShare: 33.00,
			expectedNet:   67.00,
		},
		{
			name:          "Percentual que força arredondamento",
			percent:       60,
			grossRevenue:  99.99,
			expectedShare: 59.99,
			expectedNet:   40.00,
		},
		{
			name:          "Repasse integral",
			percent:       100,
			grossRevenue:  250.75,
			expectedShare: 250.75,
			expectedNet:   0.00,
		},
		{
			name:          "Repasse zero",
			percent:       0,
			grossRevenue:  250.75,
			expectedShare: 0.00,
			expectedNet:   250.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := newTestCalculator(tt.percent)

			shares := calculator.ComputeShares(ShareContext{StoreID: "store-1"}, tt.grossRevenue)

			assert.Equal(t, tt.expectedShare, shares.BeauticianShare)
			assert.Equal(t, tt.expectedNet, shares.NetRevenue)
		})
	}
}

func TestShareCalculator_ComputeShares_SumInvariant(t *testing.T) {
	calculator := newTestCalculator(60)

	// A soma das parcelas precisa reconstruir a receita bruta exatamente,
	// mesmo quando o percentual produz arredondamento
	values := []float64{0.01, 0.03, 1.11, 99.99, 123.45, 1000.00, 5000.01, 999999.99}

	for _, gross := range values {
		shares := calculator.ComputeShares(ShareContext{}, gross)
		assert.InDelta(t, gross, shares.BeauticianShare+shares.NetRevenue, 1e-9,
			"share + net deve ser igual ao bruto para %v", gross)
	}
}

func TestShareCalculator_RuleFor(t *testing.T) {
	calculator := newTestCalculator(60)

	// Hoje a regra é única, qualquer contexto resolve para o mesmo percentual
	ruleA := calculator.RuleFor(ShareContext{StoreID: "store-1", BeauticianID: "b-1"})
	ruleB := calculator.RuleFor(ShareContext{StoreID: "store-2", BeauticianID: "b-2"})

	assert.Equal(t, 60, ruleA.BeauticianPercent)
	assert.Equal(t, ruleA, ruleB)
}
