// Package revenue implementa os lançamentos de receita: criação, listagem,
// edição e o cálculo de repasse entre profissional e loja.
package revenue

import (
	"time"

	"github.com/salonops/salon-manager-api/internal/config"
	"github.com/shopspring/decimal"
)

// ShareRule define o percentual de repasse da profissional sobre a receita
// bruta. A parte da loja é sempre o complemento.
type ShareRule struct {
	BeauticianPercent int
}

// ShareContext identifica loja, profissional e data do atendimento. Hoje a
// regra é única e global; o contexto existe para permitir regras por loja ou
// por profissional sem mudar os pontos de chamada.
type ShareContext struct {
	StoreID      string
	BeauticianID string
	ServiceDate  time.Time
}

// Shares é o resultado do cálculo de repasse
type Shares struct {
	BeauticianShare float64
	NetRevenue      float64
}

// ShareCalculator calcula o repasse de um atendimento. Função pura: sem
// efeitos colaterais e sem acesso a banco.
type ShareCalculator struct {
	defaultRule ShareRule
}

func NewShareCalculator(cfg *config.Config) *ShareCalculator {
	return &ShareCalculator{
		defaultRule: ShareRule{
			BeauticianPercent: cfg.RevenueShare.BeauticianSharePercent,
		},
	}
}

// RuleFor resolve a regra de repasse vigente para o contexto informado
func (c *ShareCalculator) RuleFor(sctx ShareContext) ShareRule {
	return c.defaultRule
}

// ComputeShares calcula a parcela da profissional e a receita líquida da loja.
// A parcela é arredondada para duas casas (meio para cima) e a receita líquida
// é o restante exato, de modo que share + net == gross sempre.
func (c *ShareCalculator) ComputeShares(sctx ShareContext, grossRevenue float64) Shares {
	rule := c.RuleFor(sctx)

	gross := decimal.NewFromFloat(grossRevenue)
	percent := decimal.NewFromInt(int64(rule.BeauticianPercent)).Div(decimal.NewFromInt(100))

	share := gross.Mul(percent).Round(2)
	net := gross.Sub(share)

	shareValue, _ := share.Float64()
	netValue, _ := net.Float64()

	return Shares{
		BeauticianShare: shareValue,
		NetRevenue:      netValue,
	}
}
