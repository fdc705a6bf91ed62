package domain

import "time"

// ReportPeriod delimita o intervalo fechado de datas de um relatório
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalDays int    `json:"total_days"`
}

// RevenueAggregate agrega a receita de um conjunto de atendimentos
type RevenueAggregate struct {
	TotalGross           float64 `json:"total_gross"`
	TotalNet             float64 `json:"total_net"`
	TotalBeauticianShare float64 `json:"total_beautician_share"`
	SessionCount         int     `json:"session_count"`
	AveragePerSession    float64 `json:"average_per_session"`
}

// CostAggregate agrega as despesas de um período
type CostAggregate struct {
	TotalAmount   float64            `json:"total_amount"`
	CostCount     int                `json:"cost_count"`
	AverageAmount float64            `json:"average_amount"`
	ByCategory    map[string]float64 `json:"by_category"`
}

// ProfitAggregate deriva o lucro de receita e despesa agregadas.
// ProfitMargin é definido como 0 quando não há receita bruta.
type ProfitAggregate struct {
	GrossProfit  float64 `json:"gross_profit"`
	NetProfit    float64 `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

// DailyReportData é uma linha do relatório: o resumo do período ou um dia isolado
type DailyReportData struct {
	Date    string           `json:"date"`
	Revenue RevenueAggregate `json:"revenue"`
	Costs   CostAggregate    `json:"costs"`
	Profit  ProfitAggregate  `json:"profit"`
}

// BeauticianPerformance classifica uma profissional pela receita gerada no período
type BeauticianPerformance struct {
	BeauticianID      string  `json:"beautician_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	SessionCount      int     `json:"session_count"`
	AveragePerSession float64 `json:"average_per_session"`
	TotalShare        float64 `json:"total_share"`
}

// TopRevenueDay destaca um dia de maior receita no período
type TopRevenueDay struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// CostTrend apresenta o total de uma categoria de despesa e sua participação percentual
type CostTrend struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Percentage  float64 `json:"percentage"`
}

// DailyReport é o relatório financeiro completo de uma loja em um intervalo de datas
type DailyReport struct {
	Period                ReportPeriod            `json:"period"`
	Summary               DailyReportData         `json:"summary"`
	DailyBreakdown        []DailyReportData       `json:"daily_breakdown"`
	BeauticianPerformance []BeauticianPerformance `json:"beautician_performance"`
	TopRevenueDays        []TopRevenueDay         `json:"top_revenue_days"`
	CostTrends            []CostTrend             `json:"cost_trends"`
}

// ReportSummary é a versão condensada do relatório, com as três melhores profissionais
type ReportSummary struct {
	Period        ReportPeriod            `json:"period"`
	Summary       DailyReportData         `json:"summary"`
	TopPerformers []BeauticianPerformance `json:"top_performers"`
}

// ReportFilter delimita loja e intervalo de datas de um relatório
type ReportFilter struct {
	StoreID  string
	DateFrom time.Time
	DateTo   time.Time
}

// DailySummary é o resumo diário pré-calculado pelo agendador noturno
type DailySummary struct {
	ID                   string    `json:"id"`
	StoreID              string    `json:"store_id"`
	Date                 time.Time `json:"date"`
	TotalGross           float64   `json:"total_gross"`
	TotalNet             float64   `json:"total_net"`
	TotalBeauticianShare float64   `json:"total_beautician_share"`
	SessionCount         int       `json:"session_count"`
	TotalCosts           float64   `json:"total_costs"`
	CostCount            int       `json:"cost_count"`
	GrossProfit          float64   `json:"gross_profit"`
	NetProfit            float64   `json:"net_profit"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
