package domain

import "time"

// PaymentMethod representa a forma de pagamento de um atendimento
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentOther    PaymentMethod = "other"
)

// ValidPaymentMethods lista as formas de pagamento aceitas, na ordem exibida nas mensagens de erro
var ValidPaymentMethods = []PaymentMethod{PaymentCash, PaymentTransfer, PaymentOther}

// IsValidPaymentMethod verifica se o valor informado é uma forma de pagamento aceita
func IsValidPaymentMethod(value string) bool {
	for _, m := range ValidPaymentMethods {
		if string(m) == value {
			return true
		}
	}
	return false
}

// Canal de entrada do registro: criação manual ou importação em lote
const (
	EntryChannelManual     = "manual_entry"
	EntryChannelBulkImport = "bulk_import"
)

// ServiceSession representa um atendimento de serviço de beleza realizado em uma loja
type ServiceSession struct {
	ID              string        `json:"id"`
	StoreID         string        `json:"store_id"`
	BeauticianID    string        `json:"beautician_id"`
	ServiceDate     time.Time     `json:"service_date"`
	GrossRevenue    float64       `json:"gross_revenue"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	BeauticianShare float64       `json:"beautician_share"`
	Subsidy         float64       `json:"subsidy"`
	NetRevenue      float64       `json:"net_revenue"`
	EntryChannel    string        `json:"entry_channel"`
	ExceptionFlag   bool          `json:"exception_flag"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CreateServiceSessionInput contém os dados de entrada para criação de um atendimento.
// As parcelas derivadas (beautician_share, net_revenue) nunca são informadas pelo cliente.
type CreateServiceSessionInput struct {
	StoreID       string   `json:"store_id"`
	BeauticianID  string   `json:"beautician_id"`
	ServiceDate   string   `json:"service_date"`
	GrossRevenue  float64  `json:"gross_revenue"`
	PaymentMethod string   `json:"payment_method"`
	Subsidy       *float64 `json:"subsidy,omitempty"`
}

// UpdateServiceSessionInput contém os campos editáveis de um atendimento
type UpdateServiceSessionInput struct {
	ServiceDate   *string  `json:"service_date,omitempty"`
	GrossRevenue  *float64 `json:"gross_revenue,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
}

// ServiceSessionFilter define os filtros de listagem de atendimentos
type ServiceSessionFilter struct {
	StoreID      string
	BeauticianID string
	DateFrom     *time.Time
	DateTo       *time.Time
	Limit        int
	Cursor       string
}

// ServiceSessionList é a resposta paginada da listagem de atendimentos
type ServiceSessionList struct {
	Data       []*ServiceSession `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
