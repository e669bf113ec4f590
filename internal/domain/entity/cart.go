package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de item de carrinho.
const (
	CartStatusDraft = "draft"
)

// Métodos de entrega com seus preços fixos.
const (
	ShippingDigital = "digital"
	ShippingHome    = "home"
)

// ShippingPrice devolve o preço do método de entrega (digital grátis, home R$ 25,00).
func ShippingPrice(method string) (decimal.Decimal, bool) {
	switch method {
	case ShippingDigital:
		return decimal.Zero, true
	case ShippingHome:
		return decimal.NewFromFloat(25.00), true
	}
	return decimal.Decimal{}, false
}

// CartItem item de carrinho identificado por um session_token arbitrário
// fornecido pelo cliente (não é a sessão de login). company_id e event_id são
// imutáveis depois da primeira escrita do token.
type CartItem struct {
	ID             string
	SessionToken   string
	CompanyID      string
	EventID        string
	TicketID       string
	Price          decimal.Decimal
	Currency       string
	Quantity       int
	Status         string
	ShippingMethod *string
	ShippingTotal  decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CartTotals totais do carrinho agregados por moeda sobre os itens draft.
type CartTotals struct {
	TotalItems    int
	TotalQuantity int
	TotalAmount   decimal.Decimal
	ShippingTotal decimal.Decimal
	GrandTotal    decimal.Decimal
	Currency      string
}
