package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemInput item enviado em POST /carts. O preço precisa bater com o preço
// corrente do ingresso.
type CartItemInput struct {
	TicketID string          `json:"ticket_id"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}

// ReplaceCartRequest substitui o conjunto de itens draft do token. Todos os
// itens pertencem ao mesmo evento/empresa.
type ReplaceCartRequest struct {
	SessionToken string          `json:"sessionToken"`
	CompanyID    string          `json:"company_id"`
	EventID      string          `json:"event_id"`
	Items        []CartItemInput `json:"items"`
}

// CartShippingRequest define o método de entrega dos itens draft do token.
type CartShippingRequest struct {
	SessionToken   string `json:"sessionToken"`
	ShippingMethod string `json:"shipping_method"` // digital ou home
}

// CartItemResponse item de carrinho como exposto pela API.
type CartItemResponse struct {
	ID             string          `json:"id"`
	SessionToken   string          `json:"sessionToken"`
	CompanyID      string          `json:"company_id"`
	EventID        string          `json:"event_id"`
	TicketID       string          `json:"ticket_id"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"currency"`
	Quantity       int             `json:"quantity"`
	Status         string          `json:"status"`
	ShippingMethod *string         `json:"shipping_method"`
	ShippingTotal  decimal.Decimal `json:"shipping_total"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CartTotalsResponse totais do carrinho agregados por moeda.
type CartTotalsResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ShippingTotal decimal.Decimal `json:"shipping_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Currency      string          `json:"currency"`
}

// CartResponse carrinho completo: itens draft + totais por moeda.
type CartResponse struct {
	Items  []CartItemResponse   `json:"items"`
	Totals []CartTotalsResponse `json:"totals"`
}
