package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTicketRequest criação de tipo de ingresso em um evento da empresa.
type CreateTicketRequest struct {
	EventID      string          `json:"event_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Quantity     int             `json:"quantity"`
	StockTotal   int             `json:"stock_total"`
	Type         *string         `json:"type"`
	Day          *string         `json:"day"`
	Category     *string         `json:"category"`
	Cupom        *string         `json:"cupom"`
	SalesStartAt *time.Time      `json:"sales_start_at"`
	SalesEndAt   *time.Time      `json:"sales_end_at"`
	BatchNo      *int            `json:"batch_no"`
	BatchDate    *time.Time      `json:"batch_date"`
	Description  *string         `json:"description"`
}

// UpdateTicketRequest patch parcial de ingresso.
type UpdateTicketRequest struct {
	Name         *string          `json:"name"`
	Code         *string          `json:"code"`
	Price        *decimal.Decimal `json:"price"`
	StockTotal   *int             `json:"stock_total"`
	Category     *string          `json:"category"`
	SalesStartAt *time.Time       `json:"sales_start_at"`
	SalesEndAt   *time.Time       `json:"sales_end_at"`
	Description  *string          `json:"description"`
	IsActive     *bool            `json:"is_active"`
}

// UpdateStockRequest incremento de vendas sobre o estoque do ingresso.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// CloneTicketRequest parâmetros de clonagem de um ingresso (próximo lote).
// Campos ausentes derivam do original.
type CloneTicketRequest struct {
	NewEventID              *string          `json:"new_event_id"`
	BatchNo                 *int             `json:"batch_no"`
	BatchDate               *time.Time       `json:"batch_date"`
	NewStock                *int             `json:"new_stock"`
	PriceIncreasePercentage *decimal.Decimal `json:"price_increase_percentage"`
	SalesStartAt            *time.Time       `json:"sales_start_at"`
	SalesEndAt              *time.Time       `json:"sales_end_at"`
}

// CloneBatchRequest clonagem em lote: todos os ingressos ativos de um evento.
type CloneBatchRequest struct {
	EventID string `json:"event_id"`
	CloneTicketRequest
}

// TicketResponse ingresso como exposto pela API.
type TicketResponse struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	CompanyID         string          `json:"company_id"`
	EventID           string          `json:"event_id"`
	ParentTicketID    *string         `json:"parent_ticket_id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	UnitValue         decimal.Decimal `json:"unit_value"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency"`
	Quantity          int             `json:"quantity"`
	StockTotal        int             `json:"stock_total"`
	StockSold         int             `json:"stock_sold"`
	StockAvailable    int             `json:"stock_available"`
	Type              *string         `json:"type"`
	Day               *string         `json:"day"`
	Category          *string         `json:"category"`
	Cupom             *string         `json:"cupom"`
	SalesStartAt      *time.Time      `json:"sales_start_at"`
	SalesEndAt        *time.Time      `json:"sales_end_at"`
	BatchNo           int             `json:"batch_no"`
	BatchDate         *time.Time      `json:"batch_date"`
	Description       *string         `json:"description"`
	IsActive          bool            `json:"is_active"`
	EventName         string          `json:"event_name,omitempty"`
	EventSlug         string          `json:"event_slug,omitempty"`
	CreatedByUsername string          `json:"created_by_username,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CloneBatchResponse resultado da clonagem em lote.
type CloneBatchResponse struct {
	ClonedCount int              `json:"cloned_count"`
	Tickets     []TicketResponse `json:"tickets"`
}
