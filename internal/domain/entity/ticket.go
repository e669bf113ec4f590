package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket tipo de ingresso (não um ingresso individual). Código único por
// empresa; stock_total >= stock_sold é invariante garantida no UPDATE
// condicional de estoque.
type Ticket struct {
	ID             string
	UserID         string
	CompanyID      string
	EventID        string
	ParentTicketID *string // origem quando clonado
	Code           string
	Name           string
	UnitValue      decimal.Decimal
	Price          decimal.Decimal
	Currency       string
	Quantity       int
	StockTotal     int
	StockSold      int
	Type           *string
	Day            *string
	Category       *string
	Cupom          *string
	SalesStartAt   *time.Time
	SalesEndAt     *time.Time
	BatchNo        int
	BatchDate      *time.Time
	Description    *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockAvailable estoque ainda disponível para venda.
func (t Ticket) StockAvailable() int {
	return t.StockTotal - t.StockSold
}

// TicketWithEvent ingresso com dados do evento e do criador resolvidos via JOIN.
type TicketWithEvent struct {
	Ticket
	EventName         string
	EventSlug         string
	CreatedByUsername string
}

// TicketFilters filtros opcionais de listagem por empresa.
type TicketFilters struct {
	EventID  *string
	IsActive *bool
	Category *string
}

// TicketPatch campos atualizáveis de Ticket.
type TicketPatch struct {
	Name         *string
	Code         *string
	Price        *decimal.Decimal
	StockTotal   *int
	Category     *string
	SalesStartAt *time.Time
	SalesEndAt   *time.Time
	Description  *string
	IsActive     *bool
}

// Apply devolve uma cópia de t com os campos do patch aplicados.
func (p TicketPatch) Apply(t Ticket) Ticket {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Code != nil {
		t.Code = *p.Code
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.StockTotal != nil {
		t.StockTotal = *p.StockTotal
	}
	if p.Category != nil {
		t.Category = p.Category
	}
	if p.SalesStartAt != nil {
		t.SalesStartAt = p.SalesStartAt
	}
	if p.SalesEndAt != nil {
		t.SalesEndAt = p.SalesEndAt
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	return t
}

// TicketCloneOptions parâmetros de clonagem de ingresso/lote. Campos nil usam o
// valor derivado do ingresso original.
type TicketCloneOptions struct {
	NewEventID              *string
	BatchNo                 *int
	BatchDate               *time.Time
	NewStock                *int
	PriceIncreasePercentage *decimal.Decimal
	SalesStartAt            *time.Time
	SalesEndAt              *time.Time
}
