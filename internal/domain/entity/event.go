package entity

import "time"

// SlugMaxLength limite da coluna slug (inclui sufixo numérico de desambiguação).
const SlugMaxLength = 128

// Event evento de uma empresa. Slug único por empresa (case-insensitive),
// gerado a partir do nome quando não informado.
type Event struct {
	ID           string
	UserID       string
	CompanyID    string
	EventName    string
	Slug         string
	Free         bool
	StartDate    *time.Time
	StartTime    *string // HH:MM:SS
	EndDate      *time.Time
	EndTime      *string
	Description  *string
	Code         *string
	Nomenclature *string
	Producer     *string
	Visibility   *int // 1 public, 2 private, 3 draft, 4 hidden
	Active       bool
	Fee          *bool
	Category     *string
	ZipCode      *string
	Place        *string
	Address      *string
	Number       *string
	Neighborhood *string
	City         *string
	State        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventWithStats evento com campos derivados para listagem/exibição.
type EventWithStats struct {
	Event
	CreatedByUsername string
	TicketTypesCount  int // tickets ativos do evento
}

// EventFilters filtros opcionais de listagem por empresa.
type EventFilters struct {
	Active    *bool
	StartDate *time.Time
	Category  *string
}

// VisibilityFromString converte o valor textual da API para o código persistido.
// Valores desconhecidos resultam em nil, como no comportamento de entrada leniente.
func VisibilityFromString(s string) *int {
	m := map[string]int{
		"public":  1,
		"private": 2,
		"draft":   3,
		"hidden":  4,
	}
	if v, ok := m[s]; ok {
		return &v
	}
	return nil
}

// EventPatch campos atualizáveis de Event.
type EventPatch struct {
	EventName   *string
	Slug        *string
	Free        *bool
	StartDate   *time.Time
	StartTime   *string
	EndDate     *time.Time
	EndTime     *string
	Description *string
	Category    *string
	Place       *string
	Address     *string
	City        *string
	State       *string
	Active      *bool
}

// Apply devolve uma cópia de e com os campos do patch aplicados.
func (p EventPatch) Apply(e Event) Event {
	if p.EventName != nil {
		e.EventName = *p.EventName
	}
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
	if p.Free != nil {
		e.Free = *p.Free
	}
	if p.StartDate != nil {
		e.StartDate = p.StartDate
	}
	if p.StartTime != nil {
		e.StartTime = p.StartTime
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.EndTime != nil {
		e.EndTime = p.EndTime
	}
	if p.Description != nil {
		e.Description = p.Description
	}
	if p.Category != nil {
		e.Category = p.Category
	}
	if p.Place != nil {
		e.Place = p.Place
	}
	if p.Address != nil {
		e.Address = p.Address
	}
	if p.City != nil {
		e.City = p.City
	}
	if p.State != nil {
		e.State = p.State
	}
	if p.Active != nil {
		e.Active = *p.Active
	}
	return e
}
