package dto

import "time"

// CreateEventRequest criação de evento. Slug opcional: gerado do nome quando
// ausente, com sufixo numérico em caso de colisão. Datas em YYYY-MM-DD e horas
// em HH:MM:SS, como no restante da API.
type CreateEventRequest struct {
	EventName    string  `json:"event_name"`
	Slug         string  `json:"slug"`
	Free         bool    `json:"free"`
	StartDate    *string `json:"start_date"`
	StartTime    *string `json:"start_time"`
	EndDate      *string `json:"end_date"`
	EndTime      *string `json:"end_time"`
	Description  *string `json:"description"`
	Code         *string `json:"code"`
	Nomenclature *string `json:"nomenclature"`
	Producer     *string `json:"producer"`
	Visibility   *string `json:"visibility"` // public, private, draft, hidden
	Fee          *bool   `json:"fee"`
	Category     *string `json:"category"`
	ZipCode      *string `json:"zip_code"`
	Place        *string `json:"place"`
	Address      *string `json:"address"`
	Number       *string `json:"number"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
}

// UpdateEventRequest patch parcial de evento.
type UpdateEventRequest struct {
	EventName   *string `json:"event_name"`
	Slug        *string `json:"slug"`
	Free        *bool   `json:"free"`
	StartDate   *string `json:"start_date"`
	StartTime   *string `json:"start_time"`
	EndDate     *string `json:"end_date"`
	EndTime     *string `json:"end_time"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Place       *string `json:"place"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Active      *bool   `json:"active"`
}

// EventResponse evento como exposto pela API.
type EventResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	CompanyID         string     `json:"company_id"`
	EventName         string     `json:"event_name"`
	Slug              string     `json:"slug"`
	Free              bool       `json:"free"`
	StartDate         *time.Time `json:"start_date"`
	StartTime         *string    `json:"start_time"`
	EndDate           *time.Time `json:"end_date"`
	EndTime           *string    `json:"end_time"`
	Description       *string    `json:"description"`
	Code              *string    `json:"code"`
	Nomenclature      *string    `json:"nomenclature"`
	Producer          *string    `json:"producer"`
	Visibility        *int       `json:"visibility"`
	Active            bool       `json:"active"`
	Fee               *bool      `json:"fee"`
	Category          *string    `json:"category"`
	ZipCode           *string    `json:"zip_code"`
	Place             *string    `json:"place"`
	Address           *string    `json:"address"`
	Number            *string    `json:"number"`
	Neighborhood      *string    `json:"neighborhood"`
	City              *string    `json:"city"`
	State             *string    `json:"state"`
	CreatedByUsername string     `json:"created_by_username,omitempty"`
	TicketTypesCount  int        `json:"ticket_types_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
