package dto

import "time"

// CreateClientRequest cadastro de cliente final.
type CreateClientRequest struct {
	Name      string  `json:"name"`
	CpfCnpj   string  `json:"cpfcnpj"`
	Premium   bool    `json:"premium"`
	AddressID *string `json:"address_id"`
}

// UpdateClientRequest patch parcial de cliente.
type UpdateClientRequest struct {
	Name      *string `json:"name"`
	CpfCnpj   *string `json:"cpfcnpj"`
	Premium   *bool   `json:"premium"`
	AddressID *string `json:"address_id"`
}

// ClientResponse cliente como exposto pela API.
type ClientResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	CompanyID         string    `json:"company_id"`
	Name              string    `json:"name"`
	CpfCnpj           string    `json:"cpfcnpj"`
	Premium           bool      `json:"premium"`
	AddressID         *string   `json:"address_id"`
	CreatedByUsername string    `json:"created_by_username,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
