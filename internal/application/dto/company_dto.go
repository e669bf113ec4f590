package dto

import (
	"encoding/json"
	"time"
)

// CreateCompanyRequest criação de empresa. Slug opcional: gerado do nome quando
// ausente.
type CreateCompanyRequest struct {
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	CNPJ             string          `json:"cnpj"`
	SubscriptionPlan string          `json:"subscription_plan"`
	Settings         json.RawMessage `json:"settings"`
}

// UpdateCompanyRequest patch parcial de empresa.
type UpdateCompanyRequest struct {
	Name               *string         `json:"name"`
	Slug               *string         `json:"slug"`
	CNPJ               *string         `json:"cnpj"`
	SubscriptionPlan   *string         `json:"subscription_plan"`
	SubscriptionStatus *string         `json:"subscription_status"`
	Settings           json.RawMessage `json:"settings"`
}

// CompanyResponse empresa como exposta pela API.
type CompanyResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	CNPJ               string          `json:"cnpj"`
	SubscriptionPlan   string          `json:"subscription_plan"`
	SubscriptionStatus string          `json:"subscription_status"`
	Settings           json.RawMessage `json:"settings"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
