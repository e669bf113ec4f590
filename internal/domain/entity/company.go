package entity

import (
	"encoding/json"
	"time"
)

// Planos e status de subscription válidos para Company.
const (
	PlanFree       = "free"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"

	SubscriptionActive    = "active"
	SubscriptionSuspended = "suspended"
	SubscriptionCancelled = "cancelled"
)

// Company representa uma organização/tenant do sistema. Todo dado de negócio
// (usuários, eventos, ingressos, clientes) é isolado por company_id.
type Company struct {
	ID                 string
	Name               string
	Slug               string // único, case-insensitive
	CNPJ               string // único, 14 dígitos
	SubscriptionPlan   string // free, premium, enterprise
	SubscriptionStatus string // active, suspended, cancelled
	Settings           json.RawMessage
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CompanyPatch campos atualizáveis de Company. Ponteiro nil = campo não enviado.
type CompanyPatch struct {
	Name               *string
	Slug               *string
	CNPJ               *string
	SubscriptionPlan   *string
	SubscriptionStatus *string
	Settings           json.RawMessage
}

// Apply devolve uma cópia de c com os campos do patch aplicados.
func (p CompanyPatch) Apply(c Company) Company {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.CNPJ != nil {
		c.CNPJ = *p.CNPJ
	}
	if p.SubscriptionPlan != nil {
		c.SubscriptionPlan = *p.SubscriptionPlan
	}
	if p.SubscriptionStatus != nil {
		c.SubscriptionStatus = *p.SubscriptionStatus
	}
	if p.Settings != nil {
		c.Settings = p.Settings
	}
	return c
}
