package entity

import "time"

// Client cliente final cadastrado por uma empresa. CPF/CNPJ único por empresa.
type Client struct {
	ID        string
	UserID    string
	CompanyID string
	Name      string
	CpfCnpj   string
	Premium   bool
	AddressID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientWithCreator cliente com o username de quem o cadastrou.
type ClientWithCreator struct {
	Client
	CreatedByUsername string
}

// ClientPatch campos atualizáveis de Client.
type ClientPatch struct {
	Name      *string
	CpfCnpj   *string
	Premium   *bool
	AddressID *string
}

// Apply devolve uma cópia de c com os campos do patch aplicados.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CpfCnpj != nil {
		c.CpfCnpj = *p.CpfCnpj
	}
	if p.Premium != nil {
		c.Premium = *p.Premium
	}
	if p.AddressID != nil {
		c.AddressID = p.AddressID
	}
	return c
}
