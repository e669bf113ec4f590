package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout snapshot imutável dos totais de um carrinho no momento do início do
// checkout. UserID é resolvido oportunisticamente por email dentro da empresa.
type Checkout struct {
	ID             string
	SessionToken   string
	CompanyID      string
	EventID        string
	UserID         *string
	ClientEmail    string
	PaymentMethod  *string
	CouponCode     *string
	CouponDiscount decimal.Decimal
	TotalAmount    decimal.Decimal
	ShippingTotal  decimal.Decimal
	DiscountTotal  decimal.Decimal
	GrandTotal     decimal.Decimal
	Currency       string
	Status         string // pending no momento da criação
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
