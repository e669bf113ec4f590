package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest início de checkout para os itens draft do token.
type CheckoutRequest struct {
	SessionToken   string           `json:"sessionToken"`
	ClientEmail    string           `json:"client_email"`
	PaymentMethod  *string          `json:"payment_method"`
	CouponCode     *string          `json:"coupon_code"`
	CouponDiscount *decimal.Decimal `json:"coupon_discount"`
}

// CheckoutResponse snapshot criado do checkout.
type CheckoutResponse struct {
	ID             string          `json:"id"`
	SessionToken   string          `json:"sessionToken"`
	CompanyID      string          `json:"company_id"`
	EventID        string          `json:"event_id"`
	UserID         *string         `json:"user_id"`
	ClientEmail    string          `json:"client_email"`
	PaymentMethod  *string         `json:"payment_method"`
	CouponCode     *string         `json:"coupon_code"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ShippingTotal  decimal.Decimal `json:"shipping_total"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
