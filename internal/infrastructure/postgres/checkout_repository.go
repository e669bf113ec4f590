package postgres

import (
	"context"
	"fmt"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.CheckoutRepository = (*CheckoutRepo)(nil)

const checkoutColumns = `id, session_token, company_id, event_id, user_id, client_email,
	payment_method, coupon_code, coupon_discount, total_amount, shipping_total,
	discount_total, grand_total, currency, status, created_at, updated_at`

// CheckoutRepo implementação do porto CheckoutRepository sobre PostgreSQL.
type CheckoutRepo struct {
	q Querier
}

// NewCheckoutRepository constrói o adaptador de persistência para checkouts. Passar pool ou tx (Querier).
func NewCheckoutRepository(q Querier) *CheckoutRepo {
	return &CheckoutRepo{q: q}
}

func scanCheckout(row interface{ Scan(...any) error }) (*entity.Checkout, error) {
	var c entity.Checkout
	err := row.Scan(
		&c.ID, &c.SessionToken, &c.CompanyID, &c.EventID, &c.UserID, &c.ClientEmail,
		&c.PaymentMethod, &c.CouponCode, &c.CouponDiscount, &c.TotalAmount,
		&c.ShippingTotal, &c.DiscountTotal, &c.GrandTotal, &c.Currency, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste o snapshot de checkout.
func (r *CheckoutRepo) Create(ctx context.Context, checkout *entity.Checkout) (*entity.Checkout, error) {
	query := `
		INSERT INTO checkouts (
			id, session_token, company_id, event_id, user_id, client_email,
			payment_method, coupon_code, coupon_discount, total_amount, shipping_total,
			discount_total, grand_total, currency, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			timezone('utc', now()), timezone('utc', now()))
		RETURNING ` + checkoutColumns
	created, err := scanCheckout(r.q.QueryRow(ctx, query,
		checkout.ID, checkout.SessionToken, checkout.CompanyID, checkout.EventID,
		checkout.UserID, checkout.ClientEmail, checkout.PaymentMethod, checkout.CouponCode,
		checkout.CouponDiscount, checkout.TotalAmount, checkout.ShippingTotal,
		checkout.DiscountTotal, checkout.GrandTotal, checkout.Currency, checkout.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("insert checkout: %w", err)
	}
	return created, nil
}

// FindLatestBySessionToken devolve o checkout mais recente do token ou nil.
func (r *CheckoutRepo) FindLatestBySessionToken(ctx context.Context, sessionToken string) (*entity.Checkout, error) {
	query := `SELECT ` + checkoutColumns + `
	FROM checkouts
	WHERE session_token = $1
	ORDER BY created_at DESC
	LIMIT 1`
	c, err := scanCheckout(r.q.QueryRow(ctx, query, sessionToken))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest checkout: %w", err)
	}
	return c, nil
}
