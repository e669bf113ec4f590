package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

const cartColumns = `id, session_token, company_id, event_id, ticket_id, price, currency,
	quantity, status, shipping_method, shipping_total, created_at, updated_at`

// CartRepo implementação do porto CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository constrói o adaptador de persistência para carrinhos. Passar pool ou tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

func scanCartItem(row interface{ Scan(...any) error }) (*entity.CartItem, error) {
	var c entity.CartItem
	err := row.Scan(
		&c.ID, &c.SessionToken, &c.CompanyID, &c.EventID, &c.TicketID, &c.Price,
		&c.Currency, &c.Quantity, &c.Status, &c.ShippingMethod, &c.ShippingTotal,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste um item de carrinho.
func (r *CartRepo) Create(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	query := `
		INSERT INTO cart_items (
			id, session_token, company_id, event_id, ticket_id, price, currency,
			quantity, status, shipping_method, shipping_total, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, timezone('utc', now()), timezone('utc', now()))
		RETURNING ` + cartColumns
	created, err := scanCartItem(r.q.QueryRow(ctx, query,
		item.ID, item.SessionToken, item.CompanyID, item.EventID, item.TicketID,
		item.Price, item.Currency, item.Quantity, item.Status, item.ShippingMethod,
		item.ShippingTotal,
	))
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return created, nil
}

// FindBySessionToken lista os itens draft do token, do mais antigo ao mais novo.
func (r *CartRepo) FindBySessionToken(ctx context.Context, sessionToken string) ([]*entity.CartItem, error) {
	query := `SELECT ` + cartColumns + `
	FROM cart_items
	WHERE session_token = $1 AND status = 'draft'
	ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var list []*entity.CartItem
	for rows.Next() {
		c, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ClearDraftsBySessionToken remove todos os itens draft do token.
func (r *CartRepo) ClearDraftsBySessionToken(ctx context.Context, sessionToken string) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM cart_items WHERE session_token = $1 AND status = 'draft'`, sessionToken,
	)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// TotalsBySessionToken agrega os itens draft do token por moeda. O shipping é
// MAX porque o valor é replicado em todos os itens do token.
func (r *CartRepo) TotalsBySessionToken(ctx context.Context, sessionToken string) ([]*entity.CartTotals, error) {
	query := `
		SELECT COUNT(*)::int AS total_items,
			COALESCE(SUM(quantity), 0)::int AS total_quantity,
			COALESCE(SUM(price * quantity), 0) AS total_amount,
			COALESCE(MAX(shipping_total), 0) AS shipping_total,
			currency
		FROM cart_items
		WHERE session_token = $1 AND status = 'draft'
		GROUP BY currency
		ORDER BY currency ASC`
	rows, err := r.q.Query(ctx, query, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("cart totals: %w", err)
	}
	defer rows.Close()

	var list []*entity.CartTotals
	for rows.Next() {
		var t entity.CartTotals
		if err := rows.Scan(&t.TotalItems, &t.TotalQuantity, &t.TotalAmount, &t.ShippingTotal, &t.Currency); err != nil {
			return nil, fmt.Errorf("scan cart totals: %w", err)
		}
		t.GrandTotal = t.TotalAmount.Add(t.ShippingTotal)
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateShippingBySessionToken grava método e valor de entrega em todos os
// itens draft do token.
func (r *CartRepo) UpdateShippingBySessionToken(ctx context.Context, sessionToken, method string, price decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE cart_items
		SET shipping_method = $2, shipping_total = $3, updated_at = timezone('utc', now())
		WHERE session_token = $1 AND status = 'draft'`,
		sessionToken, method, price,
	)
	if err != nil {
		return 0, fmt.Errorf("update cart shipping: %w", err)
	}
	return cmd.RowsAffected(), nil
}
