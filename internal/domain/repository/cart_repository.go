package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// CartRepository porta de persistência para itens de carrinho, sempre com
// escopo do session_token fornecido pelo cliente.
type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	FindBySessionToken(ctx context.Context, sessionToken string) ([]*entity.CartItem, error)
	// ClearDraftsBySessionToken remove todos os itens draft do token; devolve o
	// número de linhas removidas.
	ClearDraftsBySessionToken(ctx context.Context, sessionToken string) (int64, error)
	// TotalsBySessionToken agrega os itens draft por moeda.
	TotalsBySessionToken(ctx context.Context, sessionToken string) ([]*entity.CartTotals, error)
	// UpdateShippingBySessionToken grava método e valor de entrega em todos os
	// itens draft do token.
	UpdateShippingBySessionToken(ctx context.Context, sessionToken, method string, price decimal.Decimal) (int64, error)
}
