package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// CheckoutRepository porta de persistência para snapshots de checkout.
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *entity.Checkout) (*entity.Checkout, error)
	// FindLatestBySessionToken devolve o checkout mais recente do token ou nil.
	FindLatestBySessionToken(ctx context.Context, sessionToken string) (*entity.Checkout, error)
}
