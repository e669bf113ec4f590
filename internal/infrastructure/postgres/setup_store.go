package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.SetupStore = (*SetupStore)(nil)

// SetupStore transação de bootstrap sobre o pool: repositórios construídos
// sobre a tx, commit apenas se fn devolver nil.
type SetupStore struct {
	pool *pgxpool.Pool
}

// NewSetupStore constrói o executor transacional de bootstrap.
func NewSetupStore(pool *pgxpool.Pool) *SetupStore {
	return &SetupStore{pool: pool}
}

// WithinTransaction abre a transação, entrega os repositórios escopados a ela
// e faz commit/rollback conforme o retorno de fn.
func (s *SetupStore) WithinTransaction(ctx context.Context, fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin setup tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewCompanyRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit setup tx: %w", err)
	}
	return nil
}
