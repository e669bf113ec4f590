package repository

import "context"

// SetupStore executa o bootstrap da instalação em uma única transação:
// primeira empresa e primeiro admin são criados juntos ou nada é criado.
type SetupStore interface {
	WithinTransaction(ctx context.Context, fn func(companies CompanyRepository, users UserRepository) error) error
}
