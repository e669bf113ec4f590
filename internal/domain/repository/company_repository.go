package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// CompanyRepository porta de persistência para Company (raiz do tenant; buscas
// por id/slug/cnpj não têm escopo de empresa). Métodos FindOne devolvem nil sem
// erro quando não há linha.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	FindOneByID(ctx context.Context, id string) (*entity.Company, error)
	FindOneBySlug(ctx context.Context, slug string) (*entity.Company, error)
	FindOneByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	FindAllActive(ctx context.Context) ([]*entity.Company, error)
	// Count conta todas as empresas, ativas ou não (barreira do bootstrap).
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	ExistsSlug(ctx context.Context, slug string) (bool, error)
	ExistsCNPJ(ctx context.Context, cnpj string) (bool, error)
}
