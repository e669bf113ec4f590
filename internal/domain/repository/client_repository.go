package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// ClientRepository porta de persistência para Client (sempre com escopo de empresa).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)
	FindOneByID(ctx context.Context, id, companyID string) (*entity.Client, error)
	FindOneByCpfCnpj(ctx context.Context, cpfcnpj, companyID string) (*entity.Client, error)
	FindAllByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ClientWithCreator, error)
	Update(ctx context.Context, client *entity.Client, companyID string) (*entity.Client, error)
	ExistsCpfCnpj(ctx context.Context, cpfcnpj, companyID string) (bool, error)
}
