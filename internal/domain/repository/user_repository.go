package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// UserRepository porta de persistência para User. Username tem escopo de
// empresa; email é global. Métodos FindOne devolvem nil sem erro quando não há
// linha.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	FindOneByID(ctx context.Context, id string) (*entity.User, error)
	FindOneByUsername(ctx context.Context, username, companyID string) (*entity.UserWithCompany, error)
	FindOneByUsernameInCompanySlug(ctx context.Context, username, companySlug string) (*entity.UserWithCompany, error)
	FindOneByEmail(ctx context.Context, email string) (*entity.UserWithCompany, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]*entity.UserWithCompany, error)
	// FindActiveByEmailInCompany resolve um usuário ativo por email dentro da
	// empresa (vínculo oportunista do checkout).
	FindActiveByEmailInCompany(ctx context.Context, email, companyID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User, companyID string) (*entity.User, error)
	ExistsUsername(ctx context.Context, username, companyID string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
}
