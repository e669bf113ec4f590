package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
	"github.com/bilheteria/bilheteria-api/internal/domain/slug"
)

// SetupUseCase bootstrap de uma instalação vazia: cria a primeira empresa e o
// primeiro admin na mesma transação. Só funciona enquanto não existir nenhuma
// empresa.
type SetupUseCase struct {
	store repository.SetupStore
}

// NewSetupUseCase constrói o caso de uso de bootstrap.
func NewSetupUseCase(store repository.SetupStore) *SetupUseCase {
	return &SetupUseCase{store: store}
}

// Run executa o bootstrap. Qualquer falha desfaz tudo.
func (uc *SetupUseCase) Run(ctx context.Context, in dto.SetupRequest) (*dto.SetupResponse, error) {
	companyName := strings.TrimSpace(in.CompanyName)
	if companyName == "" {
		return nil, domain.NewValidationError(
			"O nome da empresa é obrigatório.",
			"Informe um nome válido para realizar esta operação.",
		)
	}
	cnpj := normalizeDocument(in.CNPJ)
	if !validCNPJ(cnpj) {
		return nil, domain.NewValidationError(
			"O CNPJ informado é inválido.",
			"Informe um CNPJ com 14 dígitos para realizar esta operação.",
		)
	}
	username := strings.TrimSpace(in.Username)
	if !validUsername(username) {
		return nil, domain.NewValidationError(
			"O username informado é inválido.",
			"Utilize apenas letras e números, entre 3 e 30 caracteres.",
		)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validEmail(email) {
		return nil, domain.NewValidationError(
			"O email informado é inválido.",
			"Informe um email válido para realizar esta operação.",
		)
	}
	if len(in.Password) < passwordMinLength {
		return nil, domain.NewValidationError(
			"A senha informada é muito curta.",
			"Utilize uma senha com pelo menos 8 caracteres.",
		)
	}

	companySlug := strings.TrimSpace(in.CompanySlug)
	if companySlug == "" {
		companySlug = slug.Make(companyName, companySlugMaxLength)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}

	var out dto.SetupResponse
	now := time.Now().UTC()
	err = uc.store.WithinTransaction(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		count, err := companies.Count(ctx)
		if err != nil {
			return domain.NewInternalServerError(err)
		}
		if count > 0 {
			return domain.NewValidationError(
				"O sistema já foi inicializado.",
				"Utilize o login de administrador existente.",
			)
		}

		company, err := companies.Create(ctx, &entity.Company{
			ID:                 uuid.New().String(),
			Name:               companyName,
			Slug:               companySlug,
			CNPJ:               cnpj,
			SubscriptionPlan:   entity.PlanFree,
			SubscriptionStatus: entity.SubscriptionActive,
			Settings:           []byte(`{}`),
			IsActive:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			return asDomainError(err)
		}
		user, err := users.Create(ctx, &entity.User{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Username:  username,
			Email:     email,
			Password:  hash,
			Role:      entity.RoleAdmin,
			Status:    true,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return asDomainError(err)
		}

		out.Company = *toCompanyResponse(company)
		out.User = *toUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return &out, nil
}
