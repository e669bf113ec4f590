package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
	"github.com/bilheteria/bilheteria-api/internal/domain/slug"
)

// companySlugMaxLength limite do slug de empresa.
const companySlugMaxLength = 64

// CompanyUseCase casos de uso de empresas (raiz do tenant).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create cria uma empresa. Slug é gerado do nome quando ausente; slug e CNPJ
// são únicos globais.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
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
	plan := in.SubscriptionPlan
	if plan == "" {
		plan = entity.PlanFree
	}
	if !validPlan(plan) {
		return nil, domain.NewValidationError(
			"O plano informado é inválido.",
			"Utilize um dos planos: free, premium ou enterprise.",
		)
	}

	companySlug := strings.TrimSpace(in.Slug)
	if companySlug == "" {
		companySlug = slug.Make(name, companySlugMaxLength)
	}
	if taken, err := uc.repo.ExistsSlug(ctx, companySlug); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O slug informado já está sendo utilizado.",
			"Utilize outro slug para realizar esta operação.",
		)
	}
	if taken, err := uc.repo.ExistsCNPJ(ctx, cnpj); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O CNPJ informado já está sendo utilizado.",
			"Utilize outro CNPJ para realizar esta operação.",
		)
	}

	settings := in.Settings
	if settings == nil {
		settings = []byte(`{}`)
	}
	now := time.Now().UTC()
	company, err := uc.repo.Create(ctx, &entity.Company{
		ID:                 uuid.New().String(),
		Name:               name,
		Slug:               companySlug,
		CNPJ:               cnpj,
		SubscriptionPlan:   plan,
		SubscriptionStatus: entity.SubscriptionActive,
		Settings:           settings,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toCompanyResponse(company), nil
}

// GetBySlug obtém uma empresa pelo slug.
func (uc *CompanyUseCase) GetBySlug(ctx context.Context, companySlug string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.FindOneBySlug(ctx, companySlug)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if company == nil {
		return nil, domain.NewNotFoundError(
			"O slug informado não foi encontrado no sistema.",
			"Verifique se o slug está digitado corretamente.",
		)
	}
	return toCompanyResponse(company), nil
}

// List lista as empresas ativas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.repo.FindAllActive(ctx)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Update aplica um patch parcial sobre a empresa do slug. Unicidade de slug e
// CNPJ só é reavaliada quando o valor muda.
func (uc *CompanyUseCase) Update(ctx context.Context, companySlug string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	current, err := uc.repo.FindOneBySlug(ctx, companySlug)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if current == nil {
		return nil, domain.NewNotFoundError(
			"O slug informado não foi encontrado no sistema.",
			"Verifique se o slug está digitado corretamente.",
		)
	}

	patch := entity.CompanyPatch{
		Name:               in.Name,
		Slug:               in.Slug,
		SubscriptionPlan:   in.SubscriptionPlan,
		SubscriptionStatus: in.SubscriptionStatus,
		Settings:           in.Settings,
	}
	if in.CNPJ != nil {
		cnpj := normalizeDocument(*in.CNPJ)
		if !validCNPJ(cnpj) {
			return nil, domain.NewValidationError(
				"O CNPJ informado é inválido.",
				"Informe um CNPJ com 14 dígitos para realizar esta operação.",
			)
		}
		patch.CNPJ = &cnpj
	}
	if in.SubscriptionPlan != nil && !validPlan(*in.SubscriptionPlan) {
		return nil, domain.NewValidationError(
			"O plano informado é inválido.",
			"Utilize um dos planos: free, premium ou enterprise.",
		)
	}
	if in.SubscriptionStatus != nil && !validSubscriptionStatus(*in.SubscriptionStatus) {
		return nil, domain.NewValidationError(
			"O status de assinatura informado é inválido.",
			"Utilize um dos status: active, suspended ou cancelled.",
		)
	}
	if patch.Slug != nil && !strings.EqualFold(*patch.Slug, current.Slug) {
		if taken, err := uc.repo.ExistsSlug(ctx, *patch.Slug); err != nil {
			return nil, domain.NewInternalServerError(err)
		} else if taken {
			return nil, domain.NewValidationError(
				"O slug informado já está sendo utilizado.",
				"Utilize outro slug para realizar esta operação.",
			)
		}
	}
	if patch.CNPJ != nil && *patch.CNPJ != current.CNPJ {
		if taken, err := uc.repo.ExistsCNPJ(ctx, *patch.CNPJ); err != nil {
			return nil, domain.NewInternalServerError(err)
		} else if taken {
			return nil, domain.NewValidationError(
				"O CNPJ informado já está sendo utilizado.",
				"Utilize outro CNPJ para realizar esta operação.",
			)
		}
	}

	next := patch.Apply(*current)
	updated, err := uc.repo.Update(ctx, &next)
	if err != nil {
		return nil, asDomainError(err)
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(
			"O slug informado não foi encontrado no sistema.",
			"Verifique se o slug está digitado corretamente.",
		)
	}
	return toCompanyResponse(updated), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Slug:               c.Slug,
		CNPJ:               c.CNPJ,
		SubscriptionPlan:   c.SubscriptionPlan,
		SubscriptionStatus: c.SubscriptionStatus,
		Settings:           c.Settings,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// asDomainError preserva erros tipados vindos das camadas de baixo (ex.: o
// backstop de violação de unicidade do repositório) e embrulha o resto em 500.
func asDomainError(err error) error {
	if derr, ok := err.(*domain.Error); ok {
		return derr
	}
	return domain.NewInternalServerError(err)
}
