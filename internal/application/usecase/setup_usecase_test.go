package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: loja transacional do bootstrap
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) (*entity.Company, error) {
	cp := *c
	f.companies[c.ID] = &cp
	return &cp, nil
}
func (f *fakeCompanyRepo) FindOneByID(_ context.Context, id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) FindOneBySlug(_ context.Context, slug string) (*entity.Company, error) {
	for _, c := range f.companies {
		if strings.EqualFold(c.Slug, slug) {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) FindOneByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.CNPJ == cnpj {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) FindAllActive(_ context.Context) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCompanyRepo) Count(_ context.Context) (int, error) {
	return len(f.companies), nil
}
func (f *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) (*entity.Company, error) {
	cp := *c
	f.companies[c.ID] = &cp
	return &cp, nil
}
func (f *fakeCompanyRepo) ExistsSlug(_ context.Context, slug string) (bool, error) {
	c, _ := f.FindOneBySlug(context.Background(), slug)
	return c != nil, nil
}
func (f *fakeCompanyRepo) ExistsCNPJ(_ context.Context, cnpj string) (bool, error) {
	c, _ := f.FindOneByCNPJ(context.Background(), cnpj)
	return c != nil, nil
}

// fakeSetupUserRepo guarda os usuários criados no bootstrap.
type fakeSetupUserRepo struct {
	fakeNoopUserRepo
	created []*entity.User
}

func (f *fakeSetupUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	cp := *u
	f.created = append(f.created, &cp)
	return &cp, nil
}

// fakeSetupStore entrega os repositórios direto, sem transação real.
type fakeSetupStore struct {
	companies *fakeCompanyRepo
	users     *fakeSetupUserRepo
}

func (f *fakeSetupStore) WithinTransaction(_ context.Context, fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error {
	return fn(f.companies, f.users)
}

func buildSetupUseCase() (*usecase.SetupUseCase, *fakeSetupStore) {
	store := &fakeSetupStore{companies: newFakeCompanyRepo(), users: &fakeSetupUserRepo{}}
	return usecase.NewSetupUseCase(store), store
}

func setupRequest() dto.SetupRequest {
	return dto.SetupRequest{
		CompanyName: "Produtora Exemplo",
		CNPJ:        "12.345.678/0001-90",
		Username:    "admin",
		Email:       "admin@exemplo.com.br",
		Password:    "senha-forte-123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Run
// ──────────────────────────────────────────────────────────────────────────────

func TestSetupRun_CriaEmpresaEAdmin(t *testing.T) {
	uc, store := buildSetupUseCase()

	out, err := uc.Run(context.Background(), setupRequest())
	require.NoError(t, err)

	assert.Equal(t, "Produtora Exemplo", out.Company.Name)
	assert.Equal(t, "produtora-exemplo", out.Company.Slug, "slug gerado do nome quando ausente")
	assert.Equal(t, "12345678000190", out.Company.CNPJ, "CNPJ normalizado para dígitos")
	assert.Equal(t, entity.PlanFree, out.Company.SubscriptionPlan)
	assert.Equal(t, entity.SubscriptionActive, out.Company.SubscriptionStatus)

	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, out.Company.ID, out.User.CompanyID)

	require.Len(t, store.users.created, 1)
	hash := store.users.created[0].Password
	assert.NotEqual(t, "senha-forte-123", hash, "a senha nunca é persistida em texto plano")
	assert.True(t, auth.CheckPassword("senha-forte-123", hash))
}

func TestSetupRun_SistemaJaInicializado_Retorna400(t *testing.T) {
	uc, store := buildSetupUseCase()
	store.companies.companies["ja-existe"] = &entity.Company{ID: "ja-existe"}

	_, err := uc.Run(context.Background(), setupRequest())
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O sistema já foi inicializado.", derr.Message)
	assert.Empty(t, store.users.created, "nenhum usuário pode ter sido criado")
}

func TestSetupRun_CNPJInvalido_Retorna400(t *testing.T) {
	uc, _ := buildSetupUseCase()

	req := setupRequest()
	req.CNPJ = "123"
	_, err := uc.Run(context.Background(), req)
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O CNPJ informado é inválido.", derr.Message)
}

func TestSetupRun_SenhaCurta_Retorna400(t *testing.T) {
	uc, _ := buildSetupUseCase()

	req := setupRequest()
	req.Password = "abc123"
	_, err := uc.Run(context.Background(), req)
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "A senha informada é muito curta.", derr.Message)
}

func TestSetupRun_UsernameInvalido_Retorna400(t *testing.T) {
	uc, _ := buildSetupUseCase()

	req := setupRequest()
	req.Username = "ab" // abaixo do mínimo de 3 caracteres
	_, err := uc.Run(context.Background(), req)
	requireDomainError(t, err, 400)
}

func TestSetupRun_SlugExplicitoPreservado(t *testing.T) {
	uc, _ := buildSetupUseCase()

	req := setupRequest()
	req.CompanySlug = "minha-produtora"
	out, err := uc.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "minha-produtora", out.Company.Slug)
}
