package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCheckoutRepo struct {
	checkouts []*entity.Checkout
}

func (f *fakeCheckoutRepo) Create(_ context.Context, c *entity.Checkout) (*entity.Checkout, error) {
	cp := *c
	f.checkouts = append(f.checkouts, &cp)
	return &cp, nil
}

func (f *fakeCheckoutRepo) FindLatestBySessionToken(_ context.Context, token string) (*entity.Checkout, error) {
	var latest *entity.Checkout
	for _, c := range f.checkouts {
		if c.SessionToken != token {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return latest, nil
}

// fakeCheckoutUserRepo só resolve o vínculo oportunista por email.
type fakeCheckoutUserRepo struct {
	fakeNoopUserRepo
	byEmail map[string]*entity.User
}

func (f *fakeCheckoutUserRepo) FindActiveByEmailInCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok || u.CompanyID != companyID || !u.Status {
		return nil, nil
	}
	return u, nil
}

// fakeNoopUserRepo base vazia para compor fakes de UserRepository.
type fakeNoopUserRepo struct{}

func (fakeNoopUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}
func (fakeNoopUserRepo) FindOneByID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (fakeNoopUserRepo) FindOneByUsername(_ context.Context, _, _ string) (*entity.UserWithCompany, error) {
	return nil, nil
}
func (fakeNoopUserRepo) FindOneByUsernameInCompanySlug(_ context.Context, _, _ string) (*entity.UserWithCompany, error) {
	return nil, nil
}
func (fakeNoopUserRepo) FindOneByEmail(_ context.Context, _ string) (*entity.UserWithCompany, error) {
	return nil, nil
}
func (fakeNoopUserRepo) FindAllByCompany(_ context.Context, _ string) ([]*entity.UserWithCompany, error) {
	return nil, nil
}
func (fakeNoopUserRepo) FindActiveByEmailInCompany(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, nil
}
func (fakeNoopUserRepo) Update(_ context.Context, u *entity.User, _ string) (*entity.User, error) {
	return u, nil
}
func (fakeNoopUserRepo) ExistsUsername(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}
func (fakeNoopUserRepo) ExistsEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

func seedCartItem(carts *fakeCartRepo, price float64, quantity int, currency string, shipping float64) {
	carts.items = append(carts.items, &entity.CartItem{
		ID:            uuid.New().String(),
		SessionToken:  cartToken,
		CompanyID:     testCompanyID,
		EventID:       testEventID,
		TicketID:      uuid.New().String(),
		Price:         decimal.NewFromFloat(price),
		Currency:      currency,
		Quantity:      quantity,
		Status:        entity.CartStatusDraft,
		ShippingTotal: decimal.NewFromFloat(shipping),
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
}

func buildCheckoutUseCase(users *fakeCheckoutUserRepo) (*usecase.CheckoutUseCase, *fakeCheckoutRepo, *fakeCartRepo) {
	checkouts := &fakeCheckoutRepo{}
	carts := &fakeCartRepo{}
	if users == nil {
		users = &fakeCheckoutUserRepo{byEmail: map[string]*entity.User{}}
	}
	return usecase.NewCheckoutUseCase(checkouts, carts, users), checkouts, carts
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutCreate_CongelaOsTotais(t *testing.T) {
	uc, _, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 80.00, 2, "BRL", 25.00)
	seedCartItem(carts, 250.00, 1, "BRL", 25.00)

	out, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "cliente@exemplo.com.br",
	})
	require.NoError(t, err)

	assert.True(t, out.TotalAmount.Equal(decimal.NewFromFloat(410.00)),
		"80×2 + 250×1 = 410, obtido %s", out.TotalAmount)
	assert.True(t, out.ShippingTotal.Equal(decimal.NewFromFloat(25.00)),
		"a entrega é cobrada uma vez por carrinho, não por item")
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromFloat(435.00)))
	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, "BRL", out.Currency)
	assert.Equal(t, testCompanyID, out.CompanyID)
	assert.Equal(t, testEventID, out.EventID)
	assert.Nil(t, out.UserID, "sem usuário correspondente, user_id fica nulo")
}

func TestCheckoutCreate_MoedasDiferentes_Retorna400(t *testing.T) {
	uc, _, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 80.00, 1, "BRL", 0)
	seedCartItem(carts, 40.00, 1, "USD", 0)

	_, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "cliente@exemplo.com.br",
	})
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O carrinho possui itens em moedas diferentes.", derr.Message)
}

func TestCheckoutCreate_CarrinhoVazio_Retorna404(t *testing.T) {
	uc, _, _ := buildCheckoutUseCase(nil)

	_, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "cliente@exemplo.com.br",
	})
	requireDomainError(t, err, 404)
}

func TestCheckoutCreate_EmailInvalido_Retorna400(t *testing.T) {
	uc, _, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 80.00, 1, "BRL", 0)

	_, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "nao-e-um-email",
	})
	requireDomainError(t, err, 400)
}

func TestCheckoutCreate_VinculaUsuarioPorEmail(t *testing.T) {
	user := &entity.User{
		ID:        "00000000-0000-0000-0000-0000000000aa",
		CompanyID: testCompanyID,
		Email:     "cliente@exemplo.com.br",
		Status:    true,
	}
	users := &fakeCheckoutUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	uc, _, carts := buildCheckoutUseCase(users)
	seedCartItem(carts, 80.00, 1, "BRL", 0)

	out, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "Cliente@Exemplo.com.br", // normalizado para minúsculas
	})
	require.NoError(t, err)
	require.NotNil(t, out.UserID)
	assert.Equal(t, user.ID, *out.UserID)
	assert.Equal(t, "cliente@exemplo.com.br", out.ClientEmail)
}

func TestCheckoutCreate_CupomDescontaDoTotal(t *testing.T) {
	uc, _, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 100.00, 1, "BRL", 25.00)

	desconto := decimal.NewFromFloat(30.00)
	codigo := "PROMO30"
	out, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken:   cartToken,
		ClientEmail:    "cliente@exemplo.com.br",
		CouponCode:     &codigo,
		CouponDiscount: &desconto,
	})
	require.NoError(t, err)
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromFloat(95.00)),
		"100 + 25 − 30 = 95, obtido %s", out.GrandTotal)
	assert.True(t, out.DiscountTotal.Equal(desconto))
}

func TestCheckoutCreate_CupomNegativo_Retorna400(t *testing.T) {
	uc, _, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 100.00, 1, "BRL", 0)

	desconto := decimal.NewFromFloat(-1)
	_, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken:   cartToken,
		ClientEmail:    "cliente@exemplo.com.br",
		CouponDiscount: &desconto,
	})
	requireDomainError(t, err, 400)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetLatest
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckoutGetLatest_DevolveOMaisRecente(t *testing.T) {
	uc, checkouts, carts := buildCheckoutUseCase(nil)
	seedCartItem(carts, 100.00, 1, "BRL", 0)

	primeiro, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "cliente@exemplo.com.br",
	})
	require.NoError(t, err)
	// Garante ordenação por created_at, não por inserção.
	checkouts.checkouts[0].CreatedAt = checkouts.checkouts[0].CreatedAt.Add(-time.Hour)

	segundo, err := uc.Create(context.Background(), dto.CheckoutRequest{
		SessionToken: cartToken,
		ClientEmail:  "cliente@exemplo.com.br",
	})
	require.NoError(t, err)

	out, err := uc.GetLatest(context.Background(), cartToken)
	require.NoError(t, err)
	assert.Equal(t, segundo.ID, out.ID)
	assert.NotEqual(t, primeiro.ID, out.ID)
}

func TestCheckoutGetLatest_SemCheckout_Retorna404(t *testing.T) {
	uc, _, _ := buildCheckoutUseCase(nil)

	_, err := uc.GetLatest(context.Background(), cartToken)
	requireDomainError(t, err, 404)
}
