package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

// CheckoutUseCase snapshot imutável dos totais do carrinho no início do
// checkout. Sem autenticação, como o carrinho.
type CheckoutUseCase struct {
	repo     repository.CheckoutRepository
	cartRepo repository.CartRepository
	userRepo repository.UserRepository
}

// NewCheckoutUseCase constrói o caso de uso com os portos de persistência.
func NewCheckoutUseCase(repo repository.CheckoutRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, cartRepo: cartRepo, userRepo: userRepo}
}

// Create congela os totais do carrinho em um registro de checkout com status
// pending. O email do cliente é vinculado oportunisticamente a um usuário
// ativo da empresa; sem correspondência, user_id fica nulo.
func (uc *CheckoutUseCase) Create(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if in.SessionToken == "" {
		return nil, errMissingCartToken()
	}
	email := strings.ToLower(strings.TrimSpace(in.ClientEmail))
	if !validEmail(email) {
		return nil, domain.NewValidationError(
			"O email informado é inválido.",
			"Informe um email válido para realizar esta operação.",
		)
	}

	items, err := uc.cartRepo.FindBySessionToken(ctx, in.SessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if len(items) == 0 {
		return nil, errEmptyCart()
	}
	totals, err := uc.cartRepo.TotalsBySessionToken(ctx, in.SessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if len(totals) != 1 {
		return nil, domain.NewValidationError(
			"O carrinho possui itens em moedas diferentes.",
			"Finalize compras de moedas diferentes em carrinhos separados.",
		)
	}
	total := totals[0]

	first := items[0]
	var userID *string
	if user, err := uc.userRepo.FindActiveByEmailInCompany(ctx, email, first.CompanyID); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if user != nil {
		userID = &user.ID
	}

	couponDiscount := decimal.Zero
	if in.CouponDiscount != nil {
		if in.CouponDiscount.IsNegative() {
			return nil, domain.NewValidationError(
				"O desconto de cupom não pode ser negativo.",
				"Informe um desconto maior ou igual a zero.",
			)
		}
		couponDiscount = *in.CouponDiscount
	}
	grandTotal := total.TotalAmount.Add(total.ShippingTotal).Sub(couponDiscount)

	now := time.Now().UTC()
	checkout, err := uc.repo.Create(ctx, &entity.Checkout{
		ID:             uuid.New().String(),
		SessionToken:   in.SessionToken,
		CompanyID:      first.CompanyID,
		EventID:        first.EventID,
		UserID:         userID,
		ClientEmail:    email,
		PaymentMethod:  in.PaymentMethod,
		CouponCode:     in.CouponCode,
		CouponDiscount: couponDiscount,
		TotalAmount:    total.TotalAmount,
		ShippingTotal:  total.ShippingTotal,
		DiscountTotal:  couponDiscount,
		GrandTotal:     grandTotal,
		Currency:       total.Currency,
		Status:         "pending",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toCheckoutResponse(checkout), nil
}

// GetLatest devolve o checkout mais recente do token.
func (uc *CheckoutUseCase) GetLatest(ctx context.Context, sessionToken string) (*dto.CheckoutResponse, error) {
	if sessionToken == "" {
		return nil, errMissingCartToken()
	}
	checkout, err := uc.repo.FindLatestBySessionToken(ctx, sessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if checkout == nil {
		return nil, domain.NewNotFoundError(
			"Não há checkout para o token informado.",
			"Inicie um checkout antes de consultá-lo.",
		)
	}
	return toCheckoutResponse(checkout), nil
}

func toCheckoutResponse(c *entity.Checkout) *dto.CheckoutResponse {
	if c == nil {
		return nil
	}
	return &dto.CheckoutResponse{
		ID:             c.ID,
		SessionToken:   c.SessionToken,
		CompanyID:      c.CompanyID,
		EventID:        c.EventID,
		UserID:         c.UserID,
		ClientEmail:    c.ClientEmail,
		PaymentMethod:  c.PaymentMethod,
		CouponCode:     c.CouponCode,
		CouponDiscount: c.CouponDiscount,
		TotalAmount:    c.TotalAmount,
		ShippingTotal:  c.ShippingTotal,
		DiscountTotal:  c.DiscountTotal,
		GrandTotal:     c.GrandTotal,
		Currency:       c.Currency,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
