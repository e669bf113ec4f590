package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

func errMissingCartToken() *domain.Error {
	return domain.NewValidationError(
		"O sessionToken do carrinho é obrigatório.",
		"Informe o sessionToken para realizar esta operação.",
	)
}

func errEmptyCart() *domain.Error {
	return domain.NewNotFoundError(
		"Não há itens de carrinho para o token informado.",
		"Adicione itens ao carrinho antes de realizar esta operação.",
	)
}

// CartUseCase casos de uso do carrinho. Sem autenticação: a chave é um
// session_token arbitrário fornecido pelo cliente, não a sessão de login.
type CartUseCase struct {
	repo       repository.CartRepository
	ticketRepo repository.TicketRepository
}

// NewCartUseCase constrói o caso de uso com os portos de persistência.
func NewCartUseCase(repo repository.CartRepository, ticketRepo repository.TicketRepository) *CartUseCase {
	return &CartUseCase{repo: repo, ticketRepo: ticketRepo}
}

// Replace substitui o conjunto de itens draft do token: apaga tudo e reinsere.
// Empresa e evento são imutáveis depois da primeira escrita do token. A
// disponibilidade de estoque é lida antes do insert, sem reserva atômica; a
// barreira real de estoque fica no UpdateStock da venda.
func (uc *CartUseCase) Replace(ctx context.Context, in dto.ReplaceCartRequest) (*dto.CartResponse, error) {
	if in.SessionToken == "" {
		return nil, errMissingCartToken()
	}
	if in.CompanyID == "" || in.EventID == "" {
		return nil, domain.NewValidationError(
			"A empresa e o evento do carrinho são obrigatórios.",
			"Informe company_id e event_id para realizar esta operação.",
		)
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError(
			"O carrinho precisa de pelo menos um item.",
			"Informe os itens do carrinho para realizar esta operação.",
		)
	}

	existing, err := uc.repo.FindBySessionToken(ctx, in.SessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if len(existing) > 0 {
		first := existing[0]
		if first.CompanyID != in.CompanyID || first.EventID != in.EventID {
			return nil, domain.NewValidationError(
				"A empresa e o evento de um carrinho não podem ser alterados.",
				"Utilize outro sessionToken para comprar em outro evento.",
			)
		}
	}

	// Valida todos os itens antes de tocar o banco: a substituição não pode
	// deixar o carrinho pela metade por causa do último item.
	validated := make([]*entity.CartItem, 0, len(in.Items))
	now := time.Now().UTC()
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.NewValidationError(
				"A quantidade informada é inválida.",
				"Informe uma quantidade maior que zero.",
			)
		}
		ticket, err := uc.ticketRepo.FindOneByID(ctx, item.TicketID, in.CompanyID)
		if err != nil {
			return nil, domain.NewInternalServerError(err)
		}
		if ticket == nil {
			return nil, errTicketNotFound()
		}
		if ticket.EventID != in.EventID {
			return nil, domain.NewValidationError(
				"O ingresso não pertence ao evento informado.",
				"Verifique o evento do carrinho e tente novamente.",
			)
		}
		if !ticket.IsActive {
			return nil, domain.NewValidationError(
				"O ingresso informado está inativo.",
				"Escolha outro ingresso para realizar esta operação.",
			)
		}
		if ticket.StockAvailable() < item.Quantity {
			return nil, errInsufficientStock()
		}
		if !item.Price.Equal(ticket.Price) {
			return nil, domain.NewValidationError(
				"O preço informado não confere com o preço atual do ingresso.",
				"Atualize o carrinho com os preços atuais e tente novamente.",
			)
		}
		validated = append(validated, &entity.CartItem{
			ID:            uuid.New().String(),
			SessionToken:  in.SessionToken,
			CompanyID:     in.CompanyID,
			EventID:       in.EventID,
			TicketID:      ticket.ID,
			Price:         ticket.Price,
			Currency:      ticket.Currency,
			Quantity:      item.Quantity,
			Status:        entity.CartStatusDraft,
			ShippingTotal: decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if _, err := uc.repo.ClearDraftsBySessionToken(ctx, in.SessionToken); err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	for _, item := range validated {
		if _, err := uc.repo.Create(ctx, item); err != nil {
			return nil, domain.NewInternalServerError(err)
		}
	}
	return uc.Get(ctx, in.SessionToken)
}

// Get devolve os itens draft e os totais por moeda do token.
func (uc *CartUseCase) Get(ctx context.Context, sessionToken string) (*dto.CartResponse, error) {
	if sessionToken == "" {
		return nil, errMissingCartToken()
	}
	items, err := uc.repo.FindBySessionToken(ctx, sessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	totals, err := uc.repo.TotalsBySessionToken(ctx, sessionToken)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}

	out := &dto.CartResponse{
		Items:  make([]dto.CartItemResponse, 0, len(items)),
		Totals: make([]dto.CartTotalsResponse, 0, len(totals)),
	}
	for _, item := range items {
		out.Items = append(out.Items, *toCartItemResponse(item))
	}
	for _, t := range totals {
		out.Totals = append(out.Totals, dto.CartTotalsResponse{
			TotalItems:    t.TotalItems,
			TotalQuantity: t.TotalQuantity,
			TotalAmount:   t.TotalAmount,
			ShippingTotal: t.ShippingTotal,
			GrandTotal:    t.GrandTotal,
			Currency:      t.Currency,
		})
	}
	return out, nil
}

// SetShipping grava o método de entrega nos itens draft do token. A tabela de
// preços é fixa: digital grátis, home R$ 25,00.
func (uc *CartUseCase) SetShipping(ctx context.Context, in dto.CartShippingRequest) (*dto.CartResponse, error) {
	if in.SessionToken == "" {
		return nil, errMissingCartToken()
	}
	price, ok := entity.ShippingPrice(in.ShippingMethod)
	if !ok {
		return nil, domain.NewValidationError(
			"O método de entrega informado é inválido.",
			"Utilize um dos métodos: digital ou home.",
		)
	}
	affected, err := uc.repo.UpdateShippingBySessionToken(ctx, in.SessionToken, in.ShippingMethod, price)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if affected == 0 {
		return nil, errEmptyCart()
	}
	return uc.Get(ctx, in.SessionToken)
}

func toCartItemResponse(c *entity.CartItem) *dto.CartItemResponse {
	if c == nil {
		return nil
	}
	return &dto.CartItemResponse{
		ID:             c.ID,
		SessionToken:   c.SessionToken,
		CompanyID:      c.CompanyID,
		EventID:        c.EventID,
		TicketID:       c.TicketID,
		Price:          c.Price,
		Currency:       c.Currency,
		Quantity:       c.Quantity,
		Status:         c.Status,
		ShippingMethod: c.ShippingMethod,
		ShippingTotal:  c.ShippingTotal,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
