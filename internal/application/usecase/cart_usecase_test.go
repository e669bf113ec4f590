package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de carrinho
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items []*entity.CartItem
}

func (f *fakeCartRepo) Create(_ context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	cp := *item
	f.items = append(f.items, &cp)
	return &cp, nil
}

func (f *fakeCartRepo) FindBySessionToken(_ context.Context, token string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range f.items {
		if item.SessionToken == token && item.Status == entity.CartStatusDraft {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) ClearDraftsBySessionToken(_ context.Context, token string) (int64, error) {
	var kept []*entity.CartItem
	var removed int64
	for _, item := range f.items {
		if item.SessionToken == token && item.Status == entity.CartStatusDraft {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	return removed, nil
}

// TotalsBySessionToken replica a agregação por moeda do banco.
func (f *fakeCartRepo) TotalsBySessionToken(_ context.Context, token string) ([]*entity.CartTotals, error) {
	byCurrency := map[string]*entity.CartTotals{}
	var order []string
	for _, item := range f.items {
		if item.SessionToken != token || item.Status != entity.CartStatusDraft {
			continue
		}
		t, ok := byCurrency[item.Currency]
		if !ok {
			t = &entity.CartTotals{Currency: item.Currency}
			byCurrency[item.Currency] = t
			order = append(order, item.Currency)
		}
		t.TotalItems++
		t.TotalQuantity += item.Quantity
		t.TotalAmount = t.TotalAmount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if item.ShippingTotal.GreaterThan(t.ShippingTotal) {
			t.ShippingTotal = item.ShippingTotal
		}
	}
	var out []*entity.CartTotals
	for _, currency := range order {
		t := byCurrency[currency]
		t.GrandTotal = t.TotalAmount.Add(t.ShippingTotal)
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeCartRepo) UpdateShippingBySessionToken(_ context.Context, token, method string, price decimal.Decimal) (int64, error) {
	var affected int64
	for _, item := range f.items {
		if item.SessionToken == token && item.Status == entity.CartStatusDraft {
			m := method
			item.ShippingMethod = &m
			item.ShippingTotal = price
			affected++
		}
	}
	return affected, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const cartToken = "carrinho-abc-123"

func buildCartUseCase() (*usecase.CartUseCase, *fakeCartRepo, *fakeTicketRepo) {
	carts := &fakeCartRepo{}
	tickets := newFakeTicketRepo()
	return usecase.NewCartUseCase(carts, tickets), carts, tickets
}

func itemFor(ticket *entity.Ticket, quantity int) dto.CartItemInput {
	return dto.CartItemInput{
		TicketID: ticket.ID,
		Price:    ticket.Price,
		Currency: ticket.Currency,
		Quantity: quantity,
	}
}

func replaceRequest(items ...dto.CartItemInput) dto.ReplaceCartRequest {
	return dto.ReplaceCartRequest{
		SessionToken: cartToken,
		CompanyID:    testCompanyID,
		EventID:      testEventID,
		Items:        items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Replace
// ──────────────────────────────────────────────────────────────────────────────

func TestCartReplace_SubstituiOConjuntoInteiro(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)
	vip := seedTicket(tickets, "VIP", 250.00, 20, 0)

	out, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 2)))
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	// A segunda escrita substitui, não acumula.
	out, err = uc.Replace(context.Background(), replaceRequest(itemFor(vip, 1), itemFor(pista, 3)))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	require.Len(t, out.Totals, 1)
	totals := out.Totals[0]
	assert.Equal(t, 2, totals.TotalItems)
	assert.Equal(t, 4, totals.TotalQuantity)
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromFloat(490.00)),
		"250×1 + 80×3 = 490, obtido %s", totals.TotalAmount)
	assert.Equal(t, "BRL", totals.Currency)
}

func TestCartReplace_PrecoDivergente_Retorna400(t *testing.T) {
	uc, carts, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)

	item := itemFor(pista, 1)
	item.Price = decimal.NewFromFloat(79.99)

	_, err := uc.Replace(context.Background(), replaceRequest(item))
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O preço informado não confere com o preço atual do ingresso.", derr.Message)
	assert.Empty(t, carts.items)
}

func TestCartReplace_EstoqueInsuficiente_Retorna400(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 10, 8)

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 3)))
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "Estoque insuficiente para a quantidade solicitada.", derr.Message)
}

func TestCartReplace_IngressoInativo_Retorna400(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)
	pista.IsActive = false

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 1)))
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O ingresso informado está inativo.", derr.Message)
}

func TestCartReplace_IngressoDeOutroEvento_Retorna400(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	outro := seedTicket(tickets, "OUTRO", 60.00, 100, 0)
	outro.EventID = "00000000-0000-0000-0000-0000000000ee"

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(outro, 1)))
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O ingresso não pertence ao evento informado.", derr.Message)
}

// Um item inválido no meio da lista não pode destruir o carrinho existente: a
// validação acontece inteira antes do clear+insert.
func TestCartReplace_ItemInvalidoNaoDestroiOCarrinhoAtual(t *testing.T) {
	uc, carts, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 2)))
	require.NoError(t, err)

	ruim := itemFor(pista, 1)
	ruim.Price = decimal.NewFromFloat(1.00)
	_, err = uc.Replace(context.Background(), replaceRequest(itemFor(pista, 1), ruim))
	requireDomainError(t, err, 400)

	atual, err := uc.Get(context.Background(), cartToken)
	require.NoError(t, err)
	require.Len(t, atual.Items, 1)
	assert.Equal(t, 2, atual.Items[0].Quantity, "o conjunto anterior deve permanecer intacto")
	assert.Len(t, carts.items, 1)
}

func TestCartReplace_EmpresaEEventoImutaveis(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 1)))
	require.NoError(t, err)

	req := replaceRequest(itemFor(pista, 1))
	req.EventID = "00000000-0000-0000-0000-0000000000ee"
	_, err = uc.Replace(context.Background(), req)
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "A empresa e o evento de um carrinho não podem ser alterados.", derr.Message)
}

func TestCartReplace_SemToken_Retorna400(t *testing.T) {
	uc, _, _ := buildCartUseCase()

	req := replaceRequest()
	req.SessionToken = ""
	_, err := uc.Replace(context.Background(), req)
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O sessionToken do carrinho é obrigatório.", derr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Shipping
// ──────────────────────────────────────────────────────────────────────────────

func TestCartSetShipping_Home_Soma25AoTotal(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 2)))
	require.NoError(t, err)

	out, err := uc.SetShipping(context.Background(), dto.CartShippingRequest{
		SessionToken:   cartToken,
		ShippingMethod: entity.ShippingHome,
	})
	require.NoError(t, err)

	require.Len(t, out.Totals, 1)
	assert.True(t, out.Totals[0].ShippingTotal.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, out.Totals[0].GrandTotal.Equal(decimal.NewFromFloat(185.00)),
		"80×2 + 25 = 185, obtido %s", out.Totals[0].GrandTotal)
}

func TestCartSetShipping_Digital_Gratis(t *testing.T) {
	uc, _, tickets := buildCartUseCase()
	pista := seedTicket(tickets, "PISTA", 80.00, 100, 0)

	_, err := uc.Replace(context.Background(), replaceRequest(itemFor(pista, 1)))
	require.NoError(t, err)

	out, err := uc.SetShipping(context.Background(), dto.CartShippingRequest{
		SessionToken:   cartToken,
		ShippingMethod: entity.ShippingDigital,
	})
	require.NoError(t, err)
	assert.True(t, out.Totals[0].ShippingTotal.IsZero())
}

func TestCartSetShipping_MetodoInvalido_Retorna400(t *testing.T) {
	uc, _, _ := buildCartUseCase()

	_, err := uc.SetShipping(context.Background(), dto.CartShippingRequest{
		SessionToken:   cartToken,
		ShippingMethod: "pombo-correio",
	})
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O método de entrega informado é inválido.", derr.Message)
}

func TestCartSetShipping_CarrinhoVazio_Retorna404(t *testing.T) {
	uc, _, _ := buildCartUseCase()

	_, err := uc.SetShipping(context.Background(), dto.CartShippingRequest{
		SessionToken:   cartToken,
		ShippingMethod: entity.ShippingDigital,
	})
	requireDomainError(t, err, 404)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCartGet_TokenSemItens_DevolveCarrinhoVazio(t *testing.T) {
	uc, _, _ := buildCartUseCase()

	out, err := uc.Get(context.Background(), "token-sem-nada")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Empty(t, out.Totals)
}
