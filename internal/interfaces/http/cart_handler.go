package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// CartHandler rotas do carrinho. Públicas: a chave é o sessionToken arbitrário
// do cliente, não a sessão de login.
type CartHandler struct {
	uc  *usecase.CartUseCase
	log *logger.Logger
}

// NewCartHandler constrói o handler injetando o caso de uso.
func NewCartHandler(uc *usecase.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Replace POST /api/v1/carts. Substitui todos os itens draft do token.
func (h *CartHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceCartRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Replace(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/v1/carts?sessionToken=...
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Query("sessionToken"))
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetShipping POST /api/v1/carts/shipping.
func (h *CartHandler) SetShipping(c *fiber.Ctx) error {
	var in dto.CartShippingRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.SetShipping(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
