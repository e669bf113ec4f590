package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// CheckoutHandler rotas de checkout. Públicas, como o carrinho.
type CheckoutHandler struct {
	uc  *usecase.CheckoutUseCase
	log *logger.Logger
}

// NewCheckoutHandler constrói o handler injetando o caso de uso.
func NewCheckoutHandler(uc *usecase.CheckoutUseCase, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, log: log}
}

// Create POST /api/v1/checkout. Congela os totais do carrinho.
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetLatest GET /api/v1/checkout?sessionToken=...
func (h *CheckoutHandler) GetLatest(c *fiber.Ctx) error {
	out, err := h.uc.GetLatest(c.UserContext(), c.Query("sessionToken"))
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
