package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// ClientHandler rotas do recurso Client, sempre no escopo da empresa do chamador.
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler constrói o handler injetando o caso de uso.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// Create POST /api/v1/clients.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), ac.UserID, ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/v1/clients/:id.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/clients.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.List(c.UserContext(), ac.CompanyID, c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PATCH /api/v1/clients/:id.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
