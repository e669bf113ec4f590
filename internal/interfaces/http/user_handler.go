package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// UserHandler rotas do recurso User, sempre no escopo da empresa do chamador.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler constrói o handler injetando o caso de uso.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Create POST /api/v1/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByUsername GET /api/v1/users/:username.
func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.GetByUsername(c.UserContext(), c.Params("username"), ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.List(c.UserContext(), ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PATCH /api/v1/users/:username.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("username"), ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
