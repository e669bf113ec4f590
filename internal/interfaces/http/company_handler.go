package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// CompanyHandler rotas do recurso Company.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler constrói o handler injetando o caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// Create POST /api/v1/companies.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBySlug GET /api/v1/companies/:slug. Não-admins só enxergam a própria
// empresa.
func (h *CompanyHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if ac := GetAuthContext(c); ac != nil && ac.Role != entity.RoleAdmin && !strings.EqualFold(ac.CompanySlug, slug) {
		return renderError(c, h.log, domain.NewUnauthorizedError(
			"Acesso negado a esta empresa.",
			"Verifique se o slug informado pertence à sua empresa.",
		))
	}
	out, err := h.uc.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/companies.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PATCH /api/v1/companies/:slug.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("slug"), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
