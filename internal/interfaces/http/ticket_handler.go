package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// TicketHandler rotas do recurso Ticket, sempre no escopo da empresa do chamador.
type TicketHandler struct {
	uc  *usecase.TicketUseCase
	log *logger.Logger
}

// NewTicketHandler constrói o handler injetando o caso de uso.
func NewTicketHandler(uc *usecase.TicketUseCase, log *logger.Logger) *TicketHandler {
	return &TicketHandler{uc: uc, log: log}
}

// Create POST /api/v1/tickets.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), ac.UserID, ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/v1/tickets/:id.
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
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

// List GET /api/v1/tickets. Filtros opcionais: event_id, is_active, category.
func (h *TicketHandler) List(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var filters entity.TicketFilters
	if raw := c.Query("event_id"); raw != "" {
		filters.EventID = &raw
	}
	if raw := c.Query("is_active"); raw != "" {
		isActive := raw == "true"
		filters.IsActive = &isActive
	}
	if raw := c.Query("category"); raw != "" {
		filters.Category = &raw
	}
	out, err := h.uc.List(c.UserContext(), ac.CompanyID, filters)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update PATCH /api/v1/tickets/:id.
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/v1/tickets/:id. Bloqueado depois da primeira venda.
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), ac.CompanyID); err != nil {
		return renderError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// UpdateStock POST /api/v1/tickets/:id/stock. Incremento atômico de vendas.
func (h *TicketHandler) UpdateStock(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.UpdateStock(c.UserContext(), c.Params("id"), in.Quantity, ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Clone POST /api/v1/tickets/:id/clone. Deriva um novo lote do ingresso.
func (h *TicketHandler) Clone(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CloneTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Clone(c.UserContext(), c.Params("id"), ac.UserID, ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CloneBatch POST /api/v1/tickets/clone-batch. Clona todos os ingressos ativos
// de um evento.
func (h *TicketHandler) CloneBatch(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CloneBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.CloneBatch(c.UserContext(), ac.UserID, ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
