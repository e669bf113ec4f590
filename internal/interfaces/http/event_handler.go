package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// EventHandler rotas do recurso Event, sempre no escopo da empresa do chamador.
type EventHandler struct {
	uc       *usecase.EventUseCase
	ticketUC *usecase.TicketUseCase
	log      *logger.Logger
}

// NewEventHandler constrói o handler injetando os casos de uso.
func NewEventHandler(uc *usecase.EventUseCase, ticketUC *usecase.TicketUseCase, log *logger.Logger) *EventHandler {
	return &EventHandler{uc: uc, ticketUC: ticketUC, log: log}
}

// Create POST /api/v1/events.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Create(c.UserContext(), ac.UserID, ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBySlug GET /api/v1/events/:slug.
func (h *EventHandler) GetBySlug(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"), ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/events. Filtros opcionais: active, start_date, category.
func (h *EventHandler) List(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var filters entity.EventFilters
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filters.Active = &active
	}
	if raw := c.Query("start_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			filters.StartDate = &parsed
		}
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

// Update PATCH /api/v1/events/:slug.
func (h *EventHandler) Update(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("slug"), ac.CompanyID, in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/v1/events/:slug. Bloqueado enquanto houver ingressos ativos.
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	if err := h.uc.Delete(c.UserContext(), c.Params("slug"), ac.CompanyID); err != nil {
		return renderError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ListTickets GET /api/v1/events/:slug/tickets.
func (h *EventHandler) ListTickets(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.ticketUC.ListByEventSlug(c.UserContext(), c.Params("slug"), ac.CompanyID)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}
