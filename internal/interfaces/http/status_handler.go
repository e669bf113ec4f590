package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// StatusHandler rota pública de observabilidade do serviço.
type StatusHandler struct {
	uc  *usecase.StatusUseCase
	log *logger.Logger
}

// NewStatusHandler constrói o handler injetando o caso de uso.
func NewStatusHandler(uc *usecase.StatusUseCase, log *logger.Logger) *StatusHandler {
	return &StatusHandler{uc: uc, log: log}
}

// Get GET /api/v1/status.
func (h *StatusHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetupHandler rota pública de bootstrap da instalação.
type SetupHandler struct {
	uc  *usecase.SetupUseCase
	log *logger.Logger
}

// NewSetupHandler constrói o handler injetando o caso de uso.
func NewSetupHandler(uc *usecase.SetupUseCase, log *logger.Logger) *SetupHandler {
	return &SetupHandler{uc: uc, log: log}
}

// Run POST /api/v1/setup. Só funciona em instalação vazia.
func (h *SetupHandler) Run(c *fiber.Ctx) error {
	var in dto.SetupRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Run(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
