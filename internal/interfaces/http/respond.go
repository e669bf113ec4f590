package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// renderError traduz qualquer erro no envelope JSON {name, message, action,
// status_code}. Erros não tipados viram 500 genérico; a causa vai só para o
// log, com o contexto da requisição.
func renderError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		derr = domain.NewInternalServerError(err)
	}

	if derr.StatusCode >= 500 {
		event := log.Error().
			Str("method", c.Method()).
			Str("url", c.OriginalURL())
		if ac := GetAuthContext(c); ac != nil {
			event = event.Str("user_id", ac.UserID).Str("company_slug", ac.CompanySlug)
		}
		if derr.Cause != nil {
			event = event.Err(derr.Cause)
		}
		event.Msg("erro não tratado")
	}

	return c.Status(derr.StatusCode).JSON(derr)
}
