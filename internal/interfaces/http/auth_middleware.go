package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// SessionResolver resolve um token de sessão em um contexto autenticado.
// Satisfeito pelo AuthUseCase; os testes injetam um resolvedor em memória.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*entity.ActiveSession, error)
}

// RequireAuth resolve o cookie de sessão e injeta o AuthContext. Cookie
// ausente, sessão expirada e usuário/empresa inativos colapsam na mesma
// resposta 401; quem está de fora não distingue as causas.
func RequireAuth(resolver SessionResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return renderError(c, log, auth.ErrInvalidSession())
		}
		session, err := resolver.ResolveSession(c.UserContext(), token)
		if err != nil {
			return renderError(c, log, err)
		}
		setAuthContext(c, session)
		return c.Next()
	}
}

// RequireRole barreira de papel: o nível do chamador precisa ser >= o menor
// nível entre os papéis permitidos. Falha com 403, não 401.
func RequireRole(log *logger.Logger, allowedRoles ...string) fiber.Handler {
	minLevel := 0
	for _, role := range allowedRoles {
		level := entity.RoleLevel(role)
		if minLevel == 0 || (level > 0 && level < minLevel) {
			minLevel = level
		}
	}
	return func(c *fiber.Ctx) error {
		ac := GetAuthContext(c)
		if ac == nil {
			return renderError(c, log, auth.ErrInvalidSession())
		}
		if minLevel == 0 || entity.RoleLevel(ac.Role) < minLevel {
			return renderError(c, log, domain.NewForbiddenError(
				"Usuário não possui permissão para realizar esta operação.",
				"Verifique se o seu papel possui acesso a este recurso.",
			))
		}
		return c.Next()
	}
}

// RequireActiveSubscription exige assinatura ativa da empresa; falha com 401.
func RequireActiveSubscription(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac := GetAuthContext(c)
		if ac == nil {
			return renderError(c, log, auth.ErrInvalidSession())
		}
		if ac.SubscriptionStatus != entity.SubscriptionActive {
			return renderError(c, log, domain.NewUnauthorizedError(
				"A assinatura da empresa não está ativa.",
				"Regularize a assinatura para continuar utilizando o sistema.",
			))
		}
		return c.Next()
	}
}

// RequirePlan exige que o plano da empresa esteja entre os permitidos; falha
// com 401.
func RequirePlan(log *logger.Logger, allowedPlans ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac := GetAuthContext(c)
		if ac == nil {
			return renderError(c, log, auth.ErrInvalidSession())
		}
		for _, plan := range allowedPlans {
			if ac.SubscriptionPlan == plan {
				return c.Next()
			}
		}
		return renderError(c, log, domain.NewUnauthorizedError(
			"O plano da empresa não possui acesso a este recurso.",
			"Atualize o plano da empresa para utilizar este recurso.",
		))
	}
}
