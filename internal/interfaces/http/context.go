package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// localAuthContext chave em c.Locals onde o middleware deposita o contexto
// autenticado.
const localAuthContext = "auth_context"

// AuthContext contexto injetado pelo middleware de autenticação: usuário,
// empresa e sessão da requisição.
type AuthContext struct {
	UserID             string
	Username           string
	Email              string
	Role               string
	CompanyID          string
	CompanyName        string
	CompanySlug        string
	SubscriptionPlan   string
	SubscriptionStatus string
	SessionID          string
	SessionToken       string
}

func setAuthContext(c *fiber.Ctx, session *entity.ActiveSession) {
	c.Locals(localAuthContext, &AuthContext{
		UserID:             session.UserID,
		Username:           session.Username,
		Email:              session.Email,
		Role:               session.Role,
		CompanyID:          session.CompanyID,
		CompanyName:        session.CompanyName,
		CompanySlug:        session.CompanySlug,
		SubscriptionPlan:   session.SubscriptionPlan,
		SubscriptionStatus: session.SubscriptionStatus,
		SessionID:          session.ID,
		SessionToken:       session.Token,
	})
}

// GetAuthContext devolve o contexto autenticado da requisição (depois do
// middleware de auth) ou nil em rotas públicas.
func GetAuthContext(c *fiber.Ctx) *AuthContext {
	v := c.Locals(localAuthContext)
	if v == nil {
		return nil
	}
	ac, _ := v.(*AuthContext)
	return ac
}
