package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

func errInvalidBody() *domain.Error {
	return domain.NewValidationError(
		"O corpo da requisição é inválido.",
		"Envie um JSON válido para realizar esta operação.",
	)
}

// SessionHandler rotas de sessão: login, logout e usuário corrente.
type SessionHandler struct {
	uc           *auth.AuthUseCase
	log          *logger.Logger
	secureCookie bool
}

// NewSessionHandler constrói o handler injetando o caso de uso.
func NewSessionHandler(uc *auth.AuthUseCase, log *logger.Logger, secureCookie bool) *SessionHandler {
	return &SessionHandler{uc: uc, log: log, secureCookie: secureCookie}
}

// Login POST /api/v1/sessions. Devolve 201 com a sessão e grava o cookie.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return renderError(c, h.log, errInvalidBody())
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return renderError(c, h.log, err)
	}
	setSessionCookie(c, out.Token, h.secureCookie)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout DELETE /api/v1/sessions. Revoga a sessão do cookie e o apaga.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	out, err := h.uc.Logout(c.UserContext(), ac.SessionToken)
	if err != nil {
		return renderError(c, h.log, err)
	}
	clearSessionCookie(c, h.secureCookie)
	return c.JSON(out)
}

// CurrentUser GET /api/v1/user. Desliza a expiração da sessão e regrava o
// cookie com o novo prazo.
func (h *SessionHandler) CurrentUser(c *fiber.Ctx) error {
	ac := GetAuthContext(c)
	if ac == nil {
		return renderError(c, h.log, auth.ErrInvalidSession())
	}
	session, err := h.uc.ResolveSession(c.UserContext(), ac.SessionToken)
	if err != nil {
		return renderError(c, h.log, err)
	}
	out, err := h.uc.CurrentUser(c.UserContext(), session)
	if err != nil {
		return renderError(c, h.log, err)
	}
	setSessionCookie(c, ac.SessionToken, h.secureCookie)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(out)
}
