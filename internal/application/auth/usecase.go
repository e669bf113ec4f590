package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

// ErrInvalidCredentials resposta única para qualquer falha de credencial:
// usuário inexistente, senha errada ou usuário inativo são indistinguíveis
// para quem está do lado de fora.
func ErrInvalidCredentials() *domain.Error {
	return domain.NewUnauthorizedError(
		"Dados de autenticação não conferem.",
		"Verifique se os dados enviados estão corretos.",
	)
}

// ErrInvalidSession resposta única para sessão ausente, expirada ou com
// usuário/empresa inativos.
func ErrInvalidSession() *domain.Error {
	return domain.NewUnauthorizedError(
		"Usuário não possui sessão ativa.",
		"Verifique se este usuário está logado.",
	)
}

// AuthUseCase casos de uso de autenticação: login, logout e resolução de sessão.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo}
}

// Login autentica por email+password ou por username+company_slug+password e
// cria uma sessão opaca de 30 dias. Qualquer falha de credencial colapsa em
// ErrInvalidCredentials, sem revelar qual parte falhou.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	if in.Password == "" {
		return nil, ErrInvalidCredentials()
	}

	var user *entity.UserWithCompany
	var err error
	switch {
	case in.Email != "":
		user, err = uc.userRepo.FindOneByEmail(ctx, strings.TrimSpace(in.Email))
	case in.Username != "" && in.CompanySlug != "":
		user, err = uc.userRepo.FindOneByUsernameInCompanySlug(ctx, strings.TrimSpace(in.Username), strings.TrimSpace(in.CompanySlug))
	default:
		return nil, domain.NewValidationError(
			"Informe email ou username com company_slug para realizar o login.",
			"Verifique os dados enviados e tente novamente.",
		)
	}
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if user == nil || !user.Status || !CheckPassword(in.Password, user.Password) {
		return nil, ErrInvalidCredentials()
	}
	// A empresa falhando não é colapsada: cada causa tem mensagem própria,
	// sempre com 401.
	if !user.CompanyIsActive {
		return nil, domain.NewUnauthorizedError(
			"A empresa associada a este usuário está desativada.",
			"Entre em contato com o suporte.",
		)
	}
	switch user.SubscriptionStatus {
	case entity.SubscriptionSuspended:
		return nil, domain.NewUnauthorizedError(
			"A assinatura da empresa está suspensa.",
			"Regularize a assinatura para continuar utilizando o sistema.",
		)
	case entity.SubscriptionCancelled:
		return nil, domain.NewUnauthorizedError(
			"A assinatura da empresa foi cancelada.",
			"Entre em contato com o suporte para reativá-la.",
		)
	}

	token, err := NewSessionToken()
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	now := time.Now().UTC()
	session, err := uc.sessionRepo.Create(ctx, &entity.Session{
		ID:        uuid.New().String(),
		Token:     token,
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		ExpiresAt: now.Add(entity.SessionTTL),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	return toSessionResponse(session), nil
}

// Logout revoga a sessão do token. Idempotente: token inexistente não é erro.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) (*dto.LogoutResponse, error) {
	if token == "" {
		return nil, ErrInvalidSession()
	}
	revoked, err := uc.sessionRepo.DeleteByToken(ctx, token)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	return &dto.LogoutResponse{RevokedSessions: revoked}, nil
}

// ResolveSession valida o token e devolve o contexto de usuário/empresa. Token
// vazio, expirado ou com usuário/empresa inativos colapsam em ErrInvalidSession.
func (uc *AuthUseCase) ResolveSession(ctx context.Context, token string) (*entity.ActiveSession, error) {
	if token == "" {
		return nil, ErrInvalidSession()
	}
	session, err := uc.sessionRepo.FindValidByToken(ctx, token)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if session == nil {
		return nil, ErrInvalidSession()
	}
	return session, nil
}

// CurrentUser devolve o usuário da sessão e desliza a expiração para
// agora+30d. A renovação falhando não derruba a leitura.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, session *entity.ActiveSession) (*dto.CurrentUserResponse, error) {
	user, err := uc.userRepo.FindOneByID(ctx, session.UserID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if user == nil {
		return nil, ErrInvalidSession()
	}

	expiresAt := session.ExpiresAt
	if renewed, err := uc.sessionRepo.Renew(ctx, session.ID, time.Now().UTC().Add(entity.SessionTTL)); err == nil && renewed != nil {
		expiresAt = renewed.ExpiresAt
	}

	return &dto.CurrentUserResponse{
		UserResponse:       *toUserResponse(user),
		CompanyName:        session.CompanyName,
		CompanySlug:        session.CompanySlug,
		SubscriptionPlan:   session.SubscriptionPlan,
		SubscriptionStatus: session.SubscriptionStatus,
		SessionExpiresAt:   expiresAt,
	}, nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		ID:        s.ID,
		Token:     s.Token,
		UserID:    s.UserID,
		CompanyID: s.CompanyID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
