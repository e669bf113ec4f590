package auth_test

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail    map[string]*entity.UserWithCompany
	byUsername map[string]*entity.UserWithCompany // chave: username + "@" + companySlug
	byID       map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:    map[string]*entity.UserWithCompany{},
		byUsername: map[string]*entity.UserWithCompany{},
		byID:       map[string]*entity.User{},
	}
}

func (f *fakeUserRepo) add(u *entity.UserWithCompany) {
	f.byEmail[u.Email] = u
	f.byUsername[u.Username+"@"+u.CompanySlug] = u
	f.byID[u.ID] = &u.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}
func (f *fakeUserRepo) FindOneByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) FindOneByUsername(_ context.Context, _, _ string) (*entity.UserWithCompany, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindOneByUsernameInCompanySlug(_ context.Context, username, companySlug string) (*entity.UserWithCompany, error) {
	return f.byUsername[username+"@"+companySlug], nil
}
func (f *fakeUserRepo) FindOneByEmail(_ context.Context, email string) (*entity.UserWithCompany, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) FindAllByCompany(_ context.Context, _ string) ([]*entity.UserWithCompany, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindActiveByEmailInCompany(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, u *entity.User, _ string) (*entity.User, error) {
	return u, nil
}
func (f *fakeUserRepo) ExistsUsername(_ context.Context, _, _ string) (bool, error) { return false, nil }
func (f *fakeUserRepo) ExistsEmail(_ context.Context, _ string) (bool, error)       { return false, nil }

type fakeSessionRepo struct {
	byToken map[string]*entity.Session
	byID    map[string]*entity.Session
	renewed map[string]time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		byToken: map[string]*entity.Session{},
		byID:    map[string]*entity.Session{},
		renewed: map[string]time.Time{},
	}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) (*entity.Session, error) {
	f.byToken[s.Token] = s
	f.byID[s.ID] = s
	return s, nil
}
func (f *fakeSessionRepo) FindValidByToken(_ context.Context, token string) (*entity.ActiveSession, error) {
	s, ok := f.byToken[token]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	return &entity.ActiveSession{Session: *s}, nil
}
func (f *fakeSessionRepo) Renew(_ context.Context, sessionID string, expiresAt time.Time) (*entity.Session, error) {
	s, ok := f.byID[sessionID]
	if !ok {
		return nil, nil
	}
	s.ExpiresAt = expiresAt
	f.renewed[sessionID] = expiresAt
	return s, nil
}
func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) (int64, error) {
	if s, ok := f.byToken[token]; ok {
		delete(f.byToken, token)
		delete(f.byID, s.ID)
		return 1, nil
	}
	return 0, nil
}
func (f *fakeSessionRepo) DeleteAllByUser(_ context.Context, _ string) (int64, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const senhaCorreta = "senha-super-secreta"

func userAtivo(t *testing.T) *entity.UserWithCompany {
	t.Helper()
	hash, err := auth.HashPassword(senhaCorreta)
	require.NoError(t, err)
	return &entity.UserWithCompany{
		User: entity.User{
			ID:        "00000000-0000-0000-0000-00000000000a",
			CompanyID: "00000000-0000-0000-0000-00000000000b",
			Username:  "maria",
			Email:     "maria@exemplo.com.br",
			Password:  hash,
			Role:      entity.RoleAdmin,
			Status:    true,
		},
		CompanyName:        "Produtora Exemplo",
		CompanySlug:        "produtora-exemplo",
		CompanyIsActive:    true,
		SubscriptionPlan:   entity.PlanFree,
		SubscriptionStatus: entity.SubscriptionActive,
	}
}

func buildUseCase(t *testing.T, user *entity.UserWithCompany) (*auth.AuthUseCase, *fakeSessionRepo) {
	t.Helper()
	users := newFakeUserRepo()
	if user != nil {
		users.add(user)
	}
	sessions := newFakeSessionRepo()
	return auth.NewAuthUseCase(users, sessions), sessions
}

func assertCredenciaisInvalidas(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
	assert.Equal(t, "UnauthorizedError", derr.Name)
	assert.Equal(t, "Dados de autenticação não conferem.", derr.Message)
	assert.Equal(t, "Verifique se os dados enviados estão corretos.", derr.Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PorEmail_CriaSessaoDe30Dias(t *testing.T) {
	uc, sessions := buildUseCase(t, userAtivo(t))

	antes := time.Now().UTC()
	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Len(t, out.Token, 96, "token deve ter 48 bytes em hex")
	_, err = hex.DecodeString(out.Token)
	assert.NoError(t, err, "token deve ser hexadecimal puro")

	esperado := antes.Add(entity.SessionTTL)
	assert.WithinDuration(t, esperado, out.ExpiresAt, 5*time.Second)

	_, existe := sessions.byToken[out.Token]
	assert.True(t, existe, "a sessão deve estar persistida")
}

func TestLogin_PorUsernameComCompanySlug(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username:    "maria",
		CompanySlug: "produtora-exemplo",
		Password:    senhaCorreta,
	})
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-00000000000a", out.UserID)
}

func TestLogin_SenhaErrada_RespostaGenerica(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: "senha-errada",
	})
	assert.Nil(t, out)
	assertCredenciaisInvalidas(t, err)
}

func TestLogin_UsuarioInexistente_MesmaRespostaDeSenhaErrada(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ninguem@exemplo.com.br",
		Password: senhaCorreta,
	})
	assertCredenciaisInvalidas(t, err)
}

func TestLogin_UsuarioInativo_MesmaRespostaGenerica(t *testing.T) {
	user := userAtivo(t)
	user.Status = false
	uc, _ := buildUseCase(t, user)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	assertCredenciaisInvalidas(t, err)
}

func TestLogin_SenhaVazia_FalhaSemConsultarRepositorio(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@exemplo.com.br"})
	assertCredenciaisInvalidas(t, err)
}

func TestLogin_SemEmailNemUsername_ErroDeValidacao(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Password: senhaCorreta})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 400, derr.StatusCode)
}

// Falhas de empresa não são colapsadas: cada causa tem mensagem própria, mas o
// status continua 401.
func TestLogin_EmpresaDesativada_MensagemPropria(t *testing.T) {
	user := userAtivo(t)
	user.CompanyIsActive = false
	uc, _ := buildUseCase(t, user)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
	assert.Equal(t, "A empresa associada a este usuário está desativada.", derr.Message)
}

func TestLogin_AssinaturaSuspensa_MensagemPropria(t *testing.T) {
	user := userAtivo(t)
	user.SubscriptionStatus = entity.SubscriptionSuspended
	uc, _ := buildUseCase(t, user)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
	assert.Equal(t, "A assinatura da empresa está suspensa.", derr.Message)
}

func TestLogin_AssinaturaCancelada_MensagemPropria(t *testing.T) {
	user := userAtivo(t)
	user.SubscriptionStatus = entity.SubscriptionCancelled
	uc, _ := buildUseCase(t, user)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
	assert.Equal(t, "A assinatura da empresa foi cancelada.", derr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevogaSessaoEDevolveContagem(t *testing.T) {
	uc, sessions := buildUseCase(t, userAtivo(t))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	require.NoError(t, err)

	res, err := uc.Logout(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RevokedSessions)
	assert.Empty(t, sessions.byToken)
}

func TestLogout_TokenDesconhecido_Idempotente(t *testing.T) {
	uc, _ := buildUseCase(t, userAtivo(t))

	res, err := uc.Logout(context.Background(), "token-que-nao-existe")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RevokedSessions)
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser — expiração deslizante
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_RenovaExpiracaoParaAgoraMais30Dias(t *testing.T) {
	uc, sessions := buildUseCase(t, userAtivo(t))

	login, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	require.NoError(t, err)

	// Simula uma sessão antiga perto de expirar.
	sessions.byID[login.ID].ExpiresAt = time.Now().UTC().Add(time.Hour)

	session, err := uc.ResolveSession(context.Background(), login.Token)
	require.NoError(t, err)
	session.CompanyName = "Produtora Exemplo"
	session.CompanySlug = "produtora-exemplo"

	antes := time.Now().UTC()
	out, err := uc.CurrentUser(context.Background(), session)
	require.NoError(t, err)

	assert.WithinDuration(t, antes.Add(entity.SessionTTL), out.SessionExpiresAt, 5*time.Second,
		"a expiração desliza para agora+30d, não acumula")
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, "produtora-exemplo", out.CompanySlug)
}

func TestResolveSession_TokenVazio_Retorna401(t *testing.T) {
	uc, _ := buildUseCase(t, nil)

	_, err := uc.ResolveSession(context.Background(), "")
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
	assert.Equal(t, "Usuário não possui sessão ativa.", derr.Message)
}

func TestResolveSession_SessaoExpirada_Retorna401(t *testing.T) {
	uc, sessions := buildUseCase(t, userAtivo(t))

	login, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: senhaCorreta,
	})
	require.NoError(t, err)

	sessions.byID[login.ID].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err = uc.ResolveSession(context.Background(), login.Token)
	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 401, derr.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Token e senha
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSessionToken_96CaracteresHexUnicos(t *testing.T) {
	a, err := auth.NewSessionToken()
	require.NoError(t, err)
	b, err := auth.NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, a, 96)
	assert.NotEqual(t, a, b)
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("abc12345")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("abc12345", hash))
	assert.False(t, auth.CheckPassword("abc12346", hash))
}
