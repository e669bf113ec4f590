package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionColumns = `id, token, user_id, company_id, expires_at, created_at, updated_at`

// SessionRepo implementação do porto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository constrói o adaptador de persistência para sessões. Passar pool ou tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

func scanSession(row interface{ Scan(...any) error }) (*entity.Session, error) {
	var s entity.Session
	err := row.Scan(
		&s.ID, &s.Token, &s.UserID, &s.CompanyID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste uma nova sessão.
func (r *SessionRepo) Create(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	query := `
		INSERT INTO sessions (id, token, user_id, company_id, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + sessionColumns
	created, err := scanSession(r.q.QueryRow(ctx, query,
		session.ID, session.Token, session.UserID, session.CompanyID,
		session.ExpiresAt, session.CreatedAt, session.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return created, nil
}

// FindValidByToken resolve o token em uma única consulta: sessão não expirada,
// usuário ativo e empresa ativa. Qualquer condição falhando devolve nil; uma
// sessão parcialmente válida é inválida.
func (r *SessionRepo) FindValidByToken(ctx context.Context, token string) (*entity.ActiveSession, error) {
	query := `
		SELECT s.id, s.token, s.user_id, s.company_id, s.expires_at, s.created_at, s.updated_at,
			u.username, u.email, u.role,
			c.name AS company_name, c.slug AS company_slug,
			c.subscription_plan, c.subscription_status
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		JOIN companies c ON s.company_id = c.id
		WHERE s.token = $1
			AND s.expires_at > now()
			AND u.status = true
			AND c.is_active = true
		LIMIT 1`
	var a entity.ActiveSession
	err := r.q.QueryRow(ctx, query, token).Scan(
		&a.ID, &a.Token, &a.UserID, &a.CompanyID, &a.ExpiresAt, &a.CreatedAt, &a.UpdatedAt,
		&a.Username, &a.Email, &a.Role,
		&a.CompanyName, &a.CompanySlug,
		&a.SubscriptionPlan, &a.SubscriptionStatus,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get valid session: %w", err)
	}
	return &a, nil
}

// Renew desliza a expiração da sessão para o instante informado.
func (r *SessionRepo) Renew(ctx context.Context, sessionID string, expiresAt time.Time) (*entity.Session, error) {
	query := `
		UPDATE sessions
		SET expires_at = $2, updated_at = timezone('utc', now())
		WHERE id = $1
		RETURNING ` + sessionColumns
	renewed, err := scanSession(r.q.QueryRow(ctx, query, sessionID, expiresAt))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("renew session: %w", err)
	}
	return renewed, nil
}

// DeleteByToken remove a sessão do token. Idempotente: zero linhas não é erro.
func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteAllByUser revoga todas as sessões do usuário.
func (r *SessionRepo) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete sessions by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}
