package repository

import (
	"context"
	"time"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// SessionRepository porta de persistência para Session.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) (*entity.Session, error)
	// FindValidByToken resolve o token apenas se a sessão não expirou, o usuário
	// está ativo e a empresa está ativa (tudo em uma única consulta). Devolve
	// nil sem erro quando qualquer condição falha.
	FindValidByToken(ctx context.Context, token string) (*entity.ActiveSession, error)
	// Renew desliza a expiração para o instante informado.
	Renew(ctx context.Context, sessionID string, expiresAt time.Time) (*entity.Session, error)
	// DeleteByToken e DeleteAllByUser são idempotentes: devolvem o número de
	// linhas removidas, zero não é erro.
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}
