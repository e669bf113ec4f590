package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusProvider estado observável do banco a partir do pool.
type StatusProvider struct {
	pool *pgxpool.Pool
}

// NewStatusProvider constrói o provedor de status do banco.
func NewStatusProvider(pool *pgxpool.Pool) *StatusProvider {
	return &StatusProvider{pool: pool}
}

// DatabaseStatus consulta versão e limite de conexões do servidor e soma as
// conexões abertas no pool local.
func (p *StatusProvider) DatabaseStatus(ctx context.Context) (string, int, int, error) {
	var version string
	if err := p.pool.QueryRow(ctx, `SHOW server_version`).Scan(&version); err != nil {
		return "", 0, 0, fmt.Errorf("read server version: %w", err)
	}
	var maxConnsRaw string
	if err := p.pool.QueryRow(ctx, `SHOW max_connections`).Scan(&maxConnsRaw); err != nil {
		return "", 0, 0, fmt.Errorf("read max connections: %w", err)
	}
	maxConns, err := strconv.Atoi(maxConnsRaw)
	if err != nil {
		return "", 0, 0, fmt.Errorf("parse max connections: %w", err)
	}
	return version, maxConns, int(p.pool.Stat().TotalConns()), nil
}
