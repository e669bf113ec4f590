package usecase

import (
	"context"
	"time"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
)

// DatabaseStatusProvider expõe o estado observável do banco: versão do
// servidor, limite de conexões e conexões abertas no pool.
type DatabaseStatusProvider interface {
	DatabaseStatus(ctx context.Context) (version string, maxConnections, openConnections int, err error)
}

// StatusUseCase estado operacional do serviço para GET /status.
type StatusUseCase struct {
	db DatabaseStatusProvider
}

// NewStatusUseCase constrói o caso de uso de status.
func NewStatusUseCase(db DatabaseStatusProvider) *StatusUseCase {
	return &StatusUseCase{db: db}
}

// Get consulta as dependências e monta o relatório.
func (uc *StatusUseCase) Get(ctx context.Context) (*dto.StatusResponse, error) {
	version, maxConns, openConns, err := uc.db.DatabaseStatus(ctx)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	return &dto.StatusResponse{
		UpdatedAt: time.Now().UTC(),
		Dependencies: dto.StatusDependencies{
			Database: dto.DatabaseStatus{
				Version:         version,
				MaxConnections:  maxConns,
				OpenConnections: openConns,
			},
		},
	}, nil
}
