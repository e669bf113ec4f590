package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// TicketRepository porta de persistência para Ticket (sempre com escopo de empresa).
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error)
	FindOneByID(ctx context.Context, id, companyID string) (*entity.TicketWithEvent, error)
	FindOneByCode(ctx context.Context, code, companyID string) (*entity.TicketWithEvent, error)
	FindAllByEvent(ctx context.Context, eventID, companyID string) ([]*entity.TicketWithEvent, error)
	FindAllByCompany(ctx context.Context, companyID string, filters entity.TicketFilters) ([]*entity.TicketWithEvent, error)
	Update(ctx context.Context, ticket *entity.Ticket, companyID string) (*entity.Ticket, error)
	Delete(ctx context.Context, id, companyID string) error
	ExistsCode(ctx context.Context, code, companyID string) (bool, error)
	// UpdateStock incrementa stock_sold em quantity com a verificação de
	// disponibilidade na cláusula WHERE do próprio UPDATE (atômico no banco).
	// Devolve nil sem erro quando zero linhas foram afetadas; cabe ao chamador
	// desambiguar entre inexistente e sem estoque.
	UpdateStock(ctx context.Context, id string, quantity int, companyID string) (*entity.Ticket, error)
}
