package repository

import (
	"context"

	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
)

// EventRepository porta de persistência para Event (sempre com escopo de empresa).
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	FindOneByID(ctx context.Context, id, companyID string) (*entity.EventWithStats, error)
	FindOneBySlug(ctx context.Context, slug, companyID string) (*entity.EventWithStats, error)
	FindAllByCompany(ctx context.Context, companyID string, filters entity.EventFilters) ([]*entity.EventWithStats, error)
	Update(ctx context.Context, event *entity.Event, companyID string) (*entity.Event, error)
	Delete(ctx context.Context, id, companyID string) error
	ExistsSlug(ctx context.Context, slug, companyID string) (bool, error)
	// CountActiveTickets conta os tipos de ingresso ativos do evento (barreira de exclusão).
	CountActiveTickets(ctx context.Context, eventID string) (int, error)
}
