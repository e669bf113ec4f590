package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

const eventColumns = `id, user_id, company_id, event_name, slug, free, start_date, start_time,
	end_date, end_time, description, code, nomenclature, producer, visibility, active, fee,
	category, zip_code, place, address, number, neighborhood, city, state, created_at, updated_at`

// EventRepo implementação do porto EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository constrói o adaptador de persistência para eventos. Passar pool ou tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

func scanEvent(row interface{ Scan(...any) error }) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.EventName, &e.Slug, &e.Free, &e.StartDate, &e.StartTime,
		&e.EndDate, &e.EndTime, &e.Description, &e.Code, &e.Nomenclature, &e.Producer,
		&e.Visibility, &e.Active, &e.Fee, &e.Category, &e.ZipCode, &e.Place, &e.Address,
		&e.Number, &e.Neighborhood, &e.City, &e.State, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEventWithStats(row interface{ Scan(...any) error }) (*entity.EventWithStats, error) {
	var e entity.EventWithStats
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.EventName, &e.Slug, &e.Free, &e.StartDate, &e.StartTime,
		&e.EndDate, &e.EndTime, &e.Description, &e.Code, &e.Nomenclature, &e.Producer,
		&e.Visibility, &e.Active, &e.Fee, &e.Category, &e.ZipCode, &e.Place, &e.Address,
		&e.Number, &e.Neighborhood, &e.City, &e.State, &e.CreatedAt, &e.UpdatedAt,
		&e.CreatedByUsername, &e.TicketTypesCount,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

const eventJoinStats = `
	SELECT e.id, e.user_id, e.company_id, e.event_name, e.slug, e.free, e.start_date, e.start_time,
		e.end_date, e.end_time, e.description, e.code, e.nomenclature, e.producer, e.visibility,
		e.active, e.fee, e.category, e.zip_code, e.place, e.address, e.number, e.neighborhood,
		e.city, e.state, e.created_at, e.updated_at,
		u.username AS created_by_username,
		(SELECT COUNT(*)::int FROM tickets t WHERE t.event_id = e.id AND t.is_active = true) AS ticket_types_count
	FROM events e
	JOIN users u ON e.user_id = u.id`

// Create persiste um novo evento.
func (r *EventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (
			id, user_id, company_id, event_name, slug, free, start_date, start_time,
			end_date, end_time, description, code, nomenclature, producer, visibility,
			active, fee, category, zip_code, place, address, number, neighborhood,
			city, state, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25,
			timezone('utc', now()), timezone('utc', now())
		)
		RETURNING ` + eventColumns
	created, err := scanEvent(r.q.QueryRow(ctx, query,
		event.ID, event.UserID, event.CompanyID, event.EventName, event.Slug, event.Free,
		event.StartDate, event.StartTime, event.EndDate, event.EndTime, event.Description,
		event.Code, event.Nomenclature, event.Producer, event.Visibility, event.Active,
		event.Fee, event.Category, event.ZipCode, event.Place, event.Address, event.Number,
		event.Neighborhood, event.City, event.State,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O slug informado já está sendo utilizado nesta empresa.",
				"Utilize outro slug para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return created, nil
}

// FindOneByID obtém um evento por ID no escopo da empresa.
func (r *EventRepo) FindOneByID(ctx context.Context, id, companyID string) (*entity.EventWithStats, error) {
	query := eventJoinStats + `
	WHERE e.id = $1 AND e.company_id = $2
	LIMIT 1`
	e, err := scanEventWithStats(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// FindOneBySlug obtém um evento por slug no escopo da empresa (case-insensitive).
func (r *EventRepo) FindOneBySlug(ctx context.Context, slug, companyID string) (*entity.EventWithStats, error) {
	query := eventJoinStats + `
	WHERE LOWER(e.slug) = LOWER($1) AND e.company_id = $2
	LIMIT 1`
	e, err := scanEventWithStats(r.q.QueryRow(ctx, query, slug, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return e, nil
}

// FindAllByCompany lista eventos da empresa com filtros opcionais.
func (r *EventRepo) FindAllByCompany(ctx context.Context, companyID string, filters entity.EventFilters) ([]*entity.EventWithStats, error) {
	var where strings.Builder
	where.WriteString("WHERE e.company_id = $1")
	args := []any{companyID}

	if filters.Active != nil {
		args = append(args, *filters.Active)
		where.WriteString(" AND e.active = $" + strconv.Itoa(len(args)))
	}
	if filters.StartDate != nil {
		args = append(args, *filters.StartDate)
		where.WriteString(" AND e.start_date >= $" + strconv.Itoa(len(args)))
	}
	if filters.Category != nil {
		args = append(args, *filters.Category)
		where.WriteString(" AND LOWER(e.category) = LOWER($" + strconv.Itoa(len(args)) + ")")
	}

	query := eventJoinStats + "\n\t" + where.String() + `
	ORDER BY e.start_date DESC, e.event_name ASC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var list []*entity.EventWithStats
	for rows.Next() {
		e, err := scanEventWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update regrava as colunas atualizáveis do evento no escopo da empresa.
// Devolve nil quando a linha não existe para este tenant.
func (r *EventRepo) Update(ctx context.Context, event *entity.Event, companyID string) (*entity.Event, error) {
	query := `
		UPDATE events
		SET event_name = $2, slug = $3, free = $4, start_date = $5, start_time = $6,
			end_date = $7, end_time = $8, description = $9, category = $10, place = $11,
			address = $12, city = $13, state = $14, active = $15, updated_at = timezone('utc', now())
		WHERE id = $1 AND company_id = $16
		RETURNING ` + eventColumns
	updated, err := scanEvent(r.q.QueryRow(ctx, query,
		event.ID, event.EventName, event.Slug, event.Free, event.StartDate, event.StartTime,
		event.EndDate, event.EndTime, event.Description, event.Category, event.Place,
		event.Address, event.City, event.State, event.Active, companyID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O slug informado já está sendo utilizado nesta empresa.",
				"Utilize outro slug para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

// Delete remove o evento no escopo da empresa.
func (r *EventRepo) Delete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM events WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ExistsSlug informa se o slug já existe na empresa (case-insensitive).
func (r *EventRepo) ExistsSlug(ctx context.Context, slug, companyID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE LOWER(slug) = LOWER($1) AND company_id = $2)`,
		slug, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check event slug: %w", err)
	}
	return exists, nil
}

// CountActiveTickets conta os tipos de ingresso ativos do evento.
func (r *EventRepo) CountActiveTickets(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*)::int FROM tickets WHERE event_id = $1 AND is_active = true`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active tickets: %w", err)
	}
	return count, nil
}
