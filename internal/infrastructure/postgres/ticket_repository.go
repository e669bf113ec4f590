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

var _ repository.TicketRepository = (*TicketRepo)(nil)

const ticketColumns = `id, user_id, company_id, event_id, parent_ticket_id, code, name,
	unit_value, price, currency, quantity, stock_total, stock_sold, type, day, category,
	cupom, sales_start_at, sales_end_at, batch_no, batch_date, description, is_active,
	created_at, updated_at`

// TicketRepo implementação do porto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository constrói o adaptador de persistência para ingressos. Passar pool ou tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

func scanTicket(row interface{ Scan(...any) error }) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(
		&t.ID, &t.UserID, &t.CompanyID, &t.EventID, &t.ParentTicketID, &t.Code, &t.Name,
		&t.UnitValue, &t.Price, &t.Currency, &t.Quantity, &t.StockTotal, &t.StockSold,
		&t.Type, &t.Day, &t.Category, &t.Cupom, &t.SalesStartAt, &t.SalesEndAt,
		&t.BatchNo, &t.BatchDate, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTicketWithEvent(row interface{ Scan(...any) error }) (*entity.TicketWithEvent, error) {
	var t entity.TicketWithEvent
	err := row.Scan(
		&t.ID, &t.UserID, &t.CompanyID, &t.EventID, &t.ParentTicketID, &t.Code, &t.Name,
		&t.UnitValue, &t.Price, &t.Currency, &t.Quantity, &t.StockTotal, &t.StockSold,
		&t.Type, &t.Day, &t.Category, &t.Cupom, &t.SalesStartAt, &t.SalesEndAt,
		&t.BatchNo, &t.BatchDate, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		&t.EventName, &t.EventSlug, &t.CreatedByUsername,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

const ticketJoinEvent = `
	SELECT t.id, t.user_id, t.company_id, t.event_id, t.parent_ticket_id, t.code, t.name,
		t.unit_value, t.price, t.currency, t.quantity, t.stock_total, t.stock_sold, t.type,
		t.day, t.category, t.cupom, t.sales_start_at, t.sales_end_at, t.batch_no,
		t.batch_date, t.description, t.is_active, t.created_at, t.updated_at,
		e.event_name, e.slug AS event_slug, u.username AS created_by_username
	FROM tickets t
	JOIN events e ON t.event_id = e.id
	JOIN users u ON t.user_id = u.id`

// Create persiste um novo tipo de ingresso.
func (r *TicketRepo) Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	query := `
		INSERT INTO tickets (
			id, user_id, company_id, event_id, parent_ticket_id, code, name,
			unit_value, price, currency, quantity, stock_total, stock_sold, type,
			day, category, cupom, sales_start_at, sales_end_at, batch_no,
			batch_date, description, is_active, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23,
			timezone('utc', now()), timezone('utc', now())
		)
		RETURNING ` + ticketColumns
	created, err := scanTicket(r.q.QueryRow(ctx, query,
		ticket.ID, ticket.UserID, ticket.CompanyID, ticket.EventID, ticket.ParentTicketID,
		ticket.Code, ticket.Name, ticket.UnitValue, ticket.Price, ticket.Currency,
		ticket.Quantity, ticket.StockTotal, ticket.StockSold, ticket.Type, ticket.Day,
		ticket.Category, ticket.Cupom, ticket.SalesStartAt, ticket.SalesEndAt,
		ticket.BatchNo, ticket.BatchDate, ticket.Description, ticket.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O código informado já está sendo utilizado nesta empresa.",
				"Utilize outro código para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return created, nil
}

// FindOneByID obtém um ingresso por ID no escopo da empresa.
func (r *TicketRepo) FindOneByID(ctx context.Context, id, companyID string) (*entity.TicketWithEvent, error) {
	query := ticketJoinEvent + `
	WHERE t.id = $1 AND t.company_id = $2
	LIMIT 1`
	t, err := scanTicketWithEvent(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// FindOneByCode obtém um ingresso por código no escopo da empresa (case-insensitive).
func (r *TicketRepo) FindOneByCode(ctx context.Context, code, companyID string) (*entity.TicketWithEvent, error) {
	query := ticketJoinEvent + `
	WHERE LOWER(t.code) = LOWER($1) AND t.company_id = $2
	LIMIT 1`
	t, err := scanTicketWithEvent(r.q.QueryRow(ctx, query, code, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket by code: %w", err)
	}
	return t, nil
}

// FindAllByEvent lista os ingressos ativos de um evento no escopo da empresa.
func (r *TicketRepo) FindAllByEvent(ctx context.Context, eventID, companyID string) ([]*entity.TicketWithEvent, error) {
	query := ticketJoinEvent + `
	WHERE t.event_id = $1 AND t.company_id = $2 AND t.is_active = true
	ORDER BY t.batch_no ASC, t.name ASC`
	rows, err := r.q.Query(ctx, query, eventID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by event: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

// FindAllByCompany lista ingressos da empresa com filtros opcionais.
func (r *TicketRepo) FindAllByCompany(ctx context.Context, companyID string, filters entity.TicketFilters) ([]*entity.TicketWithEvent, error) {
	var where strings.Builder
	where.WriteString("WHERE t.company_id = $1")
	args := []any{companyID}

	if filters.EventID != nil {
		args = append(args, *filters.EventID)
		where.WriteString(" AND t.event_id = $" + strconv.Itoa(len(args)))
	}
	if filters.IsActive != nil {
		args = append(args, *filters.IsActive)
		where.WriteString(" AND t.is_active = $" + strconv.Itoa(len(args)))
	}
	if filters.Category != nil {
		args = append(args, *filters.Category)
		where.WriteString(" AND LOWER(t.category) = LOWER($" + strconv.Itoa(len(args)) + ")")
	}

	query := ticketJoinEvent + "\n\t" + where.String() + `
	ORDER BY t.created_at DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return collectTickets(rows)
}

func collectTickets(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*entity.TicketWithEvent, error) {
	var list []*entity.TicketWithEvent
	for rows.Next() {
		t, err := scanTicketWithEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update regrava as colunas atualizáveis do ingresso no escopo da empresa.
// Devolve nil quando a linha não existe para este tenant.
func (r *TicketRepo) Update(ctx context.Context, ticket *entity.Ticket, companyID string) (*entity.Ticket, error) {
	query := `
		UPDATE tickets
		SET name = $2, code = $3, price = $4, stock_total = $5, category = $6,
			sales_start_at = $7, sales_end_at = $8, description = $9, is_active = $10,
			updated_at = timezone('utc', now())
		WHERE id = $1 AND company_id = $11
		RETURNING ` + ticketColumns
	updated, err := scanTicket(r.q.QueryRow(ctx, query,
		ticket.ID, ticket.Name, ticket.Code, ticket.Price, ticket.StockTotal,
		ticket.Category, ticket.SalesStartAt, ticket.SalesEndAt, ticket.Description,
		ticket.IsActive, companyID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O código informado já está sendo utilizado nesta empresa.",
				"Utilize outro código para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return updated, nil
}

// Delete remove o ingresso no escopo da empresa.
func (r *TicketRepo) Delete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// ExistsCode informa se o código já existe na empresa (case-insensitive).
func (r *TicketRepo) ExistsCode(ctx context.Context, code, companyID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tickets WHERE LOWER(code) = LOWER($1) AND company_id = $2)`,
		code, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ticket code: %w", err)
	}
	return exists, nil
}

// UpdateStock incrementa stock_sold com a checagem de disponibilidade dentro do
// próprio UPDATE. Zero linhas devolve nil sem erro; o chamador desambigua
// inexistente de sem estoque.
func (r *TicketRepo) UpdateStock(ctx context.Context, id string, quantity int, companyID string) (*entity.Ticket, error) {
	query := `
		UPDATE tickets
		SET stock_sold = stock_sold + $2, updated_at = timezone('utc', now())
		WHERE id = $1 AND company_id = $3
			AND is_active = true
			AND (stock_total - stock_sold) >= $2
		RETURNING ` + ticketColumns
	updated, err := scanTicket(r.q.QueryRow(ctx, query, id, quantity, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update ticket stock: %w", err)
	}
	return updated, nil
}
