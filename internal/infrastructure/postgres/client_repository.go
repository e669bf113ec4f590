package postgres

import (
	"context"
	"fmt"

	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, user_id, company_id, name, cpfcnpj, premium, address_id, created_at, updated_at`

// ClientRepo implementação do porto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador de persistência para clientes. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row interface{ Scan(...any) error }) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyID, &c.Name, &c.CpfCnpj, &c.Premium, &c.AddressID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	query := `
		INSERT INTO clients (id, user_id, company_id, name, cpfcnpj, premium, address_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + clientColumns
	created, err := scanClient(r.q.QueryRow(ctx, query,
		client.ID, client.UserID, client.CompanyID, client.Name, client.CpfCnpj,
		client.Premium, client.AddressID, client.CreatedAt, client.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O CPF/CNPJ informado já está sendo utilizado nesta empresa.",
				"Utilize outro CPF/CNPJ para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return created, nil
}

// FindOneByID obtém um cliente por ID no escopo da empresa.
func (r *ClientRepo) FindOneByID(ctx context.Context, id, companyID string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND company_id = $2 LIMIT 1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// FindOneByCpfCnpj obtém um cliente por CPF/CNPJ no escopo da empresa.
func (r *ClientRepo) FindOneByCpfCnpj(ctx context.Context, cpfcnpj, companyID string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cpfcnpj = $1 AND company_id = $2 LIMIT 1`
	c, err := scanClient(r.q.QueryRow(ctx, query, cpfcnpj, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by cpfcnpj: %w", err)
	}
	return c, nil
}

// FindAllByCompany lista clientes da empresa com paginação, ordenados por nome.
func (r *ClientRepo) FindAllByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ClientWithCreator, error) {
	query := `
		SELECT c.id, c.user_id, c.company_id, c.name, c.cpfcnpj, c.premium, c.address_id,
			c.created_at, c.updated_at, u.username AS created_by_username
		FROM clients c
		JOIN users u ON c.user_id = u.id
		WHERE c.company_id = $1
		ORDER BY c.name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.ClientWithCreator
	for rows.Next() {
		var c entity.ClientWithCreator
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.CompanyID, &c.Name, &c.CpfCnpj, &c.Premium, &c.AddressID,
			&c.CreatedAt, &c.UpdatedAt, &c.CreatedByUsername,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update regrava as colunas atualizáveis do cliente no escopo da empresa.
// Devolve nil quando a linha não existe para este tenant.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client, companyID string) (*entity.Client, error) {
	query := `
		UPDATE clients
		SET name = $2, cpfcnpj = $3, premium = $4, address_id = $5, updated_at = timezone('utc', now())
		WHERE id = $1 AND company_id = $6
		RETURNING ` + clientColumns
	updated, err := scanClient(r.q.QueryRow(ctx, query,
		client.ID, client.Name, client.CpfCnpj, client.Premium, client.AddressID, companyID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return updated, nil
}

// ExistsCpfCnpj informa se o CPF/CNPJ já existe na empresa.
func (r *ClientRepo) ExistsCpfCnpj(ctx context.Context, cpfcnpj, companyID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE cpfcnpj = $1 AND company_id = $2)`,
		cpfcnpj, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check cpfcnpj: %w", err)
	}
	return exists, nil
}
