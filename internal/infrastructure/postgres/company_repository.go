package postgres

import (
	"context"
	"fmt"

	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, slug, cnpj, subscription_plan, subscription_status, settings, is_active, created_at, updated_at`

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador de persistência para empresas. Passar pool ou tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func scanCompany(row interface{ Scan(...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.CNPJ, &c.SubscriptionPlan, &c.SubscriptionStatus,
		&c.Settings, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste uma nova empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		INSERT INTO companies (id, name, slug, cnpj, subscription_plan, subscription_status, settings, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + companyColumns
	created, err := scanCompany(r.q.QueryRow(ctx, query,
		company.ID, company.Name, company.Slug, company.CNPJ,
		company.SubscriptionPlan, company.SubscriptionStatus, company.Settings,
		company.IsActive, company.CreatedAt, company.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			// Backstop da corrida entre a pré-checagem e o INSERT.
			return nil, domain.NewValidationError(
				"O slug ou CNPJ informado já está sendo utilizado.",
				"Utilize outro valor para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return created, nil
}

// FindOneByID obtém uma empresa por ID (sem escopo: Company é a raiz do tenant).
func (r *CompanyRepo) FindOneByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// FindOneBySlug obtém uma empresa por slug (case-insensitive).
func (r *CompanyRepo) FindOneBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE LOWER(slug) = LOWER($1) LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, slug))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by slug: %w", err)
	}
	return c, nil
}

// FindOneByCNPJ obtém uma empresa por CNPJ.
func (r *CompanyRepo) FindOneByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE cnpj = $1 LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, cnpj))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by cnpj: %w", err)
	}
	return c, nil
}

// FindAllActive lista empresas ativas ordenadas por nome.
func (r *CompanyRepo) FindAllActive(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE is_active = true ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count conta todas as empresas, ativas ou não.
func (r *CompanyRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)::int FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}

// Update regrava todas as colunas atualizáveis da empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET name = $2, slug = $3, cnpj = $4, subscription_plan = $5,
			subscription_status = $6, settings = $7, updated_at = timezone('utc', now())
		WHERE id = $1
		RETURNING ` + companyColumns
	updated, err := scanCompany(r.q.QueryRow(ctx, query,
		company.ID, company.Name, company.Slug, company.CNPJ,
		company.SubscriptionPlan, company.SubscriptionStatus, company.Settings,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return updated, nil
}

// ExistsSlug informa se já existe empresa com o slug (case-insensitive).
func (r *CompanyRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE LOWER(slug) = LOWER($1))`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company slug: %w", err)
	}
	return exists, nil
}

// ExistsCNPJ informa se já existe empresa com o CNPJ.
func (r *CompanyRepo) ExistsCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE cnpj = $1)`, cnpj,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company cnpj: %w", err)
	}
	return exists, nil
}
