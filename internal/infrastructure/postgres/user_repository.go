package postgres

import (
	"context"
	"fmt"

	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, username, email, password, role, status, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários. Passar pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Username, &u.Email, &u.Password, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUserWithCompany(row interface{ Scan(...any) error }) (*entity.UserWithCompany, error) {
	var u entity.UserWithCompany
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Username, &u.Email, &u.Password, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt, &u.CompanyName, &u.CompanySlug,
		&u.CompanyIsActive, &u.SubscriptionPlan, &u.SubscriptionStatus,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste um novo usuário.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, company_id, username, email, password, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns
	created, err := scanUser(r.q.QueryRow(ctx, query,
		user.ID, user.CompanyID, user.Username, user.Email, user.Password,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewValidationError(
				"O username ou email informado já está sendo utilizado.",
				"Utilize outro valor para realizar esta operação.",
			)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// FindOneByID obtém um usuário por ID.
func (r *UserRepo) FindOneByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

const userJoinCompany = `
	SELECT u.id, u.company_id, u.username, u.email, u.password, u.role, u.status,
		u.created_at, u.updated_at, c.name AS company_name, c.slug AS company_slug,
		c.is_active AS company_is_active, c.subscription_plan, c.subscription_status
	FROM users u
	JOIN companies c ON u.company_id = c.id`

// FindOneByUsername obtém um usuário por username dentro da empresa (case-insensitive).
func (r *UserRepo) FindOneByUsername(ctx context.Context, username, companyID string) (*entity.UserWithCompany, error) {
	query := userJoinCompany + `
	WHERE LOWER(u.username) = LOWER($1) AND u.company_id = $2
	LIMIT 1`
	u, err := scanUserWithCompany(r.q.QueryRow(ctx, query, username, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// FindOneByUsernameInCompanySlug obtém um usuário por username + slug da empresa
// (forma de login sem email).
func (r *UserRepo) FindOneByUsernameInCompanySlug(ctx context.Context, username, companySlug string) (*entity.UserWithCompany, error) {
	query := userJoinCompany + `
	WHERE LOWER(u.username) = LOWER($1) AND LOWER(c.slug) = LOWER($2)
	LIMIT 1`
	u, err := scanUserWithCompany(r.q.QueryRow(ctx, query, username, companySlug))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username in company: %w", err)
	}
	return u, nil
}

// FindOneByEmail obtém um usuário por email (único global, case-insensitive).
func (r *UserRepo) FindOneByEmail(ctx context.Context, email string) (*entity.UserWithCompany, error) {
	query := userJoinCompany + `
	WHERE LOWER(u.email) = LOWER($1)
	LIMIT 1`
	u, err := scanUserWithCompany(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindAllByCompany lista os usuários ativos da empresa ordenados por username.
func (r *UserRepo) FindAllByCompany(ctx context.Context, companyID string) ([]*entity.UserWithCompany, error) {
	query := userJoinCompany + `
	WHERE u.company_id = $1 AND u.status = true
	ORDER BY u.username ASC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserWithCompany
	for rows.Next() {
		u, err := scanUserWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// FindActiveByEmailInCompany resolve um usuário ativo por email dentro da empresa.
func (r *UserRepo) FindActiveByEmailInCompany(ctx context.Context, email, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1 AND company_id = $2 AND status = true
	LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, email, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active user by email in company: %w", err)
	}
	return u, nil
}

// Update regrava as colunas atualizáveis do usuário, sempre no escopo da empresa.
// Devolve nil quando a linha não existe para este tenant.
func (r *UserRepo) Update(ctx context.Context, user *entity.User, companyID string) (*entity.User, error) {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, role = $5, updated_at = timezone('utc', now())
		WHERE id = $1 AND company_id = $6
		RETURNING ` + userColumns
	updated, err := scanUser(r.q.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.Password, user.Role, companyID,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// ExistsUsername informa se o username já existe na empresa (case-insensitive).
func (r *UserRepo) ExistsUsername(ctx context.Context, username, companyID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = LOWER($1) AND company_id = $2)`,
		username, companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

// ExistsEmail informa se o email já existe (global, case-insensitive).
func (r *UserRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}
