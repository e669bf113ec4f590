package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

// passwordMinLength tamanho mínimo de senha em texto plano.
const passwordMinLength = 8

func errUserNotFound() *domain.Error {
	return domain.NewNotFoundError(
		"O username informado não foi encontrado no sistema.",
		"Verifique se o username está digitado corretamente.",
	)
}

// UserUseCase casos de uso de usuários, sempre no escopo da empresa do chamador.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria um usuário na empresa informada. Username é único na empresa;
// email é único global.
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if !validUsername(username) {
		return nil, domain.NewValidationError(
			"O username informado é inválido.",
			"Utilize apenas letras e números, entre 3 e 30 caracteres.",
		)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validEmail(email) {
		return nil, domain.NewValidationError(
			"O email informado é inválido.",
			"Informe um email válido para realizar esta operação.",
		)
	}
	if len(in.Password) < passwordMinLength {
		return nil, domain.NewValidationError(
			"A senha informada é muito curta.",
			"Utilize uma senha com pelo menos 8 caracteres.",
		)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperator
	}
	if !validRole(role) {
		return nil, domain.NewValidationError(
			"O papel informado é inválido.",
			"Utilize um dos papéis: admin, manager, operator ou viewer.",
		)
	}

	if taken, err := uc.repo.ExistsUsername(ctx, username, companyID); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O username informado já está sendo utilizado.",
			"Utilize outro username para realizar esta operação.",
		)
	}
	if taken, err := uc.repo.ExistsEmail(ctx, email); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O email informado já está sendo utilizado.",
			"Utilize outro email para realizar esta operação.",
		)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	now := time.Now().UTC()
	user, err := uc.repo.Create(ctx, &entity.User{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Username:  username,
		Email:     email,
		Password:  hash,
		Role:      role,
		Status:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toUserResponse(user), nil
}

// GetByUsername obtém um usuário pelo username dentro da empresa.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username, companyID string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindOneByUsername(ctx, username, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if user == nil {
		return nil, errUserNotFound()
	}
	return toUserResponse(&user.User), nil
}

// List lista os usuários ativos da empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string) ([]dto.UserResponse, error) {
	users, err := uc.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(&u.User))
	}
	return items, nil
}

// Update aplica um patch parcial sobre o usuário do username, no escopo da
// empresa. Unicidade só é reavaliada quando o valor muda; senha nova é
// hasheada aqui.
func (uc *UserUseCase) Update(ctx context.Context, username, companyID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	current, err := uc.repo.FindOneByUsername(ctx, username, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if current == nil {
		return nil, errUserNotFound()
	}

	patch := entity.UserPatch{Role: in.Role}
	if in.Username != nil {
		newUsername := strings.TrimSpace(*in.Username)
		if !validUsername(newUsername) {
			return nil, domain.NewValidationError(
				"O username informado é inválido.",
				"Utilize apenas letras e números, entre 3 e 30 caracteres.",
			)
		}
		if !strings.EqualFold(newUsername, current.Username) {
			if taken, err := uc.repo.ExistsUsername(ctx, newUsername, companyID); err != nil {
				return nil, domain.NewInternalServerError(err)
			} else if taken {
				return nil, domain.NewValidationError(
					"O username informado já está sendo utilizado.",
					"Utilize outro username para realizar esta operação.",
				)
			}
		}
		patch.Username = &newUsername
	}
	if in.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*in.Email))
		if !validEmail(newEmail) {
			return nil, domain.NewValidationError(
				"O email informado é inválido.",
				"Informe um email válido para realizar esta operação.",
			)
		}
		if !strings.EqualFold(newEmail, current.Email) {
			if taken, err := uc.repo.ExistsEmail(ctx, newEmail); err != nil {
				return nil, domain.NewInternalServerError(err)
			} else if taken {
				return nil, domain.NewValidationError(
					"O email informado já está sendo utilizado.",
					"Utilize outro email para realizar esta operação.",
				)
			}
		}
		patch.Email = &newEmail
	}
	if in.Role != nil && !validRole(*in.Role) {
		return nil, domain.NewValidationError(
			"O papel informado é inválido.",
			"Utilize um dos papéis: admin, manager, operator ou viewer.",
		)
	}
	if in.Password != nil {
		if len(*in.Password) < passwordMinLength {
			return nil, domain.NewValidationError(
				"A senha informada é muito curta.",
				"Utilize uma senha com pelo menos 8 caracteres.",
			)
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, domain.NewInternalServerError(err)
		}
		patch.Password = &hash
	}

	next := patch.Apply(current.User)
	updated, err := uc.repo.Update(ctx, &next, companyID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if updated == nil {
		return nil, errUserNotFound()
	}
	return toUserResponse(updated), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
