package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

// Paginação padrão da listagem de clientes.
const (
	clientListDefaultLimit = 50
	clientListMaxLimit     = 200
)

func errClientNotFound() *domain.Error {
	return domain.NewNotFoundError(
		"O cliente informado não foi encontrado no sistema.",
		"Verifique se o identificador está digitado corretamente.",
	)
}

// ClientUseCase casos de uso de clientes finais, sempre no escopo da empresa.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso com o porto de persistência.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um cliente. CPF/CNPJ é único por empresa.
func (uc *ClientUseCase) Create(ctx context.Context, userID, companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(
			"O nome do cliente é obrigatório.",
			"Informe um nome válido para realizar esta operação.",
		)
	}
	doc := normalizeDocument(in.CpfCnpj)
	if !validCpfCnpj(doc) {
		return nil, domain.NewValidationError(
			"O CPF/CNPJ informado é inválido.",
			"Informe um CPF com 11 dígitos ou um CNPJ com 14 dígitos.",
		)
	}
	if taken, err := uc.repo.ExistsCpfCnpj(ctx, doc, companyID); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O CPF/CNPJ informado já está sendo utilizado nesta empresa.",
			"Utilize outro CPF/CNPJ para realizar esta operação.",
		)
	}

	now := time.Now().UTC()
	client, err := uc.repo.Create(ctx, &entity.Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		CompanyID: companyID,
		Name:      name,
		CpfCnpj:   doc,
		Premium:   in.Premium,
		AddressID: in.AddressID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toClientResponse(client, ""), nil
}

// GetByID obtém um cliente por ID no escopo da empresa.
func (uc *ClientUseCase) GetByID(ctx context.Context, id, companyID string) (*dto.ClientResponse, error) {
	client, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if client == nil {
		return nil, errClientNotFound()
	}
	return toClientResponse(client, ""), nil
}

// List lista os clientes da empresa com paginação.
func (uc *ClientUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]dto.ClientResponse, error) {
	if limit <= 0 {
		limit = clientListDefaultLimit
	}
	if limit > clientListMaxLimit {
		limit = clientListMaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	clients, err := uc.repo.FindAllByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(&c.Client, c.CreatedByUsername))
	}
	return items, nil
}

// Update aplica um patch parcial sobre o cliente, no escopo da empresa.
func (uc *ClientUseCase) Update(ctx context.Context, id, companyID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	current, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if current == nil {
		return nil, errClientNotFound()
	}

	patch := entity.ClientPatch{Name: in.Name, Premium: in.Premium, AddressID: in.AddressID}
	if in.CpfCnpj != nil {
		doc := normalizeDocument(*in.CpfCnpj)
		if !validCpfCnpj(doc) {
			return nil, domain.NewValidationError(
				"O CPF/CNPJ informado é inválido.",
				"Informe um CPF com 11 dígitos ou um CNPJ com 14 dígitos.",
			)
		}
		if doc != current.CpfCnpj {
			if taken, err := uc.repo.ExistsCpfCnpj(ctx, doc, companyID); err != nil {
				return nil, domain.NewInternalServerError(err)
			} else if taken {
				return nil, domain.NewValidationError(
					"O CPF/CNPJ informado já está sendo utilizado nesta empresa.",
					"Utilize outro CPF/CNPJ para realizar esta operação.",
				)
			}
		}
		patch.CpfCnpj = &doc
	}

	next := patch.Apply(*current)
	updated, err := uc.repo.Update(ctx, &next, companyID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if updated == nil {
		return nil, errClientNotFound()
	}
	return toClientResponse(updated, ""), nil
}

func toClientResponse(c *entity.Client, createdBy string) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:                c.ID,
		UserID:            c.UserID,
		CompanyID:         c.CompanyID,
		Name:              c.Name,
		CpfCnpj:           c.CpfCnpj,
		Premium:           c.Premium,
		AddressID:         c.AddressID,
		CreatedByUsername: createdBy,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
