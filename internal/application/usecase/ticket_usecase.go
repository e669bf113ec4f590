package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
)

func errTicketNotFound() *domain.Error {
	return domain.NewNotFoundError(
		"O ingresso informado não foi encontrado no sistema.",
		"Verifique se o identificador está digitado corretamente.",
	)
}

func errInsufficientStock() *domain.Error {
	return domain.NewValidationError(
		"Estoque insuficiente para a quantidade solicitada.",
		"Reduza a quantidade ou escolha outro ingresso.",
	)
}

// TicketUseCase casos de uso de tipos de ingresso, sempre no escopo da empresa.
type TicketUseCase struct {
	repo      repository.TicketRepository
	eventRepo repository.EventRepository
}

// NewTicketUseCase constrói o caso de uso com os portos de persistência.
func NewTicketUseCase(repo repository.TicketRepository, eventRepo repository.EventRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, eventRepo: eventRepo}
}

// Create cria um tipo de ingresso em um evento da empresa. Código é único por
// empresa.
func (uc *TicketUseCase) Create(ctx context.Context, userID, companyID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(
			"O nome do ingresso é obrigatório.",
			"Informe um nome válido para realizar esta operação.",
		)
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.NewValidationError(
			"O código do ingresso é obrigatório.",
			"Informe um código válido para realizar esta operação.",
		)
	}
	if in.Price.IsNegative() || in.UnitValue.IsNegative() {
		return nil, domain.NewValidationError(
			"O preço do ingresso não pode ser negativo.",
			"Informe um preço maior ou igual a zero.",
		)
	}
	if in.StockTotal < 0 {
		return nil, domain.NewValidationError(
			"O estoque do ingresso não pode ser negativo.",
			"Informe um estoque maior ou igual a zero.",
		)
	}

	event, err := uc.eventRepo.FindOneByID(ctx, in.EventID, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if event == nil {
		return nil, errEventNotFound()
	}
	if taken, err := uc.repo.ExistsCode(ctx, code, companyID); err != nil {
		return nil, domain.NewInternalServerError(err)
	} else if taken {
		return nil, domain.NewValidationError(
			"O código informado já está sendo utilizado nesta empresa.",
			"Utilize outro código para realizar esta operação.",
		)
	}

	currency := in.Currency
	if currency == "" {
		currency = "BRL"
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	batchNo := 1
	if in.BatchNo != nil {
		batchNo = *in.BatchNo
	}

	now := time.Now().UTC()
	ticket, err := uc.repo.Create(ctx, &entity.Ticket{
		ID:           uuid.New().String(),
		UserID:       userID,
		CompanyID:    companyID,
		EventID:      event.ID,
		Code:         code,
		Name:         name,
		UnitValue:    in.UnitValue,
		Price:        in.Price,
		Currency:     currency,
		Quantity:     quantity,
		StockTotal:   in.StockTotal,
		StockSold:    0,
		Type:         in.Type,
		Day:          in.Day,
		Category:     in.Category,
		Cupom:        in.Cupom,
		SalesStartAt: in.SalesStartAt,
		SalesEndAt:   in.SalesEndAt,
		BatchNo:      batchNo,
		BatchDate:    in.BatchDate,
		Description:  in.Description,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toTicketResponse(&entity.TicketWithEvent{Ticket: *ticket}), nil
}

// GetByID obtém um ingresso por ID no escopo da empresa.
func (uc *TicketUseCase) GetByID(ctx context.Context, id, companyID string) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if ticket == nil {
		return nil, errTicketNotFound()
	}
	return toTicketResponse(ticket), nil
}

// List lista os ingressos da empresa com filtros opcionais.
func (uc *TicketUseCase) List(ctx context.Context, companyID string, filters entity.TicketFilters) ([]dto.TicketResponse, error) {
	tickets, err := uc.repo.FindAllByCompany(ctx, companyID, filters)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	return toTicketResponses(tickets), nil
}

// ListByEventSlug lista os ingressos ativos do evento identificado pelo slug.
func (uc *TicketUseCase) ListByEventSlug(ctx context.Context, eventSlug, companyID string) ([]dto.TicketResponse, error) {
	event, err := uc.eventRepo.FindOneBySlug(ctx, eventSlug, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if event == nil {
		return nil, errEventNotFound()
	}
	tickets, err := uc.repo.FindAllByEvent(ctx, event.ID, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	return toTicketResponses(tickets), nil
}

// Update aplica um patch parcial sobre o ingresso, no escopo da empresa.
func (uc *TicketUseCase) Update(ctx context.Context, id, companyID string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	current, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if current == nil {
		return nil, errTicketNotFound()
	}

	patch := entity.TicketPatch{
		Name:         in.Name,
		Price:        in.Price,
		Category:     in.Category,
		SalesStartAt: in.SalesStartAt,
		SalesEndAt:   in.SalesEndAt,
		Description:  in.Description,
		IsActive:     in.IsActive,
	}
	if in.Code != nil && !strings.EqualFold(*in.Code, current.Code) {
		if taken, err := uc.repo.ExistsCode(ctx, *in.Code, companyID); err != nil {
			return nil, domain.NewInternalServerError(err)
		} else if taken {
			return nil, domain.NewValidationError(
				"O código informado já está sendo utilizado nesta empresa.",
				"Utilize outro código para realizar esta operação.",
			)
		}
		patch.Code = in.Code
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.NewValidationError(
			"O preço do ingresso não pode ser negativo.",
			"Informe um preço maior ou igual a zero.",
		)
	}
	if in.StockTotal != nil {
		if *in.StockTotal < current.StockSold {
			return nil, domain.NewValidationError(
				"O estoque total não pode ser menor que o total já vendido.",
				"Informe um estoque maior ou igual às vendas registradas.",
			)
		}
		patch.StockTotal = in.StockTotal
	}

	next := patch.Apply(current.Ticket)
	updated, err := uc.repo.Update(ctx, &next, companyID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if updated == nil {
		return nil, errTicketNotFound()
	}
	return toTicketResponse(&entity.TicketWithEvent{
		Ticket:            *updated,
		EventName:         current.EventName,
		EventSlug:         current.EventSlug,
		CreatedByUsername: current.CreatedByUsername,
	}), nil
}

// Delete remove o ingresso. Bloqueado depois da primeira venda; desativar via
// is_active=false é o caminho prescrito.
func (uc *TicketUseCase) Delete(ctx context.Context, id, companyID string) error {
	ticket, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return domain.NewInternalServerError(err)
	}
	if ticket == nil {
		return errTicketNotFound()
	}
	if ticket.StockSold > 0 {
		return domain.NewValidationError(
			"O ingresso possui vendas registradas e não pode ser excluído.",
			"Desative o ingresso em vez de excluí-lo.",
		)
	}
	if err := uc.repo.Delete(ctx, ticket.ID, companyID); err != nil {
		return domain.NewInternalServerError(err)
	}
	return nil
}

// UpdateStock registra a venda de quantity unidades. A checagem de
// disponibilidade acontece dentro do UPDATE; zero linhas é desambiguado aqui
// com uma releitura (inexistente vs sem estoque).
func (uc *TicketUseCase) UpdateStock(ctx context.Context, id string, quantity int, companyID string) (*dto.TicketResponse, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError(
			"A quantidade informada é inválida.",
			"Informe uma quantidade maior que zero.",
		)
	}
	updated, err := uc.repo.UpdateStock(ctx, id, quantity, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if updated == nil {
		existing, err := uc.repo.FindOneByID(ctx, id, companyID)
		if err != nil {
			return nil, domain.NewInternalServerError(err)
		}
		if existing == nil {
			return nil, errTicketNotFound()
		}
		return nil, errInsufficientStock()
	}
	return toTicketResponse(&entity.TicketWithEvent{Ticket: *updated}), nil
}

// Clone deriva um novo lote a partir de um ingresso: preço e valor unitário
// escalados pelo percentual, estoque zerado de vendas e código
// `<código>-L<lote>` com desambiguação numérica.
func (uc *TicketUseCase) Clone(ctx context.Context, id, userID, companyID string, in dto.CloneTicketRequest) (*dto.TicketResponse, error) {
	original, err := uc.repo.FindOneByID(ctx, id, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if original == nil {
		return nil, errTicketNotFound()
	}
	clone, err := uc.cloneOne(ctx, &original.Ticket, userID, companyID, in)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(&entity.TicketWithEvent{Ticket: *clone}), nil
}

// CloneBatch clona todos os ingressos ativos de um evento de uma vez, com os
// mesmos parâmetros aplicados a cada um.
func (uc *TicketUseCase) CloneBatch(ctx context.Context, userID, companyID string, in dto.CloneBatchRequest) (*dto.CloneBatchResponse, error) {
	event, err := uc.eventRepo.FindOneByID(ctx, in.EventID, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if event == nil {
		return nil, errEventNotFound()
	}
	tickets, err := uc.repo.FindAllByEvent(ctx, event.ID, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if len(tickets) == 0 {
		return nil, domain.NewValidationError(
			"O evento não possui ingressos ativos para clonar.",
			"Cadastre ou ative ingressos no evento antes de clonar o lote.",
		)
	}

	out := &dto.CloneBatchResponse{Tickets: make([]dto.TicketResponse, 0, len(tickets))}
	for _, t := range tickets {
		clone, err := uc.cloneOne(ctx, &t.Ticket, userID, companyID, in.CloneTicketRequest)
		if err != nil {
			return nil, err
		}
		out.Tickets = append(out.Tickets, *toTicketResponse(&entity.TicketWithEvent{Ticket: *clone}))
	}
	out.ClonedCount = len(out.Tickets)
	return out, nil
}

func (uc *TicketUseCase) cloneOne(ctx context.Context, original *entity.Ticket, userID, companyID string, in dto.CloneTicketRequest) (*entity.Ticket, error) {
	eventID := original.EventID
	if in.NewEventID != nil {
		target, err := uc.eventRepo.FindOneByID(ctx, *in.NewEventID, companyID)
		if err != nil {
			return nil, domain.NewInternalServerError(err)
		}
		if target == nil {
			return nil, errEventNotFound()
		}
		eventID = target.ID
	}

	batchNo := original.BatchNo + 1
	if in.BatchNo != nil {
		batchNo = *in.BatchNo
	}
	stockTotal := original.StockTotal
	if in.NewStock != nil {
		if *in.NewStock < 0 {
			return nil, domain.NewValidationError(
				"O estoque do ingresso não pode ser negativo.",
				"Informe um estoque maior ou igual a zero.",
			)
		}
		stockTotal = *in.NewStock
	}

	price := original.Price
	unitValue := original.UnitValue
	if in.PriceIncreasePercentage != nil {
		multiplier := decimal.NewFromInt(1).Add(in.PriceIncreasePercentage.Div(decimal.NewFromInt(100)))
		price = price.Mul(multiplier)
		unitValue = unitValue.Mul(multiplier)
	}

	code, err := uc.availableCloneCode(ctx, original.Code, batchNo, companyID)
	if err != nil {
		return nil, err
	}

	salesStartAt := in.SalesStartAt
	if salesStartAt == nil {
		salesStartAt = original.SalesStartAt
	}
	salesEndAt := in.SalesEndAt
	if salesEndAt == nil {
		salesEndAt = original.SalesEndAt
	}

	now := time.Now().UTC()
	clone, err := uc.repo.Create(ctx, &entity.Ticket{
		ID:             uuid.New().String(),
		UserID:         userID,
		CompanyID:      companyID,
		EventID:        eventID,
		ParentTicketID: &original.ID,
		Code:           code,
		Name:           original.Name,
		UnitValue:      unitValue,
		Price:          price,
		Currency:       original.Currency,
		Quantity:       original.Quantity,
		StockTotal:     stockTotal,
		StockSold:      0,
		Type:           original.Type,
		Day:            original.Day,
		Category:       original.Category,
		Cupom:          original.Cupom,
		SalesStartAt:   salesStartAt,
		SalesEndAt:     salesEndAt,
		BatchNo:        batchNo,
		BatchDate:      in.BatchDate,
		Description:    original.Description,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return clone, nil
}

// availableCloneCode deriva `<código>-L<lote>` e resolve colisões com sufixo
// numérico (-2, -3, ...).
func (uc *TicketUseCase) availableCloneCode(ctx context.Context, originalCode string, batchNo int, companyID string) (string, error) {
	base := originalCode + "-L" + strconv.Itoa(batchNo)
	candidate := base
	for i := 2; ; i++ {
		taken, err := uc.repo.ExistsCode(ctx, candidate, companyID)
		if err != nil {
			return "", domain.NewInternalServerError(err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}

func toTicketResponse(t *entity.TicketWithEvent) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:                t.ID,
		UserID:            t.UserID,
		CompanyID:         t.CompanyID,
		EventID:           t.EventID,
		ParentTicketID:    t.ParentTicketID,
		Code:              t.Code,
		Name:              t.Name,
		UnitValue:         t.UnitValue,
		Price:             t.Price,
		Currency:          t.Currency,
		Quantity:          t.Quantity,
		StockTotal:        t.StockTotal,
		StockSold:         t.StockSold,
		StockAvailable:    t.StockAvailable(),
		Type:              t.Type,
		Day:               t.Day,
		Category:          t.Category,
		Cupom:             t.Cupom,
		SalesStartAt:      t.SalesStartAt,
		SalesEndAt:        t.SalesEndAt,
		BatchNo:           t.BatchNo,
		BatchDate:         t.BatchDate,
		Description:       t.Description,
		IsActive:          t.IsActive,
		EventName:         t.EventName,
		EventSlug:         t.EventSlug,
		CreatedByUsername: t.CreatedByUsername,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func toTicketResponses(tickets []*entity.TicketWithEvent) []dto.TicketResponse {
	items := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, *toTicketResponse(t))
	}
	return items
}
