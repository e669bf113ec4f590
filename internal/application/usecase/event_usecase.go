package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/domain"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/internal/domain/repository"
	"github.com/bilheteria/bilheteria-api/internal/domain/slug"
)

// dateLayout datas da API no formato YYYY-MM-DD.
const dateLayout = "2006-01-02"

func errEventNotFound() *domain.Error {
	return domain.NewNotFoundError(
		"O evento informado não foi encontrado no sistema.",
		"Verifique se o slug está digitado corretamente.",
	)
}

// EventUseCase casos de uso de eventos, sempre no escopo da empresa.
type EventUseCase struct {
	repo repository.EventRepository
}

// NewEventUseCase constrói o caso de uso com o porto de persistência.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo}
}

// Create cria um evento. Slug ausente é gerado do nome; colisão dentro da
// empresa é resolvida com sufixo numérico (-2, -3, ...), sempre respeitando o
// limite de 128 caracteres.
func (uc *EventUseCase) Create(ctx context.Context, userID, companyID string, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	name := strings.TrimSpace(in.EventName)
	if name == "" {
		return nil, domain.NewValidationError(
			"O nome do evento é obrigatório.",
			"Informe um nome válido para realizar esta operação.",
		)
	}

	eventSlug := strings.TrimSpace(in.Slug)
	if eventSlug == "" {
		generated, err := uc.availableSlug(ctx, slug.Make(name, entity.SlugMaxLength), companyID)
		if err != nil {
			return nil, err
		}
		eventSlug = generated
	} else {
		if taken, err := uc.repo.ExistsSlug(ctx, eventSlug, companyID); err != nil {
			return nil, domain.NewInternalServerError(err)
		} else if taken {
			return nil, domain.NewValidationError(
				"O slug informado já está sendo utilizado nesta empresa.",
				"Utilize outro slug para realizar esta operação.",
			)
		}
	}

	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	var visibility *int
	if in.Visibility != nil {
		visibility = entity.VisibilityFromString(*in.Visibility)
	}

	now := time.Now().UTC()
	event, err := uc.repo.Create(ctx, &entity.Event{
		ID:           uuid.New().String(),
		UserID:       userID,
		CompanyID:    companyID,
		EventName:    name,
		Slug:         eventSlug,
		Free:         in.Free,
		StartDate:    startDate,
		StartTime:    in.StartTime,
		EndDate:      endDate,
		EndTime:      in.EndTime,
		Description:  in.Description,
		Code:         in.Code,
		Nomenclature: in.Nomenclature,
		Producer:     in.Producer,
		Visibility:   visibility,
		Active:       true,
		Fee:          in.Fee,
		Category:     in.Category,
		ZipCode:      in.ZipCode,
		Place:        in.Place,
		Address:      in.Address,
		Number:       in.Number,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, asDomainError(err)
	}
	return toEventResponse(&entity.EventWithStats{Event: *event}), nil
}

// availableSlug procura o primeiro slug livre na empresa partindo da base.
func (uc *EventUseCase) availableSlug(ctx context.Context, base, companyID string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := uc.repo.ExistsSlug(ctx, candidate, companyID)
		if err != nil {
			return "", domain.NewInternalServerError(err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, "-"+strconv.Itoa(i), entity.SlugMaxLength)
	}
}

// GetBySlug obtém um evento pelo slug dentro da empresa.
func (uc *EventUseCase) GetBySlug(ctx context.Context, eventSlug, companyID string) (*dto.EventResponse, error) {
	event, err := uc.repo.FindOneBySlug(ctx, eventSlug, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if event == nil {
		return nil, errEventNotFound()
	}
	return toEventResponse(event), nil
}

// List lista os eventos da empresa com filtros opcionais.
func (uc *EventUseCase) List(ctx context.Context, companyID string, filters entity.EventFilters) ([]dto.EventResponse, error) {
	events, err := uc.repo.FindAllByCompany(ctx, companyID, filters)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, *toEventResponse(e))
	}
	return items, nil
}

// Update aplica um patch parcial sobre o evento do slug, no escopo da empresa.
func (uc *EventUseCase) Update(ctx context.Context, eventSlug, companyID string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	current, err := uc.repo.FindOneBySlug(ctx, eventSlug, companyID)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}
	if current == nil {
		return nil, errEventNotFound()
	}

	patch := entity.EventPatch{
		EventName:   in.EventName,
		Free:        in.Free,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
		Category:    in.Category,
		Place:       in.Place,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Active:      in.Active,
	}
	if in.Slug != nil && !strings.EqualFold(*in.Slug, current.Slug) {
		if taken, err := uc.repo.ExistsSlug(ctx, *in.Slug, companyID); err != nil {
			return nil, domain.NewInternalServerError(err)
		} else if taken {
			return nil, domain.NewValidationError(
				"O slug informado já está sendo utilizado nesta empresa.",
				"Utilize outro slug para realizar esta operação.",
			)
		}
		patch.Slug = in.Slug
	}
	if in.StartDate != nil {
		startDate, err := parseDate(in.StartDate)
		if err != nil {
			return nil, err
		}
		patch.StartDate = startDate
	}
	if in.EndDate != nil {
		endDate, err := parseDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		patch.EndDate = endDate
	}

	next := patch.Apply(current.Event)
	updated, err := uc.repo.Update(ctx, &next, companyID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if updated == nil {
		return nil, errEventNotFound()
	}
	return toEventResponse(&entity.EventWithStats{
		Event:             *updated,
		CreatedByUsername: current.CreatedByUsername,
		TicketTypesCount:  current.TicketTypesCount,
	}), nil
}

// Delete remove o evento do slug. Bloqueado enquanto o evento possuir ingressos
// ativos; desativar os ingressos é o caminho prescrito.
func (uc *EventUseCase) Delete(ctx context.Context, eventSlug, companyID string) error {
	event, err := uc.repo.FindOneBySlug(ctx, eventSlug, companyID)
	if err != nil {
		return domain.NewInternalServerError(err)
	}
	if event == nil {
		return errEventNotFound()
	}
	activeTickets, err := uc.repo.CountActiveTickets(ctx, event.ID)
	if err != nil {
		return domain.NewInternalServerError(err)
	}
	if activeTickets > 0 {
		return domain.NewValidationError(
			"O evento possui ingressos ativos e não pode ser excluído.",
			"Desative os ingressos do evento antes de excluí-lo.",
		)
	}
	if err := uc.repo.Delete(ctx, event.ID, companyID); err != nil {
		return domain.NewInternalServerError(err)
	}
	return nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.NewValidationError(
			"A data informada é inválida.",
			"Utilize o formato YYYY-MM-DD para realizar esta operação.",
		)
	}
	return &t, nil
}

func toEventResponse(e *entity.EventWithStats) *dto.EventResponse {
	if e == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:                e.ID,
		UserID:            e.UserID,
		CompanyID:         e.CompanyID,
		EventName:         e.EventName,
		Slug:              e.Slug,
		Free:              e.Free,
		StartDate:         e.StartDate,
		StartTime:         e.StartTime,
		EndDate:           e.EndDate,
		EndTime:           e.EndTime,
		Description:       e.Description,
		Code:              e.Code,
		Nomenclature:      e.Nomenclature,
		Producer:          e.Producer,
		Visibility:        e.Visibility,
		Active:            e.Active,
		Fee:               e.Fee,
		Category:          e.Category,
		ZipCode:           e.ZipCode,
		Place:             e.Place,
		Address:           e.Address,
		Number:            e.Number,
		Neighborhood:      e.Neighborhood,
		City:              e.City,
		State:             e.State,
		CreatedByUsername: e.CreatedByUsername,
		TicketTypesCount:  e.TicketTypesCount,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
