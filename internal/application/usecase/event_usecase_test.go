package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilheteria/bilheteria-api/internal/application/dto"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
)

func buildEventUseCase() (*usecase.EventUseCase, *fakeEventRepo) {
	events := newFakeEventRepo()
	return usecase.NewEventUseCase(events), events
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — geração de slug
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEvent_GeraSlugDoNome(t *testing.T) {
	uc, _ := buildEventUseCase()

	out, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "festival-de-verao-2026", out.Slug)
	assert.True(t, out.Active, "evento nasce ativo")
}

func TestCreateEvent_ColisaoDeSlug_GanhaSufixoNumerico(t *testing.T) {
	uc, _ := buildEventUseCase()

	first, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão",
	})
	require.NoError(t, err)
	assert.Equal(t, "festival-de-verao", first.Slug)

	second, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão",
	})
	require.NoError(t, err)
	assert.Equal(t, "festival-de-verao-2", second.Slug)

	third, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão",
	})
	require.NoError(t, err)
	assert.Equal(t, "festival-de-verao-3", third.Slug)
}

func TestCreateEvent_SlugExplicitoDuplicado_Retorna400(t *testing.T) {
	uc, _ := buildEventUseCase()

	_, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão",
		Slug:      "festival",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Outro festival",
		Slug:      "festival",
	})
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O slug informado já está sendo utilizado nesta empresa.", derr.Message)
}

// O mesmo slug pode coexistir em empresas diferentes: a unicidade é por tenant.
func TestCreateEvent_MesmoSlugEmOutraEmpresa_Permitido(t *testing.T) {
	uc, _ := buildEventUseCase()

	first, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Festival de Verão",
	})
	require.NoError(t, err)

	second, err := uc.Create(context.Background(), testUserID, "00000000-0000-0000-0000-0000000000ff", dto.CreateEventRequest{
		EventName: "Festival de Verão",
	})
	require.NoError(t, err)
	assert.Equal(t, first.Slug, second.Slug)
}

func TestCreateEvent_DataInvalida_Retorna400(t *testing.T) {
	uc, _ := buildEventUseCase()

	data := "31/12/2026"
	_, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Réveillon",
		StartDate: &data,
	})
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "A data informada é inválida.", derr.Message)
}

func TestCreateEvent_SemNome_Retorna400(t *testing.T) {
	uc, _ := buildEventUseCase()

	_, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "   ",
	})
	requireDomainError(t, err, 400)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — barreira de ingressos ativos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteEvent_ComIngressosAtivos_Retorna400(t *testing.T) {
	uc, events := buildEventUseCase()
	seedEvent(events)
	events.activeTickets[testEventID] = 3

	err := uc.Delete(context.Background(), "festival-de-verao", testCompanyID)
	derr := requireDomainError(t, err, 400)
	assert.Equal(t, "O evento possui ingressos ativos e não pode ser excluído.", derr.Message)

	_, existe := events.events[testEventID]
	assert.True(t, existe, "o evento não pode ter sido removido")
}

func TestDeleteEvent_SemIngressosAtivos_Remove(t *testing.T) {
	uc, events := buildEventUseCase()
	seedEvent(events)

	require.NoError(t, uc.Delete(context.Background(), "festival-de-verao", testCompanyID))
	assert.Empty(t, events.events)
}

func TestDeleteEvent_SlugInexistente_Retorna404(t *testing.T) {
	uc, _ := buildEventUseCase()

	err := uc.Delete(context.Background(), "nao-existe", testCompanyID)
	requireDomainError(t, err, 404)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateEvent_PatchParcial(t *testing.T) {
	uc, events := buildEventUseCase()
	seedEvent(events)

	nome := "Festival de Inverno"
	ativo := false
	out, err := uc.Update(context.Background(), "festival-de-verao", testCompanyID, dto.UpdateEventRequest{
		EventName: &nome,
		Active:    &ativo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Festival de Inverno", out.EventName)
	assert.False(t, out.Active)
	assert.Equal(t, "festival-de-verao", out.Slug, "o slug não muda junto com o nome")
}

func TestUpdateEvent_SlugDuplicado_Retorna400(t *testing.T) {
	uc, events := buildEventUseCase()
	seedEvent(events)
	_, err := uc.Create(context.Background(), testUserID, testCompanyID, dto.CreateEventRequest{
		EventName: "Outro evento",
		Slug:      "outro-evento",
	})
	require.NoError(t, err)

	outro := "outro-evento"
	_, err = uc.Update(context.Background(), "festival-de-verao", testCompanyID, dto.UpdateEventRequest{
		Slug: &outro,
	})
	requireDomainError(t, err, 400)
}
