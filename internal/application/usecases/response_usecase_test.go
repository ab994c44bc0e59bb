package usecases

import (
	"context"
	"testing"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignRepo struct {
	campaign *entities.Campaign
}

func (f *fakeCampaignRepo) FindByID(ctx context.Context, id string) (*entities.Campaign, error) {
	return f.campaign, nil
}

type fakeResponseWriter struct {
	exists  bool
	created *entities.SurveyResponse
}

func (f *fakeResponseWriter) ExistsForUserAndCampaign(ctx context.Context, userID, campanhaID string) (bool, error) {
	return f.exists, nil
}

func (f *fakeResponseWriter) Create(ctx context.Context, response *entities.SurveyResponse) error {
	f.created = response
	return nil
}

func activeCampaign() *entities.Campaign {
	return &entities.Campaign{ID: "camp-1", EmpresaID: "emp-1", Ativa: true}
}

func collaborator() *entities.User {
	return &entities.User{
		ID:         "user-1",
		EmpresaID:  "emp-1",
		Role:       entities.RoleColaborador,
		Unidade:    "Matriz",
		Genero:     "Feminino",
		NivelCargo: "Operacional",
		Area:       "Produção",
	}
}

func TestSubmitFreezesSegmentationAndScores(t *testing.T) {
	writer := &fakeResponseWriter{}
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: activeCampaign()}, writer)

	response, err := uc.Submit(context.Background(), collaborator(), "camp-1", map[string]string{
		"q2": entities.LikertConcordoTotal,
		"q3": entities.LikertDiscordoTotal,
	})
	require.NoError(t, err)
	require.NotNil(t, writer.created)

	assert.Equal(t, "emp-1", response.EmpresaID)
	assert.Equal(t, "Matriz", response.Unidade)
	assert.Equal(t, "Produção", response.Area)
	require.Len(t, response.Answers, 2)
	for _, a := range response.Answers {
		score, ok := entities.LikertScore(a.Value)
		require.True(t, ok)
		assert.Equal(t, score, a.Score)
	}
}

func TestSubmitRejectsUnknownLabel(t *testing.T) {
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: activeCampaign()}, &fakeResponseWriter{})

	_, err := uc.Submit(context.Background(), collaborator(), "camp-1", map[string]string{
		"q2": "Talvez",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resposta inválida")
}

func TestSubmitRejectsEmptyBody(t *testing.T) {
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: activeCampaign()}, &fakeResponseWriter{})

	_, err := uc.Submit(context.Background(), collaborator(), "camp-1", nil)
	assert.ErrorIs(t, err, ErrRespostaVazia)
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: activeCampaign()}, &fakeResponseWriter{exists: true})

	_, err := uc.Submit(context.Background(), collaborator(), "camp-1", map[string]string{
		"q2": entities.LikertNeutro,
	})
	assert.ErrorIs(t, err, ErrRespostaDuplicada)
}

func TestSubmitRejectsForeignCampaign(t *testing.T) {
	campaign := activeCampaign()
	campaign.EmpresaID = "outra-empresa"
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: campaign}, &fakeResponseWriter{})

	_, err := uc.Submit(context.Background(), collaborator(), "camp-1", map[string]string{
		"q2": entities.LikertNeutro,
	})
	assert.ErrorIs(t, err, ErrCampanhaNaoEncontrada)
}

func TestSubmitRejectsInactiveCampaign(t *testing.T) {
	campaign := activeCampaign()
	campaign.Ativa = false
	uc := NewResponseUseCase(&fakeCampaignRepo{campaign: campaign}, &fakeResponseWriter{})

	_, err := uc.Submit(context.Background(), collaborator(), "camp-1", map[string]string{
		"q2": entities.LikertNeutro,
	})
	assert.ErrorIs(t, err, ErrCampanhaEncerrada)
}
