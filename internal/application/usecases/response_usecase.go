package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
)

// Erros de submissão do questionário
var (
	ErrCampanhaNaoEncontrada = errors.New("campanha não encontrada")
	ErrCampanhaEncerrada     = errors.New("campanha não está ativa")
	ErrRespostaDuplicada     = errors.New("colaborador já respondeu esta campanha")
	ErrRespostaVazia         = errors.New("nenhuma resposta informada")
)

// ICampaignRepository define o que a submissão precisa do repositório de campanhas
type ICampaignRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Campaign, error)
}

// IResponseWriter define as operações de escrita usadas na submissão
type IResponseWriter interface {
	ExistsForUserAndCampaign(ctx context.Context, userID, campanhaID string) (bool, error)
	Create(ctx context.Context, response *entities.SurveyResponse) error
}

// ResponseUseCase implementa a submissão do questionário pelo colaborador
type ResponseUseCase struct {
	campaignRepo ICampaignRepository
	responseRepo IResponseWriter
}

// NewResponseUseCase cria uma nova instância de ResponseUseCase
func NewResponseUseCase(campaignRepo ICampaignRepository, responseRepo IResponseWriter) *ResponseUseCase {
	return &ResponseUseCase{
		campaignRepo: campaignRepo,
		responseRepo: responseRepo,
	}
}

// Submit valida e persiste a resposta de um colaborador a uma campanha.
// Cada rótulo precisa ser um dos 5 canônicos; a segmentação do colaborador é
// congelada na resposta no momento do envio.
func (uc *ResponseUseCase) Submit(ctx context.Context, user *entities.User, campanhaID string, respostas map[string]string) (*entities.SurveyResponse, error) {
	if len(respostas) == 0 {
		return nil, ErrRespostaVazia
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, campanhaID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || campaign.EmpresaID != user.EmpresaID {
		return nil, ErrCampanhaNaoEncontrada
	}
	if !campaign.Ativa {
		return nil, ErrCampanhaEncerrada
	}

	exists, err := uc.responseRepo.ExistsForUserAndCampaign(ctx, user.ID, campanhaID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRespostaDuplicada
	}

	answers := make([]entities.ResponseAnswer, 0, len(respostas))
	for questionID, label := range respostas {
		score, valid := entities.LikertScore(label)
		if !valid {
			return nil, fmt.Errorf("resposta inválida para %s: %q", questionID, label)
		}
		answers = append(answers, entities.ResponseAnswer{
			QuestionID: questionID,
			Value:      label,
			Score:      score,
		})
	}

	response := &entities.SurveyResponse{
		EmpresaID:  user.EmpresaID,
		UserID:     user.ID,
		CampanhaID: campanhaID,
		Unidade:    user.Unidade,
		Genero:     user.Genero,
		NivelCargo: user.NivelCargo,
		Area:       user.Area,
		Answers:    answers,
	}

	if err := uc.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}
	return response, nil
}
