package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/domain/repositories"
)

// ErrAcessoNegado indica que o chamador não é dono do recurso acessado
var ErrAcessoNegado = errors.New("acesso negado ao recurso de outra empresa")

// CampaignUseCase implementa os casos de uso de campanhas
type CampaignUseCase struct {
	campaignRepo *repositories.CampaignRepository
}

// NewCampaignUseCase cria uma nova instância de CampaignUseCase
func NewCampaignUseCase(campaignRepo *repositories.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// CampaignInput agrupa os campos editáveis de uma campanha
type CampaignInput struct {
	Nome       string     `json:"nome"`
	Descricao  string     `json:"descricao"`
	DataInicio *time.Time `json:"data_inicio"`
	DataFim    *time.Time `json:"data_fim"`
	Ativa      *bool      `json:"ativa"`
}

// List retorna as campanhas da empresa do chamador
func (uc *CampaignUseCase) List(ctx context.Context, empresaID string) ([]entities.Campaign, error) {
	return uc.campaignRepo.ListByCompany(ctx, empresaID)
}

// Get busca uma campanha garantindo a posse pela empresa do chamador
func (uc *CampaignUseCase) Get(ctx context.Context, id, empresaID string) (*entities.Campaign, error) {
	campaign, err := uc.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampanhaNaoEncontrada
	}
	if campaign.EmpresaID != empresaID {
		return nil, ErrAcessoNegado
	}
	return campaign, nil
}

// Create cria uma campanha para a empresa do chamador
func (uc *CampaignUseCase) Create(ctx context.Context, empresaID string, input CampaignInput) (*entities.Campaign, error) {
	campaign := &entities.Campaign{
		EmpresaID:  empresaID,
		Nome:       input.Nome,
		Descricao:  input.Descricao,
		DataInicio: input.DataInicio,
		DataFim:    input.DataFim,
		Ativa:      true,
	}
	if input.Ativa != nil {
		campaign.Ativa = *input.Ativa
	}
	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Update altera uma campanha da empresa do chamador
func (uc *CampaignUseCase) Update(ctx context.Context, id, empresaID string, input CampaignInput) (*entities.Campaign, error) {
	campaign, err := uc.Get(ctx, id, empresaID)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		campaign.Nome = input.Nome
	}
	if input.Descricao != "" {
		campaign.Descricao = input.Descricao
	}
	if input.DataInicio != nil {
		campaign.DataInicio = input.DataInicio
	}
	if input.DataFim != nil {
		campaign.DataFim = input.DataFim
	}
	if input.Ativa != nil {
		campaign.Ativa = *input.Ativa
	}

	if err := uc.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete remove uma campanha da empresa do chamador
func (uc *CampaignUseCase) Delete(ctx context.Context, id, empresaID string) error {
	if _, err := uc.Get(ctx, id, empresaID); err != nil {
		return err
	}
	return uc.campaignRepo.Delete(ctx, id)
}
