package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"gorm.io/gorm"
)

// CampaignRepository implementa o acesso a dados de campanhas
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository cria uma nova instância de CampaignRepository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{
		db: db,
	}
}

// ListByCompany retorna as campanhas da empresa, mais recentes primeiro
func (r *CampaignRepository) ListByCompany(ctx context.Context, empresaID string) ([]entities.Campaign, error) {
	var campaigns []entities.Campaign
	err := r.db.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("created_at desc").
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas: %w", err)
	}
	return campaigns, nil
}

// FindByID busca a campanha pelo ID. Retorna (nil, nil) quando não existe.
func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*entities.Campaign, error) {
	var campaign entities.Campaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}
	return &campaign, nil
}

// Create persiste uma nova campanha
func (r *CampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return fmt.Errorf("erro ao criar campanha: %w", err)
	}
	return nil
}

// Update salva alterações da campanha
func (r *CampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}
	return nil
}

// Delete remove a campanha
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Campaign{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("erro ao remover campanha: %w", err)
	}
	return nil
}
