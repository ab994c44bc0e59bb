package repositories

import (
	"context"
	"fmt"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ResponseRepository implementa o acesso a dados de respostas de questionário
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository cria uma nova instância de ResponseRepository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// FindFiltered retorna as respostas da empresa restritas pelo filtro de
// segmentação. O filtro é aplicado na consulta, antes do motor de scoring.
func (r *ResponseRepository) FindFiltered(ctx context.Context, empresaID string, filter entities.ResponseFilter) ([]entities.SurveyResponse, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.SurveyResponse{}).
		Where("empresa_id = ?", empresaID).
		Preload("Answers")

	if filter.Unidade != "" {
		query = query.Where("unidade = ?", filter.Unidade)
	}
	if filter.Genero != "" {
		query = query.Where("genero = ?", filter.Genero)
	}
	if filter.NivelCargo != "" {
		query = query.Where("nivel_cargo = ?", filter.NivelCargo)
	}
	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}

	var responses []entities.SurveyResponse
	if err := query.Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas filtradas: %w", err)
	}
	return responses, nil
}

// FindAllByCompany retorna todas as respostas da empresa, sem filtros.
// Usado como linha de base (companyAverageFactors) do dashboard.
func (r *ResponseRepository) FindAllByCompany(ctx context.Context, empresaID string) ([]entities.SurveyResponse, error) {
	var responses []entities.SurveyResponse
	err := r.db.WithContext(ctx).
		Model(&entities.SurveyResponse{}).
		Where("empresa_id = ?", empresaID).
		Preload("Answers").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas da empresa: %w", err)
	}
	return responses, nil
}

// ExistsForUserAndCampaign indica se o colaborador já respondeu a campanha
func (r *ResponseRepository) ExistsForUserAndCampaign(ctx context.Context, userID, campanhaID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.SurveyResponse{}).
		Where("user_id = ? AND campanha_id = ?", userID, campanhaID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("erro ao verificar resposta existente: %w", err)
	}
	return count > 0, nil
}

// Create persiste a resposta completa com suas linhas de resposta individuais
func (r *ResponseRepository) Create(ctx context.Context, response *entities.SurveyResponse) error {
	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return fmt.Errorf("erro ao salvar resposta: %w", err)
	}
	return nil
}
