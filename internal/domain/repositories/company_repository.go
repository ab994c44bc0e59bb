package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"gorm.io/gorm"
)

// CompanyRepository implementa o acesso a dados de empresas
type CompanyRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewCompanyRepository cria uma nova instância de CompanyRepository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// FindByID busca a empresa pelo ID. Retorna (nil, nil) quando não existe.
// O registro muda raramente, então passa por um cache curto; o dashboard em si
// nunca é cacheado.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	cacheKey := "empresa:" + id
	if cached, found := r.cache.Get(cacheKey); found {
		company := cached.(entities.Company)
		return &company, nil
	}

	var company entities.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar empresa: %w", err)
	}

	r.cache.Set(cacheKey, company, cache.DefaultExpiration)
	return &company, nil
}

// CountCollaborators conta os usuários colaboradores da empresa. Usado como
// fallback quando o headcount declarado é zero.
func (r *CompanyRepository) CountCollaborators(ctx context.Context, empresaID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("empresa_id = ? AND role = ?", empresaID, entities.RoleColaborador).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("erro ao contar colaboradores: %w", err)
	}
	return count, nil
}

// List retorna empresas paginadas
func (r *CompanyRepository) List(ctx context.Context, page, limit int) ([]entities.Company, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var companies []entities.Company
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Company{})
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&companies).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar empresas: %w", err)
	}
	return companies, total, nil
}

// Create persiste uma nova empresa
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("erro ao criar empresa: %w", err)
	}
	return nil
}

// Update salva alterações e invalida o cache da empresa
func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}
	r.cache.Delete("empresa:" + company.ID)
	return nil
}

// Delete remove a empresa e invalida o cache
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Company{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("erro ao remover empresa: %w", err)
	}
	r.cache.Delete("empresa:" + id)
	return nil
}
