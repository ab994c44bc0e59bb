package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"gorm.io/gorm"
)

// UserRepository implementa o acesso a dados de usuários
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// FindByEmail busca o usuário pelo e-mail. Retorna (nil, nil) quando não existe.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário por e-mail: %w", err)
	}
	return &user, nil
}

// FindByID busca o usuário pelo ID. Retorna (nil, nil) quando não existe.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}
	return &user, nil
}

// List retorna usuários paginados, com filtro opcional por empresa e papel
func (r *UserRepository) List(ctx context.Context, page, limit int, empresaID, role string) ([]entities.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if empresaID != "" {
		query = query.Where("empresa_id = ?", empresaID)
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var users []entities.User
	var total int64
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar usuários: %w", err)
	}
	return users, total, nil
}

// Create persiste um novo usuário
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}
	return nil
}

// Update salva alterações do usuário
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	return nil
}

// Delete remove o usuário
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entities.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("erro ao remover usuário: %w", err)
	}
	return nil
}
