package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/domain/repositories"
)

// Erros de gestão de usuários
var (
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("e-mail já cadastrado")
)

// UserUseCase implementa os casos de uso administrativos de usuários
type UserUseCase struct {
	userRepo *repositories.UserRepository
}

// NewUserUseCase cria uma nova instância de UserUseCase
func NewUserUseCase(userRepo *repositories.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// UserInput agrupa os campos editáveis de um usuário
type UserInput struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Senha      string `json:"senha"`
	Role       string `json:"role"`
	EmpresaID  string `json:"empresa_id"`
	Unidade    string `json:"unidade"`
	Genero     string `json:"genero"`
	NivelCargo string `json:"nivelCargo"`
	Area       string `json:"area"`
}

func validRole(role string) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleEmpresa, entities.RoleColaborador:
		return true
	}
	return false
}

// List devolve usuários paginados com filtros opcionais
func (uc *UserUseCase) List(ctx context.Context, page, limit int, empresaID, role string) ([]entities.User, int64, error) {
	return uc.userRepo.List(ctx, page, limit, empresaID, role)
}

// Get busca um usuário pelo ID
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return user, nil
}

// Create cadastra um usuário com senha hasheada
func (uc *UserUseCase) Create(ctx context.Context, input UserInput) (*entities.User, error) {
	if !validRole(input.Role) {
		return nil, fmt.Errorf("papel inválido: %q", input.Role)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailJaCadastrado
	}

	hash, err := HashPassword(input.Senha)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar hash de senha: %w", err)
	}

	user := &entities.User{
		Nome:       input.Nome,
		Email:      input.Email,
		SenhaHash:  hash,
		Role:       input.Role,
		EmpresaID:  input.EmpresaID,
		Unidade:    input.Unidade,
		Genero:     input.Genero,
		NivelCargo: input.NivelCargo,
		Area:       input.Area,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update altera um usuário existente
func (uc *UserUseCase) Update(ctx context.Context, id string, input UserInput) (*entities.User, error) {
	user, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		user.Nome = input.Nome
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Senha != "" {
		hash, err := HashPassword(input.Senha)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar hash de senha: %w", err)
		}
		user.SenhaHash = hash
	}
	if input.Role != "" {
		if !validRole(input.Role) {
			return nil, fmt.Errorf("papel inválido: %q", input.Role)
		}
		user.Role = input.Role
	}
	if input.EmpresaID != "" {
		user.EmpresaID = input.EmpresaID
	}
	if input.Unidade != "" {
		user.Unidade = input.Unidade
	}
	if input.Genero != "" {
		user.Genero = input.Genero
	}
	if input.NivelCargo != "" {
		user.NivelCargo = input.NivelCargo
	}
	if input.Area != "" {
		user.Area = input.Area
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete remove um usuário
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}
