package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrCredenciaisInvalidas cobre tanto e-mail desconhecido quanto senha errada,
// sem distinguir os dois casos para o cliente
var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

// IUserRepository define o que a autenticação precisa do repositório de usuários
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}

// AuthUseCase implementa login e emissão de tokens
type AuthUseCase struct {
	userRepo IUserRepository
	secret   string
	tokenTTL time.Duration
}

// NewAuthUseCase cria uma nova instância de AuthUseCase
func NewAuthUseCase(userRepo IUserRepository, secret string) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: 24 * time.Hour,
	}
}

// Login valida as credenciais e devolve o usuário com um token assinado
func (uc *AuthUseCase) Login(ctx context.Context, email, senha string) (*entities.User, string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		return nil, "", ErrCredenciaisInvalidas
	}

	token, err := utils.GenerateToken(user, uc.secret, uc.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// HashPassword gera o hash bcrypt usado no cadastro de usuários
func HashPassword(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
