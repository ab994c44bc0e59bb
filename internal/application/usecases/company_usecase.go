package usecases

import (
	"context"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/salusmind/psicossocial-api/internal/domain/repositories"
)

// CompanyUseCase implementa os casos de uso administrativos de empresas
type CompanyUseCase struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyUseCase cria uma nova instância de CompanyUseCase
func NewCompanyUseCase(companyRepo *repositories.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
	}
}

// CompanyInput agrupa os campos editáveis de uma empresa
type CompanyInput struct {
	Nome             string `json:"nome"`
	CNPJ             string `json:"cnpj"`
	Setor            string `json:"setor"`
	NumColaboradores int    `json:"numColaboradores"`
	Ativa            *bool  `json:"ativa"`
}

// List devolve empresas paginadas
func (uc *CompanyUseCase) List(ctx context.Context, page, limit int) ([]entities.Company, int64, error) {
	return uc.companyRepo.List(ctx, page, limit)
}

// Get busca uma empresa pelo ID
func (uc *CompanyUseCase) Get(ctx context.Context, id string) (*entities.Company, error) {
	company, err := uc.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrEmpresaNaoEncontrada
	}
	return company, nil
}

// Create cria uma empresa
func (uc *CompanyUseCase) Create(ctx context.Context, input CompanyInput) (*entities.Company, error) {
	company := &entities.Company{
		Nome:             input.Nome,
		CNPJ:             input.CNPJ,
		Setor:            input.Setor,
		NumColaboradores: input.NumColaboradores,
		Ativa:            true,
	}
	if input.Ativa != nil {
		company.Ativa = *input.Ativa
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update altera uma empresa existente
func (uc *CompanyUseCase) Update(ctx context.Context, id string, input CompanyInput) (*entities.Company, error) {
	company, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nome != "" {
		company.Nome = input.Nome
	}
	if input.CNPJ != "" {
		company.CNPJ = input.CNPJ
	}
	if input.Setor != "" {
		company.Setor = input.Setor
	}
	if input.NumColaboradores > 0 {
		company.NumColaboradores = input.NumColaboradores
	}
	if input.Ativa != nil {
		company.Ativa = *input.Ativa
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete remove uma empresa
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.companyRepo.Delete(ctx, id)
}
