package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores (dado mestre).
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar registra um novo fornecedor, ativo por padrão.
func (uc *FornecedorUseCase) Criar(ctx context.Context, f *entity.Fornecedor) (*entity.Fornecedor, error) {
	if strings.TrimSpace(f.Nome) == "" {
		return nil, domain.NewValidationError("nome")
	}
	now := time.Now()
	f.ID = uuid.New().String()
	if f.Status == "" {
		f.Status = entity.FornecedorAtivo
	}
	f.CreatedAt = now
	f.UpdatedAt = now
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Atualizar substitui os campos mutáveis de um fornecedor.
func (uc *FornecedorUseCase) Atualizar(ctx context.Context, id string, patch *entity.Fornecedor) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &domain.NotFoundError{Entity: "fornecedor", ID: id}
	}
	if patch.Nome != "" {
		f.Nome = patch.Nome
	}
	if patch.CNPJ != "" {
		f.CNPJ = patch.CNPJ
	}
	if patch.Contato != "" {
		f.Contato = patch.Contato
	}
	if patch.Email != "" {
		f.Email = patch.Email
	}
	if patch.Telefone != "" {
		f.Telefone = patch.Telefone
	}
	if patch.Endereco != "" {
		f.Endereco = patch.Endereco
	}
	if patch.Status != "" {
		f.Status = patch.Status
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Listar devolve fornecedores, opcionalmente filtrados por status.
func (uc *FornecedorUseCase) Listar(ctx context.Context, status string) ([]*entity.Fornecedor, error) {
	return uc.repo.List(status)
}
