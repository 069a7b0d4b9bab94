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

// SetorUseCase CRUD de setores (dado mestre).
type SetorUseCase struct {
	repo repository.SetorRepository
}

// NewSetorUseCase constrói o caso de uso.
func NewSetorUseCase(repo repository.SetorRepository) *SetorUseCase {
	return &SetorUseCase{repo: repo}
}

// Criar registra um novo setor.
func (uc *SetorUseCase) Criar(ctx context.Context, nome, descricao, responsavel string) (*entity.Setor, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, domain.NewValidationError("nome")
	}
	s := &entity.Setor{
		ID:          uuid.New().String(),
		Nome:        nome,
		Descricao:   descricao,
		Responsavel: responsavel,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Listar devolve todos os setores ordenados por nome.
func (uc *SetorUseCase) Listar(ctx context.Context) ([]*entity.Setor, error) {
	return uc.repo.List()
}

// Buscar devolve um setor por ID.
func (uc *SetorUseCase) Buscar(ctx context.Context, id string) (*entity.Setor, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &domain.NotFoundError{Entity: "setor", ID: id}
	}
	return s, nil
}
