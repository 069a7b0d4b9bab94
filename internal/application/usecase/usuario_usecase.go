package usecase

import (
	"context"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// UsuarioUseCase consultas e administração de usuários (a criação é via auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar devolve todos os usuários.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return uc.repo.List()
}

// AlterarPerfil troca o perfil de acesso de um usuário.
func (uc *UsuarioUseCase) AlterarPerfil(ctx context.Context, id, perfil string) (*entity.Usuario, error) {
	switch perfil {
	case entity.PerfilAdministrador, entity.PerfilAprovador, entity.PerfilOperador:
	default:
		return nil, domain.NewValidationError("perfil")
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Entity: "usuário", ID: id}
	}
	u.Perfil = perfil
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// AlterarStatus ativa/inativa um usuário.
func (uc *UsuarioUseCase) AlterarStatus(ctx context.Context, id, status string) (*entity.Usuario, error) {
	if status != entity.UsuarioAtivo && status != entity.UsuarioInativo {
		return nil, domain.NewValidationError("status")
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Entity: "usuário", ID: id}
	}
	u.Status = status
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
