package repository

import "github.com/almeidajf/ferramentaria-api/internal/domain/entity"

// SetorRepository define o porto de persistência de setores.
type SetorRepository interface {
	Create(s *entity.Setor) error
	GetByID(id string) (*entity.Setor, error)
	List() ([]*entity.Setor, error)
}
