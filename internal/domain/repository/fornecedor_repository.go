package repository

import "github.com/almeidajf/ferramentaria-api/internal/domain/entity"

// FornecedorRepository define o porto de persistência de fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	List(status string) ([]*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
}
