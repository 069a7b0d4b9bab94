package repository

import "github.com/almeidajf/ferramentaria-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência de usuários.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
}
