package entity

import "time"

// Perfis de acesso. Aprovador pode decidir requisições; administrador pode tudo.
const (
	PerfilAdministrador = "administrador"
	PerfilAprovador     = "aprovador"
	PerfilOperador      = "operador"
)

// Status de usuário.
const (
	UsuarioAtivo   = "Ativo"
	UsuarioInativo = "Inativo"
)

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID           string
	Nome         string
	Email        string
	SenhaHash    string
	Perfil       string
	SetorID      string
	Status       string
	UltimoAcesso *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
