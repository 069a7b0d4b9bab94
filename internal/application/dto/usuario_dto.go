package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Senha   string `json:"senha"`
	Perfil  string `json:"perfil,omitempty"`
	SetorID string `json:"setor_id,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse representação de um usuário nas respostas (sem hash de senha).
type UsuarioResponse struct {
	ID           string     `json:"id"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	Perfil       string     `json:"perfil"`
	SetorID      string     `json:"setor_id,omitempty"`
	Status       string     `json:"status"`
	UltimoAcesso *time.Time `json:"ultimo_acesso,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
