package dto

import "time"

// CreateSetorRequest body para POST /api/setores.
type CreateSetorRequest struct {
	Nome        string `json:"nome"`
	Descricao   string `json:"descricao,omitempty"`
	Responsavel string `json:"responsavel,omitempty"`
}

// SetorResponse representação de um setor nas respostas.
type SetorResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Descricao   string    `json:"descricao,omitempty"`
	Responsavel string    `json:"responsavel,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateFornecedorRequest body para POST /api/fornecedores.
type CreateFornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj,omitempty"`
	Contato  string `json:"contato,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// UpdateFornecedorRequest body para PUT /api/fornecedores/:id. Campos vazios
// permanecem inalterados.
type UpdateFornecedorRequest struct {
	Nome     string `json:"nome,omitempty"`
	Contato  string `json:"contato,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Status   string `json:"status,omitempty"`
}

// FornecedorResponse representação de um fornecedor nas respostas.
type FornecedorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Contato   string    `json:"contato,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AlterarPerfilRequest body para PATCH /api/usuarios/:id/perfil.
type AlterarPerfilRequest struct {
	Perfil string `json:"perfil"`
}

// AlterarStatusRequest body para PATCH /api/usuarios/:id/status.
type AlterarStatusRequest struct {
	Status string `json:"status"`
}
