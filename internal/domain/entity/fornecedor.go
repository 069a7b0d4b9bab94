package entity

import "time"

// Status de fornecedor.
const (
	FornecedorAtivo   = "Ativo"
	FornecedorInativo = "Inativo"
)

// Fornecedor é dado mestre consumido por custos e requisições de compra.
type Fornecedor struct {
	ID        string
	Nome      string
	CNPJ      string
	Contato   string
	Email     string
	Telefone  string
	Endereco  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
