package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFerramentaRequest body para POST /api/ferramentas.
type CreateFerramentaRequest struct {
	Codigo           string          `json:"codigo"`
	Descricao        string          `json:"descricao"`
	Fabricante       string          `json:"fabricante,omitempty"`
	Categoria        string          `json:"categoria,omitempty"`
	QuantidadeTotal  int             `json:"quantidade_total"`
	QuantidadeMinima int             `json:"quantidade_minima"`
	CustoUnitario    decimal.Decimal `json:"custo_unitario"`
	Localizacao      string          `json:"localizacao,omitempty"`
}

// UpdateFerramentaRequest body para PUT /api/ferramentas/:id.
// Contadores de saldo não são editáveis aqui; só mudam via movimentação.
type UpdateFerramentaRequest struct {
	Descricao        *string          `json:"descricao,omitempty"`
	Fabricante       *string          `json:"fabricante,omitempty"`
	Categoria        *string          `json:"categoria,omitempty"`
	QuantidadeMinima *int             `json:"quantidade_minima,omitempty"`
	CustoUnitario    *decimal.Decimal `json:"custo_unitario,omitempty"`
	Localizacao      *string          `json:"localizacao,omitempty"`
	Status           *string          `json:"status,omitempty"`
}

// FerramentaResponse representação de uma ferramenta nas respostas.
type FerramentaResponse struct {
	ID                   string          `json:"id"`
	Codigo               string          `json:"codigo"`
	Descricao            string          `json:"descricao"`
	Fabricante           string          `json:"fabricante,omitempty"`
	Categoria            string          `json:"categoria,omitempty"`
	QuantidadeTotal      int             `json:"quantidade_total"`
	QuantidadeDisponivel int             `json:"quantidade_disponivel"`
	QuantidadeMinima     int             `json:"quantidade_minima"`
	CustoUnitario        decimal.Decimal `json:"custo_unitario"`
	Localizacao          string          `json:"localizacao,omitempty"`
	Status               string          `json:"status"`
	AbaixoDoMinimo       bool            `json:"abaixo_do_minimo"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
