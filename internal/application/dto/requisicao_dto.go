package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequisicaoRequest body para POST /api/requisicoes.
// Obrigatórios: tipo, descricao, prioridade.
type CreateRequisicaoRequest struct {
	Tipo          string          `json:"tipo"`
	Descricao     string          `json:"descricao"`
	Solicitante   string          `json:"solicitante"`
	Setor         string          `json:"setor,omitempty"`
	Prioridade    string          `json:"prioridade"`
	Valor         decimal.Decimal `json:"valor,omitempty"`
	Prazo         *time.Time      `json:"prazo,omitempty"`
	Justificativa string          `json:"justificativa,omitempty"`
}

// DecisaoRequisicaoRequest body para aprovação/rejeição.
// Observações são opcionais na aprovação e obrigatórias na rejeição.
type DecisaoRequisicaoRequest struct {
	Observacoes string `json:"observacoes"`
}

// EditRequisicaoRequest body para PUT /api/requisicoes/:id.
// id, numero e data de abertura são imutáveis; status, quando presente,
// precisa ser uma transição válida da máquina de estados.
type EditRequisicaoRequest struct {
	Tipo          *string          `json:"tipo,omitempty"`
	Descricao     *string          `json:"descricao,omitempty"`
	Solicitante   *string          `json:"solicitante,omitempty"`
	Setor         *string          `json:"setor,omitempty"`
	Prioridade    *string          `json:"prioridade,omitempty"`
	Valor         *decimal.Decimal `json:"valor,omitempty"`
	Prazo         *time.Time       `json:"prazo,omitempty"`
	Justificativa *string          `json:"justificativa,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

// RequisicaoResponse representação de uma requisição nas respostas.
type RequisicaoResponse struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numero"`
	Tipo          string          `json:"tipo"`
	Descricao     string          `json:"descricao"`
	Solicitante   string          `json:"solicitante"`
	Setor         string          `json:"setor,omitempty"`
	Prioridade    string          `json:"prioridade"`
	Valor         decimal.Decimal `json:"valor"`
	DataAbertura  time.Time       `json:"data_abertura"`
	Prazo         *time.Time      `json:"prazo,omitempty"`
	Status        string          `json:"status"`
	Aprovador     string          `json:"aprovador,omitempty"`
	Justificativa string          `json:"justificativa,omitempty"`
	Observacoes   string          `json:"observacoes,omitempty"`
}
