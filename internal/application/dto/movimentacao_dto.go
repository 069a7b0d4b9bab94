package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimentacaoRequest body para POST /api/movimentacoes.
// ID é opcional: um ID gerado no cliente torna o replay idempotente.
type RegistrarMovimentacaoRequest struct {
	ID           string `json:"id,omitempty"`
	FerramentaID string `json:"ferramenta_id"`
	Tipo         string `json:"tipo"`
	Quantidade   int    `json:"quantidade"`
	Usuario      string `json:"usuario"`
	SetorID      string `json:"setor_id,omitempty"`
	Setor        string `json:"setor"`
	Observacoes  string `json:"observacoes,omitempty"`
}

// MovimentacaoResponse movimentação criada/listada, com saldo antes/depois e custo calculados.
type MovimentacaoResponse struct {
	ID               string          `json:"id"`
	FerramentaID     string          `json:"ferramenta_id"`
	Tipo             string          `json:"tipo"`
	Quantidade       int             `json:"quantidade"`
	QuantidadeAntes  int             `json:"quantidade_antes"`
	QuantidadeDepois int             `json:"quantidade_depois"`
	Usuario          string          `json:"usuario"`
	Setor            string          `json:"setor"`
	SetorID          string          `json:"setor_id,omitempty"`
	Observacoes      string          `json:"observacoes,omitempty"`
	CustoTotal       decimal.Decimal `json:"custo_total"`
	Status           string          `json:"status"`
	DataMovimento    time.Time       `json:"data_movimento"`
}

// SaldoFerramentaResponse snapshot do saldo de uma ferramenta.
type SaldoFerramentaResponse struct {
	FerramentaID         string `json:"ferramenta_id"`
	Codigo               string `json:"codigo"`
	QuantidadeTotal      int    `json:"quantidade_total"`
	QuantidadeDisponivel int    `json:"quantidade_disponivel"`
	QuantidadeMinima     int    `json:"quantidade_minima"`
	AbaixoDoMinimo       bool   `json:"abaixo_do_minimo"`
}
