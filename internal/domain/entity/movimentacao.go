package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada     = "Entrada"     // compra/reposição: soma no total e no disponível
	MovimentacaoSaida       = "Saída"       // retirada para uso: subtrai do disponível
	MovimentacaoReafiamento = "Reafiamento" // envio para reafiação: subtrai do disponível
	MovimentacaoRetorno     = "Retorno"     // retorno de uso/reafiação: soma no disponível
	MovimentacaoDescarte    = "Descarte"    // baixa definitiva: subtrai do total e do disponível
)

// Status de uma movimentação. O registro é criado já concluído.
const MovimentacaoConcluida = "Concluído"

// Movimentacao é um lançamento imutável do razão de estoque (append-only).
// Invariante: QuantidadeDepois == QuantidadeAntes + delta(Tipo, Quantidade),
// onde Entrada/Retorno somam e Saída/Reafiamento/Descarte subtraem.
type Movimentacao struct {
	ID               string
	FerramentaID     string
	Tipo             string
	Quantidade       int
	QuantidadeAntes  int
	QuantidadeDepois int
	Usuario          string // responsável pela movimentação
	Setor            string
	SetorID          string
	Observacoes      string
	CustoTotal       decimal.Decimal // Quantidade * CustoUnitario da ferramenta
	Status           string
	DataMovimento    time.Time
	CreatedAt        time.Time
}

// Delta devolve o delta com sinal aplicado ao saldo disponível para um tipo de movimentação.
func Delta(tipo string, quantidade int) int {
	switch tipo {
	case MovimentacaoEntrada, MovimentacaoRetorno:
		return quantidade
	case MovimentacaoSaida, MovimentacaoReafiamento, MovimentacaoDescarte:
		return -quantidade
	}
	return 0
}

// TipoMovimentacaoValido informa se o tipo pertence ao conjunto permitido.
func TipoMovimentacaoValido(tipo string) bool {
	switch tipo {
	case MovimentacaoEntrada, MovimentacaoSaida, MovimentacaoReafiamento,
		MovimentacaoRetorno, MovimentacaoDescarte:
		return true
	}
	return false
}

// TipoSaidaDeEstoque informa se o tipo consome saldo disponível.
func TipoSaidaDeEstoque(tipo string) bool {
	switch tipo {
	case MovimentacaoSaida, MovimentacaoReafiamento, MovimentacaoDescarte:
		return true
	}
	return false
}
