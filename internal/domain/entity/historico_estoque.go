package entity

import "time"

// HistoricoEstoque é o registro de auditoria derivado de uma movimentação:
// snapshot antes/depois do saldo, independente do estado mutável da ferramenta.
// Criado na mesma transação da movimentação; nunca atualizado.
type HistoricoEstoque struct {
	ID                  string
	FerramentaID        string
	MovimentacaoID      string
	QuantidadeAnterior  int
	QuantidadeNova      int
	TipoAlteracao       string // tipo da movimentação que originou a alteração
	DataAlteracao       time.Time
}
