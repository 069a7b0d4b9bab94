package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumoFerramentas agregados do cadastro de ferramentas.
type ResumoFerramentas struct {
	Total         int
	Ativas        int
	AbaixoDoMinimo int
}

// ResumoMovimentacoes agregados do razão num período.
type ResumoMovimentacoes struct {
	Quantidade     int
	PorTipo        map[string]int
	CustoTotal     decimal.Decimal
}

// RelatorioRepository consultas agregadas somente-leitura para o painel.
type RelatorioRepository interface {
	ResumoFerramentas() (*ResumoFerramentas, error)
	ResumoMovimentacoes(de, ate time.Time) (*ResumoMovimentacoes, error)
	RequisicoesPorStatus() (map[string]int, error)
}
