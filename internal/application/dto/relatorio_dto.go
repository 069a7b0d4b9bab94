package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PainelResponse agregados do painel: cadastro, razão do período e requisições.
type PainelResponse struct {
	Periodo              PeriodoDTO      `json:"periodo"`
	TotalFerramentas     int             `json:"total_ferramentas"`
	FerramentasAtivas    int             `json:"ferramentas_ativas"`
	AbaixoDoMinimo       int             `json:"abaixo_do_minimo"`
	TotalMovimentacoes   int             `json:"total_movimentacoes"`
	MovimentacoesPorTipo map[string]int  `json:"movimentacoes_por_tipo"`
	CustoTotalPeriodo    decimal.Decimal `json:"custo_total_periodo"`
	RequisicoesPorStatus map[string]int  `json:"requisicoes_por_status"`
}

// PeriodoDTO intervalo consultado.
type PeriodoDTO struct {
	De  time.Time `json:"de"`
	Ate time.Time `json:"ate"`
}
