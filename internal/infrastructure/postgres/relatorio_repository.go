package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas agregadas para o painel. Somente leitura.
type RelatorioRepo struct {
	q Querier
}

func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

func (r *RelatorioRepo) ResumoFerramentas() (*repository.ResumoFerramentas, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $1 AND quantidade_disponivel < quantidade_minima)
		FROM ferramentas`
	var res repository.ResumoFerramentas
	err := r.q.QueryRow(context.Background(), query, entity.FerramentaAtiva).
		Scan(&res.Total, &res.Ativas, &res.AbaixoDoMinimo)
	if err != nil {
		return nil, fmt.Errorf("resumo ferramentas: %w", err)
	}
	return &res, nil
}

func (r *RelatorioRepo) ResumoMovimentacoes(de, ate time.Time) (*repository.ResumoMovimentacoes, error) {
	query := `
		SELECT tipo, COUNT(*), COALESCE(SUM(custo_total), 0)
		FROM movimentacoes
		WHERE data_movimento >= $1 AND data_movimento <= $2
		GROUP BY tipo`
	rows, err := r.q.Query(context.Background(), query, de, ate)
	if err != nil {
		return nil, fmt.Errorf("resumo movimentacoes: %w", err)
	}
	defer rows.Close()

	res := &repository.ResumoMovimentacoes{
		PorTipo:    make(map[string]int),
		CustoTotal: decimal.Zero,
	}
	for rows.Next() {
		var tipo string
		var qtd int
		var custo decimal.Decimal
		if err := rows.Scan(&tipo, &qtd, &custo); err != nil {
			return nil, fmt.Errorf("scan resumo movimentacoes: %w", err)
		}
		res.PorTipo[tipo] = qtd
		res.Quantidade += qtd
		res.CustoTotal = res.CustoTotal.Add(custo)
	}
	return res, rows.Err()
}

func (r *RelatorioRepo) RequisicoesPorStatus() (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM requisicoes GROUP BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("requisicoes por status: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var qtd int
		if err := rows.Scan(&status, &qtd); err != nil {
			return nil, fmt.Errorf("scan requisicoes por status: %w", err)
		}
		out[status] = qtd
	}
	return out, rows.Err()
}
