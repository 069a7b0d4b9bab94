package relatorio

import (
	"context"
	"time"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// PainelUseCase agrega números do painel: cadastro de ferramentas, razão de
// movimentações num período e requisições por status. Somente leitura.
type PainelUseCase struct {
	repo repository.RelatorioRepository
}

// NewPainelUseCase constrói o caso de uso.
func NewPainelUseCase(repo repository.RelatorioRepository) *PainelUseCase {
	return &PainelUseCase{repo: repo}
}

// Gerar monta o painel para o intervalo [de, ate]. Intervalo vazio = últimos 30 dias.
func (uc *PainelUseCase) Gerar(ctx context.Context, de, ate time.Time) (*dto.PainelResponse, error) {
	if ate.IsZero() {
		ate = time.Now()
	}
	if de.IsZero() {
		de = ate.AddDate(0, 0, -30)
	}

	ferramentas, err := uc.repo.ResumoFerramentas()
	if err != nil {
		return nil, err
	}
	movimentacoes, err := uc.repo.ResumoMovimentacoes(de, ate)
	if err != nil {
		return nil, err
	}
	requisicoes, err := uc.repo.RequisicoesPorStatus()
	if err != nil {
		return nil, err
	}

	return &dto.PainelResponse{
		Periodo:              dto.PeriodoDTO{De: de, Ate: ate},
		TotalFerramentas:     ferramentas.Total,
		FerramentasAtivas:    ferramentas.Ativas,
		AbaixoDoMinimo:       ferramentas.AbaixoDoMinimo,
		TotalMovimentacoes:   movimentacoes.Quantidade,
		MovimentacoesPorTipo: movimentacoes.PorTipo,
		CustoTotalPeriodo:    movimentacoes.CustoTotal,
		RequisicoesPorStatus: requisicoes,
	}, nil
}
