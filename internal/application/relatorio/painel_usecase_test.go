package relatorio_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/application/relatorio"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/memory"
)

// monta um cenário com ferramenta, movimentações e uma requisição pendente.
func seedPainel(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	ferramentaRepo := memory.NewFerramentaRepository(store)

	f := &entity.Ferramenta{
		ID:                   uuid.New().String(),
		Codigo:               "FRS-001",
		Descricao:            "Fresa de topo 10mm",
		QuantidadeTotal:      10,
		QuantidadeDisponivel: 10,
		QuantidadeMinima:     4,
		CustoUnitario:        decimal.RequireFromString("25.50"),
		Status:               entity.FerramentaAtiva,
	}
	require.NoError(t, ferramentaRepo.Create(f))

	movUC := estoque.NewMovimentacaoUseCase(tx, ferramentaRepo,
		memory.NewMovimentacaoRepository(store), memory.NewSetorRepository(store))
	for _, mov := range []struct {
		tipo string
		qtd  int
	}{
		{entity.MovimentacaoSaida, 4},
		{entity.MovimentacaoSaida, 3},
		{entity.MovimentacaoRetorno, 2},
	} {
		_, err := movUC.Registrar(context.Background(), dto.RegistrarMovimentacaoRequest{
			FerramentaID: f.ID,
			Tipo:         mov.tipo,
			Quantidade:   mov.qtd,
			Usuario:      "joao.silva",
			Setor:        "Usinagem",
		})
		require.NoError(t, err)
	}

	reqUC := requisicao.NewUseCase(tx, memory.NewRequisicaoRepository(store))
	_, err := reqUC.Criar(context.Background(), dto.CreateRequisicaoRequest{
		Tipo:       entity.RequisicaoCompra,
		Descricao:  "Reposição de fresas",
		Prioridade: entity.PrioridadeAlta,
	})
	require.NoError(t, err)

	return store
}

func TestGerarPainel_AgregaCadastroRazaoERequisicoes(t *testing.T) {
	store := seedPainel(t)
	uc := relatorio.NewPainelUseCase(memory.NewRelatorioRepository(store))

	painel, err := uc.Gerar(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 1, painel.TotalFerramentas)
	assert.Equal(t, 1, painel.FerramentasAtivas)
	// ficaram 5 disponíveis de mínimo 4 -> sem alerta
	assert.Equal(t, 0, painel.AbaixoDoMinimo)

	assert.Equal(t, 3, painel.TotalMovimentacoes)
	assert.Equal(t, 2, painel.MovimentacoesPorTipo[entity.MovimentacaoSaida])
	assert.Equal(t, 1, painel.MovimentacoesPorTipo[entity.MovimentacaoRetorno])
	// 25.50 * (4 + 3 + 2)
	assert.True(t, decimal.RequireFromString("229.50").Equal(painel.CustoTotalPeriodo),
		"custo do período soma todas as movimentações, obtido %s", painel.CustoTotalPeriodo)

	assert.Equal(t, 1, painel.RequisicoesPorStatus[entity.RequisicaoPendente])
}

func TestGerarPainel_PeriodoPadrao30Dias(t *testing.T) {
	store := memory.NewStore()
	uc := relatorio.NewPainelUseCase(memory.NewRelatorioRepository(store))

	painel, err := uc.Gerar(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	dias := painel.Periodo.Ate.Sub(painel.Periodo.De).Hours() / 24
	assert.InDelta(t, 30, dias, 0.1)
}

func TestGerarPainel_MovimentacaoForaDoPeriodoNaoConta(t *testing.T) {
	store := seedPainel(t)
	uc := relatorio.NewPainelUseCase(memory.NewRelatorioRepository(store))

	// Janela inteiramente no passado: nada de movimentação.
	ate := time.Now().AddDate(0, 0, -1)
	de := ate.AddDate(0, 0, -30)
	painel, err := uc.Gerar(context.Background(), de, ate)
	require.NoError(t, err)

	assert.Equal(t, 0, painel.TotalMovimentacoes)
	assert.True(t, painel.CustoTotalPeriodo.IsZero())
	// Cadastro e requisições não dependem do período.
	assert.Equal(t, 1, painel.TotalFerramentas)
	assert.Equal(t, 1, painel.RequisicoesPorStatus[entity.RequisicaoPendente])
}
