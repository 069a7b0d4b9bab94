package estoque_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	store          *memory.Store
	uc             *estoque.MovimentacaoUseCase
	ferramentaRepo repository.FerramentaRepository
	movRepo        repository.MovimentacaoRepository
	histRepo       repository.HistoricoEstoqueRepository
	setorRepo      repository.SetorRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	ferramentaRepo := memory.NewFerramentaRepository(store)
	movRepo := memory.NewMovimentacaoRepository(store)
	setorRepo := memory.NewSetorRepository(store)
	uc := estoque.NewMovimentacaoUseCase(memory.NewTxRunner(store), ferramentaRepo, movRepo, setorRepo)
	return &testEnv{
		store:          store,
		uc:             uc,
		ferramentaRepo: ferramentaRepo,
		movRepo:        movRepo,
		histRepo:       memory.NewHistoricoEstoqueRepository(store),
		setorRepo:      setorRepo,
	}
}

// novaFerramenta grava uma ferramenta com saldo total == disponível.
func (env *testEnv) novaFerramenta(t *testing.T, total int, custo string) *entity.Ferramenta {
	t.Helper()
	f := &entity.Ferramenta{
		ID:                   uuid.New().String(),
		Codigo:               "FRS-" + uuid.New().String()[:8],
		Descricao:            "Fresa de topo 10mm",
		QuantidadeTotal:      total,
		QuantidadeDisponivel: total,
		QuantidadeMinima:     2,
		CustoUnitario:        decimal.RequireFromString(custo),
		Status:               entity.FerramentaAtiva,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	require.NoError(t, env.ferramentaRepo.Create(f))
	return f
}

func (env *testEnv) registrar(t *testing.T, ferramentaID, tipo string, qtd int) (*entity.Movimentacao, error) {
	t.Helper()
	return env.uc.Registrar(context.Background(), dto.RegistrarMovimentacaoRequest{
		FerramentaID: ferramentaID,
		Tipo:         tipo,
		Quantidade:   qtd,
		Usuario:      "joao.silva",
		Setor:        "Usinagem",
	})
}

func (env *testEnv) saldo(t *testing.T, id string) (total, disponivel int) {
	t.Helper()
	f, err := env.ferramentaRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f.QuantidadeTotal, f.QuantidadeDisponivel
}

// ──────────────────────────────────────────────────────────────────────────────
// Efeito de cada tipo sobre os contadores
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSomaTotalEDisponivel(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	mov, err := env.registrar(t, f.ID, entity.MovimentacaoEntrada, 5)
	require.NoError(t, err)

	assert.Equal(t, 10, mov.QuantidadeAntes)
	assert.Equal(t, 15, mov.QuantidadeDepois)
	assert.Equal(t, entity.MovimentacaoConcluida, mov.Status)

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 15, total, "entrada deve somar no total")
	assert.Equal(t, 15, disp, "entrada deve somar no disponível")
}

func TestRegistrar_SaidaSubtraiApenasDisponivel(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	mov, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, 4)
	require.NoError(t, err)

	assert.Equal(t, 10, mov.QuantidadeAntes)
	assert.Equal(t, 6, mov.QuantidadeDepois)

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 10, total, "saída não altera o total possuído")
	assert.Equal(t, 6, disp)
}

func TestRegistrar_DescarteSubtraiTotalEDisponivel(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoDescarte, 3)
	require.NoError(t, err)

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 7, total, "descarte dá baixa no total")
	assert.Equal(t, 7, disp)
}

func TestRegistrar_CicloReafiamentoERetorno(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoReafiamento, 6)
	require.NoError(t, err)
	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 10, total)
	assert.Equal(t, 4, disp)

	_, err = env.registrar(t, f.ID, entity.MovimentacaoRetorno, 6)
	require.NoError(t, err)
	total, disp = env.saldo(t, f.ID)
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, disp, "retorno devolve o que saiu")
}

func TestRegistrar_RetornoNaoUltrapassaTotal(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoRetorno, 1)
	require.Error(t, err, "retorno sem saída pendente deixaria disponível > total")

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "quantidade")

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, disp, "movimentação recusada não pode alterar o saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo insuficiente
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidaMaiorQueDisponivel(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 3, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, 5)
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	_, disp := env.saldo(t, f.ID)
	assert.Equal(t, 3, disp, "tentativa recusada não altera o saldo")

	movs, err := env.movRepo.List(repository.MovimentacaoFilter{FerramentaID: f.ID}, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, movs, "tentativa recusada não entra no razão")
}

func TestRegistrar_DescarteMaiorQueDisponivel(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 2, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoDescarte, 5)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, disp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_CamposObrigatoriosAusentes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Registrar(context.Background(), dto.RegistrarMovimentacaoRequest{})
	require.Error(t, err)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.ElementsMatch(t,
		[]string{"ferramenta_id", "tipo", "quantidade", "usuario", "setor"},
		valErr.Fields,
		"todos os campos ausentes devem ser reportados de uma vez")
}

func TestRegistrar_QuantidadeNegativa(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, -2)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"quantidade"}, valErr.Fields)
}

func TestRegistrar_TipoDesconhecido(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.registrar(t, f.ID, "Emprestimo", 1)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"tipo"}, valErr.Fields)
}

func TestRegistrar_FerramentaInexistente(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.registrar(t, uuid.New().String(), entity.MovimentacaoEntrada, 1)

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "ferramenta", nfErr.Entity)
}

func TestRegistrar_SetorIDDesconhecido(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	_, err := env.uc.Registrar(context.Background(), dto.RegistrarMovimentacaoRequest{
		FerramentaID: f.ID,
		Tipo:         entity.MovimentacaoSaida,
		Quantidade:   1,
		Usuario:      "joao.silva",
		Setor:        "Usinagem",
		SetorID:      uuid.New().String(),
	})

	var nfErr *domain.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "setor", nfErr.Entity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Custo, histórico e replay idempotente
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_CustoTotalCalculado(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	mov, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, 4)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("102.00").Equal(mov.CustoTotal),
		"custo total = custo unitário x quantidade (25.50 x 4)")
}

func TestRegistrar_GravaHistoricoNaMesmaTransacao(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	mov, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, 4)
	require.NoError(t, err)

	hist, err := env.histRepo.ListByFerramenta(f.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, mov.ID, hist[0].MovimentacaoID)
	assert.Equal(t, 10, hist[0].QuantidadeAnterior)
	assert.Equal(t, 6, hist[0].QuantidadeNova)
	assert.Equal(t, entity.MovimentacaoSaida, hist[0].TipoAlteracao)
}

func TestRegistrar_ReplayComMesmoIDNaoReaplicaDelta(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 10, "25.50")

	req := dto.RegistrarMovimentacaoRequest{
		ID:           uuid.New().String(),
		FerramentaID: f.ID,
		Tipo:         entity.MovimentacaoSaida,
		Quantidade:   4,
		Usuario:      "joao.silva",
		Setor:        "Usinagem",
	}

	primeira, err := env.uc.Registrar(context.Background(), req)
	require.NoError(t, err)

	segunda, err := env.uc.Registrar(context.Background(), req)
	require.NoError(t, err, "replay do mesmo id deve devolver o registro original")
	assert.Equal(t, primeira.ID, segunda.ID)
	assert.Equal(t, primeira.QuantidadeDepois, segunda.QuantidadeDepois)

	_, disp := env.saldo(t, f.ID)
	assert.Equal(t, 6, disp, "o delta deve ser aplicado uma única vez")

	movs, err := env.movRepo.List(repository.MovimentacaoFilter{FerramentaID: f.ID}, 50, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concorrência: saídas disputando o mesmo saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidasConcorrentesNuncaNegativam(t *testing.T) {
	env := newTestEnv(t)
	const estoqueInicial = 5
	const tentativas = 20
	f := env.novaFerramenta(t, estoqueInicial, "25.50")

	var wg sync.WaitGroup
	resultados := make(chan error, tentativas)
	for i := 0; i < tentativas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.uc.Registrar(context.Background(), dto.RegistrarMovimentacaoRequest{
				FerramentaID: f.ID,
				Tipo:         entity.MovimentacaoSaida,
				Quantidade:   1,
				Usuario:      "joao.silva",
				Setor:        "Usinagem",
			})
			resultados <- err
		}()
	}
	wg.Wait()
	close(resultados)

	var sucessos, recusas int
	for err := range resultados {
		if err == nil {
			sucessos++
			continue
		}
		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr, "única falha aceitável é saldo insuficiente")
		recusas++
	}

	assert.Equal(t, estoqueInicial, sucessos, "devem vencer exatamente as saídas que cabem no saldo")
	assert.Equal(t, tentativas-estoqueInicial, recusas)

	total, disp := env.saldo(t, f.ID)
	assert.Equal(t, estoqueInicial, total)
	assert.Equal(t, 0, disp, "disponível termina em zero, nunca negativo")

	// O razão encadeia: cada movimentação parte do saldo deixado pela anterior.
	movs, err := env.movRepo.List(repository.MovimentacaoFilter{FerramentaID: f.ID}, 50, 0)
	require.NoError(t, err)
	require.Len(t, movs, estoqueInicial)
	vistos := make(map[int]bool)
	for _, m := range movs {
		assert.Equal(t, m.QuantidadeAntes-1, m.QuantidadeDepois)
		assert.False(t, vistos[m.QuantidadeAntes], "dois lançamentos não podem partir do mesmo saldo")
		vistos[m.QuantidadeAntes] = true
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo (snapshot)
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldo_SinalizaAbaixoDoMinimo(t *testing.T) {
	env := newTestEnv(t)
	f := env.novaFerramenta(t, 3, "25.50") // mínimo 2

	_, err := env.registrar(t, f.ID, entity.MovimentacaoSaida, 2)
	require.NoError(t, err)

	saldo, err := env.uc.Saldo(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, saldo.QuantidadeDisponivel)
	assert.True(t, saldo.AbaixoDoMinimo, "1 disponível com mínimo 2 deve alertar reposição")
}
