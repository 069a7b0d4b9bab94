package estoque_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/memory"
)

func newFerramentaUC(t *testing.T) *estoque.FerramentaUseCase {
	t.Helper()
	return estoque.NewFerramentaUseCase(memory.NewFerramentaRepository(memory.NewStore()))
}

func TestCriarFerramenta_DisponivelIgualAoTotal(t *testing.T) {
	uc := newFerramentaUC(t)

	f, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo:          "FRS-001",
		Descricao:       "Fresa de topo 10mm",
		QuantidadeTotal: 12,
		CustoUnitario:   decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, f.QuantidadeTotal)
	assert.Equal(t, 12, f.QuantidadeDisponivel, "estoque inicial entra todo disponível")
	assert.Equal(t, entity.FerramentaAtiva, f.Status)
}

func TestCriarFerramenta_CodigoDuplicado(t *testing.T) {
	uc := newFerramentaUC(t)

	_, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Fresa de topo 10mm",
	})
	require.NoError(t, err)

	_, err = uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Outra fresa",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCriarFerramenta_CamposObrigatorios(t *testing.T) {
	uc := newFerramentaUC(t)

	_, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.ElementsMatch(t, []string{"codigo", "descricao"}, valErr.Fields)
}

func TestAtualizarFerramenta_PatchNaoTocaSaldo(t *testing.T) {
	uc := newFerramentaUC(t)

	f, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Fresa de topo 10mm", QuantidadeTotal: 8,
	})
	require.NoError(t, err)

	local := "Prateleira B3"
	editada, err := uc.Atualizar(context.Background(), f.ID, dto.UpdateFerramentaRequest{
		Localizacao: &local,
	})
	require.NoError(t, err)

	assert.Equal(t, "Prateleira B3", editada.Localizacao)
	assert.Equal(t, 8, editada.QuantidadeTotal, "edição cadastral não altera contadores")
	assert.Equal(t, 8, editada.QuantidadeDisponivel)
}

func TestAtualizarFerramenta_StatusInvalido(t *testing.T) {
	uc := newFerramentaUC(t)

	f, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Fresa de topo 10mm",
	})
	require.NoError(t, err)

	status := "Emprestada"
	_, err = uc.Atualizar(context.Background(), f.ID, dto.UpdateFerramentaRequest{Status: &status})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"status"}, valErr.Fields)
}

func TestDescartarFerramenta_BaixaLogica(t *testing.T) {
	uc := newFerramentaUC(t)

	f, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Fresa de topo 10mm",
	})
	require.NoError(t, err)

	descartada, err := uc.Descartar(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FerramentaDescartada, descartada.Status)

	// O registro continua consultável.
	buscada, err := uc.Buscar(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FerramentaDescartada, buscada.Status)
}

func TestListarFerramentas_FiltraPorStatus(t *testing.T) {
	uc := newFerramentaUC(t)

	ativa, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "FRS-001", Descricao: "Fresa de topo 10mm",
	})
	require.NoError(t, err)
	outra, err := uc.Criar(context.Background(), dto.CreateFerramentaRequest{
		Codigo: "BRC-002", Descricao: "Broca HSS 8mm",
	})
	require.NoError(t, err)
	_, err = uc.Descartar(context.Background(), outra.ID)
	require.NoError(t, err)

	ativas, err := uc.Listar(context.Background(), entity.FerramentaAtiva, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, ativas, 1)
	assert.Equal(t, ativa.ID, ativas[0].ID)

	todas, err := uc.Listar(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}
