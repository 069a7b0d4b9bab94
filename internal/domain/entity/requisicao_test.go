package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

func TestTransicaoPermitida(t *testing.T) {
	casos := []struct {
		de, para string
		permite  bool
	}{
		{entity.RequisicaoPendente, entity.RequisicaoAprovada, true},
		{entity.RequisicaoPendente, entity.RequisicaoRejeitada, true},
		{entity.RequisicaoPendente, entity.RequisicaoEmAndamento, false},
		{entity.RequisicaoPendente, entity.RequisicaoConcluida, false},
		{entity.RequisicaoAprovada, entity.RequisicaoEmAndamento, true},
		{entity.RequisicaoAprovada, entity.RequisicaoRejeitada, false},
		{entity.RequisicaoAprovada, entity.RequisicaoConcluida, false},
		{entity.RequisicaoEmAndamento, entity.RequisicaoAprovada, true},
		{entity.RequisicaoEmAndamento, entity.RequisicaoConcluida, true},
		{entity.RequisicaoEmAndamento, entity.RequisicaoPendente, false},
		{entity.RequisicaoRejeitada, entity.RequisicaoPendente, false},
		{entity.RequisicaoRejeitada, entity.RequisicaoAprovada, false},
		{entity.RequisicaoConcluida, entity.RequisicaoEmAndamento, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.permite, entity.TransicaoPermitida(c.de, c.para),
			"%s -> %s", c.de, c.para)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, entity.StatusTerminal(entity.RequisicaoRejeitada))
	assert.True(t, entity.StatusTerminal(entity.RequisicaoConcluida))
	assert.False(t, entity.StatusTerminal(entity.RequisicaoPendente))
	assert.False(t, entity.StatusTerminal(entity.RequisicaoAprovada))
	assert.False(t, entity.StatusTerminal(entity.RequisicaoEmAndamento))
}

func TestDelta(t *testing.T) {
	casos := []struct {
		tipo  string
		delta int
	}{
		{entity.MovimentacaoEntrada, 5},
		{entity.MovimentacaoRetorno, 5},
		{entity.MovimentacaoSaida, -5},
		{entity.MovimentacaoReafiamento, -5},
		{entity.MovimentacaoDescarte, -5},
		{"Desconhecido", 0},
	}
	for _, c := range casos {
		assert.Equal(t, c.delta, entity.Delta(c.tipo, 5), c.tipo)
	}
}

func TestAbaixoDoMinimo(t *testing.T) {
	f := entity.Ferramenta{QuantidadeDisponivel: 2, QuantidadeMinima: 2}
	assert.False(t, f.AbaixoDoMinimo(), "igual ao mínimo não dispara alerta")

	f.QuantidadeDisponivel = 1
	assert.True(t, f.AbaixoDoMinimo())
}
