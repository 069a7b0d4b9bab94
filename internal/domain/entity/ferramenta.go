package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de ciclo de vida de uma ferramenta. Nunca há hard delete enquanto houver
// movimentações referenciando a ferramenta; o status muda para Descartada.
const (
	FerramentaAtiva      = "Ativa"
	FerramentaManutencao = "Manutenção"
	FerramentaDescartada = "Descartada"
)

// Ferramenta representa um item estocado do ferramental (ferramenta de corte, consumível).
// Invariante: 0 <= QuantidadeDisponivel <= QuantidadeTotal, sempre.
// Os contadores só mudam pela aplicação de uma Movimentacao.
type Ferramenta struct {
	ID                    string
	Codigo                string // único, legível (ex.: "FRS-001")
	Descricao             string
	Fabricante            string
	Categoria             string
	QuantidadeTotal       int
	QuantidadeDisponivel  int
	QuantidadeMinima      int
	CustoUnitario         decimal.Decimal
	Localizacao           string
	Status                string // Ativa, Manutenção, Descartada
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AbaixoDoMinimo indica se o saldo disponível está abaixo do limiar de reposição.
func (f *Ferramenta) AbaixoDoMinimo() bool {
	return f.QuantidadeDisponivel < f.QuantidadeMinima
}
