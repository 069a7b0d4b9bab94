package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de requisição.
const (
	RequisicaoCompra      = "Compra"
	RequisicaoReafiamento = "Reafiamento"
)

// Prioridades de requisição.
const (
	PrioridadeAlta  = "Alta"
	PrioridadeMedia = "Média"
	PrioridadeBaixa = "Baixa"
)

// Estados do fluxo de aprovação.
// Pendente -> Aprovado | Rejeitado; Aprovado -> Em Andamento -> Concluído.
// Rejeitado e Concluído são terminais.
const (
	RequisicaoPendente   = "Pendente"
	RequisicaoAprovada   = "Aprovado"
	RequisicaoRejeitada  = "Rejeitado"
	RequisicaoEmAndamento = "Em Andamento"
	RequisicaoConcluida  = "Concluído"
)

// transicoes mapeia cada estado aos estados alcançáveis a partir dele.
var transicoes = map[string][]string{
	RequisicaoPendente:    {RequisicaoAprovada, RequisicaoRejeitada},
	RequisicaoAprovada:    {RequisicaoEmAndamento},
	RequisicaoEmAndamento: {RequisicaoAprovada, RequisicaoConcluida},
	RequisicaoRejeitada:   {},
	RequisicaoConcluida:   {},
}

// TransicaoPermitida informa se a máquina de estados permite ir de `de` para `para`.
func TransicaoPermitida(de, para string) bool {
	for _, s := range transicoes[de] {
		if s == para {
			return true
		}
	}
	return false
}

// StatusTerminal informa se o estado é terminal (Rejeitado ou Concluído).
func StatusTerminal(status string) bool {
	return status == RequisicaoRejeitada || status == RequisicaoConcluida
}

// TipoRequisicaoValido informa se o tipo pertence ao conjunto permitido.
func TipoRequisicaoValido(tipo string) bool {
	return tipo == RequisicaoCompra || tipo == RequisicaoReafiamento
}

// PrioridadeValida informa se a prioridade pertence ao conjunto permitido.
func PrioridadeValida(p string) bool {
	return p == PrioridadeAlta || p == PrioridadeMedia || p == PrioridadeBaixa
}

// Requisicao representa um pedido de compra ou de serviço de reafiação,
// sujeito ao fluxo de aprovação. ID, Numero e DataAbertura são imutáveis.
type Requisicao struct {
	ID            string
	Numero        string // formato PR-<ano>-<sequencial>
	Tipo          string
	Descricao     string
	Solicitante   string
	Setor         string
	Prioridade    string
	Valor         decimal.Decimal // valor estimado
	DataAbertura  time.Time
	Prazo         *time.Time
	Status        string
	Aprovador     string
	Justificativa string
	Observacoes   string // observações da análise (aprovação/rejeição)
	UpdatedAt     time.Time
}
