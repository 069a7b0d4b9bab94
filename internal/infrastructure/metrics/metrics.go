// Package metrics expõe os contadores Prometheus da aplicação.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovimentacoesRegistradas conta movimentações registradas, por tipo.
	MovimentacoesRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ferramentaria_movimentacoes_registradas_total",
		Help: "Total de movimentações de estoque registradas, por tipo.",
	}, []string{"tipo"})

	// MovimentacoesRecusadas conta tentativas recusadas por saldo insuficiente.
	MovimentacoesRecusadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ferramentaria_movimentacoes_recusadas_total",
		Help: "Total de movimentações recusadas por saldo insuficiente.",
	})

	// RequisicoesCriadas conta requisições abertas, por tipo.
	RequisicoesCriadas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ferramentaria_requisicoes_criadas_total",
		Help: "Total de requisições abertas, por tipo.",
	}, []string{"tipo"})

	// RequisicoesDecididas conta decisões de aprovação, por resultado.
	RequisicoesDecididas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ferramentaria_requisicoes_decididas_total",
		Help: "Total de decisões sobre requisições (aprovado/rejeitado).",
	}, []string{"decisao"})
)
