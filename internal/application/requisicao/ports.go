package requisicao

import (
	"context"

	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Usado na criação para que a numeração e o insert da requisição
// sejam atômicos: o contador nunca avança sem a requisição correspondente.
type TxRunner interface {
	RunRequisicao(ctx context.Context, fn func(
		reqRepo repository.RequisicaoRepository,
		seqRepo repository.SequenciaRepository,
	) error) error
}
