package estoque

import (
	"context"

	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade do trio movimentação + saldo + histórico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		ferramentaRepo repository.FerramentaRepository,
		histRepo repository.HistoricoEstoqueRepository,
	) error) error
}
