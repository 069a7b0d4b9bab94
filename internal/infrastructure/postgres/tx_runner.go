package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// Garantia em tempo de compilação dos dois contratos de transação.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ requisicao.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios de estoque atados à tx
// e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	ferramentaRepo repository.FerramentaRepository,
	histRepo repository.HistoricoEstoqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "begin", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovimentacaoRepository(tx)
	ferramentaRepo := NewFerramentaRepository(tx)
	histRepo := NewHistoricoEstoqueRepository(tx)

	if err := fn(movRepo, ferramentaRepo, histRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "commit", Err: err}
	}
	return nil
}

// RunRequisicao inicia uma transação com repositórios de requisição e sequência
// (numeração PR-<ano>-<seq> atômica com o insert).
func (r *TxRunner) RunRequisicao(ctx context.Context, fn func(
	reqRepo repository.RequisicaoRepository,
	seqRepo repository.SequenciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "begin", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reqRepo := NewRequisicaoRepository(tx)
	seqRepo := NewSequenciaRepository(tx)

	if err := fn(reqRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "commit", Err: err}
	}
	return nil
}
