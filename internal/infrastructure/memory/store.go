// Package memory fornece adaptadores em memória dos portos de persistência.
// Usado em testes e em execução local sem banco. A semântica espelha a dos
// adaptadores PostgreSQL, inclusive a serialização transacional do TxRunner.
package memory

import (
	"context"
	"sync"

	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// Store guarda o estado compartilhado entre os repositórios em memória.
type Store struct {
	mu sync.RWMutex

	ferramentas   map[string]entity.Ferramenta
	movimentacoes map[string]entity.Movimentacao
	ordemMov      []string // ordem de inserção das movimentações
	historico     []entity.HistoricoEstoque
	requisicoes   map[string]entity.Requisicao
	ordemReq      []string
	sequencias    map[int]int // ano -> último número emitido
	setores       map[string]entity.Setor
	fornecedores  map[string]entity.Fornecedor
	usuarios      map[string]entity.Usuario
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		ferramentas:   make(map[string]entity.Ferramenta),
		movimentacoes: make(map[string]entity.Movimentacao),
		requisicoes:   make(map[string]entity.Requisicao),
		sequencias:    make(map[int]int),
		setores:       make(map[string]entity.Setor),
		fornecedores:  make(map[string]entity.Fornecedor),
		usuarios:      make(map[string]entity.Usuario),
	}
}

var (
	_ estoque.TxRunner    = (*TxRunner)(nil)
	_ requisicao.TxRunner = (*TxRunner)(nil)
)

// TxRunner serializa as "transações" em memória com um mutex global: duas
// chamadas concorrentes a Run nunca se entrelaçam, imitando o bloqueio de
// linha (FOR UPDATE) do adaptador PostgreSQL.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner cria o executor transacional sobre o Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executa fn com repositórios atados ao Store, sob exclusão mútua.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	ferramentaRepo repository.FerramentaRepository,
	histRepo repository.HistoricoEstoqueRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(
		NewMovimentacaoRepository(t.store),
		NewFerramentaRepository(t.store),
		NewHistoricoEstoqueRepository(t.store),
	)
}

// RunRequisicao executa fn com os repositórios de requisição, sob exclusão mútua.
func (t *TxRunner) RunRequisicao(ctx context.Context, fn func(
	reqRepo repository.RequisicaoRepository,
	seqRepo repository.SequenciaRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(NewRequisicaoRepository(t.store), NewSequenciaRepository(t.store))
}
