package repository

import (
	"time"

	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// MovimentacaoFilter filtros de listagem do razão de movimentações.
type MovimentacaoFilter struct {
	FerramentaID string
	Tipo         string
	De           *time.Time
	Ate          *time.Time
}

// MovimentacaoRepository define o porto de persistência do razão (append-only:
// não há Update nem Delete de movimentações).
type MovimentacaoRepository interface {
	Create(m *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	// List ordena por data de movimento, mais recente primeiro.
	List(filter MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error)
}

// HistoricoEstoqueRepository define o porto da trilha de auditoria de saldo.
type HistoricoEstoqueRepository interface {
	Create(h *entity.HistoricoEstoque) error
	ListByFerramenta(ferramentaID string, limit, offset int) ([]*entity.HistoricoEstoque, error)
}
