package postgres

import (
	"context"
	"fmt"

	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.HistoricoEstoqueRepository = (*HistoricoEstoqueRepo)(nil)

// HistoricoEstoqueRepo trilha de auditoria de saldo sobre PostgreSQL (append-only).
type HistoricoEstoqueRepo struct {
	q Querier
}

// NewHistoricoEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewHistoricoEstoqueRepository(q Querier) *HistoricoEstoqueRepo {
	return &HistoricoEstoqueRepo{q: q}
}

// Create persiste um registro de histórico.
func (r *HistoricoEstoqueRepo) Create(h *entity.HistoricoEstoque) error {
	query := `
		INSERT INTO historico_estoque (id, ferramenta_id, movimentacao_id,
			quantidade_anterior, quantidade_nova, tipo_alteracao, data_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.FerramentaID, nullable(h.MovimentacaoID),
		h.QuantidadeAnterior, h.QuantidadeNova, h.TipoAlteracao, h.DataAlteracao,
	)
	if err != nil {
		return fmt.Errorf("create historico: %w", err)
	}
	return nil
}

// ListByFerramenta lista o histórico de uma ferramenta, mais recente primeiro.
func (r *HistoricoEstoqueRepo) ListByFerramenta(ferramentaID string, limit, offset int) ([]*entity.HistoricoEstoque, error) {
	query := `
		SELECT id, ferramenta_id, movimentacao_id, quantidade_anterior,
		       quantidade_nova, tipo_alteracao, data_alteracao
		FROM historico_estoque WHERE ferramenta_id = $1
		ORDER BY data_alteracao DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ferramentaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list historico: %w", err)
	}
	defer rows.Close()

	var list []*entity.HistoricoEstoque
	for rows.Next() {
		var h entity.HistoricoEstoque
		var movID *string
		if err := rows.Scan(&h.ID, &h.FerramentaID, &movID, &h.QuantidadeAnterior,
			&h.QuantidadeNova, &h.TipoAlteracao, &h.DataAlteracao); err != nil {
			return nil, fmt.Errorf("scan historico: %w", err)
		}
		h.MovimentacaoID = deref(movID)
		list = append(list, &h)
	}
	return list, rows.Err()
}
