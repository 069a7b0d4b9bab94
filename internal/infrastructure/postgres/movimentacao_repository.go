package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoColunas = `id, ferramenta_id, tipo, quantidade, quantidade_antes,
		quantidade_depois, usuario, setor, setor_id, observacoes, custo_total,
		status, data_movimento, created_at`

// MovimentacaoRepo implementação do razão de movimentações sobre PostgreSQL
// (usável com pool ou tx). Append-only: não há UPDATE nem DELETE.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (` + movimentacaoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.FerramentaID, m.Tipo, m.Quantidade, m.QuantidadeAntes,
		m.QuantidadeDepois, m.Usuario, m.Setor, nullable(m.SetorID),
		nullable(m.Observacoes), m.CustoTotal, m.Status, m.DataMovimento, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColunas + ` FROM movimentacoes WHERE id = $1`
	m, err := scanMovimentacao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return m, nil
}

// List lista movimentações por data de movimento, mais recente primeiro.
func (r *MovimentacaoRepo) List(filter repository.MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColunas + ` FROM movimentacoes WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.FerramentaID != "" {
		query += fmt.Sprintf(" AND ferramenta_id = $%d", pos)
		args = append(args, filter.FerramentaID)
		pos++
	}
	if filter.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, filter.Tipo)
		pos++
	}
	if filter.De != nil {
		query += fmt.Sprintf(" AND data_movimento >= $%d", pos)
		args = append(args, *filter.De)
		pos++
	}
	if filter.Ate != nil {
		query += fmt.Sprintf(" AND data_movimento <= $%d", pos)
		args = append(args, *filter.Ate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY data_movimento DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimentacao
	for rows.Next() {
		m, err := scanMovimentacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimentacao(row pgx.Row) (*entity.Movimentacao, error) {
	var m entity.Movimentacao
	var setorID, observacoes *string
	err := row.Scan(
		&m.ID, &m.FerramentaID, &m.Tipo, &m.Quantidade, &m.QuantidadeAntes,
		&m.QuantidadeDepois, &m.Usuario, &m.Setor, &setorID, &observacoes,
		&m.CustoTotal, &m.Status, &m.DataMovimento, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SetorID = deref(setorID)
	m.Observacoes = deref(observacoes)
	return &m, nil
}
