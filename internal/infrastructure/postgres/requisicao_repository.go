package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.RequisicaoRepository = (*RequisicaoRepo)(nil)
var _ repository.SequenciaRepository = (*SequenciaRepo)(nil)

const requisicaoColunas = `id, numero, tipo, descricao, solicitante, setor,
		prioridade, valor, data_abertura, prazo, status, aprovador,
		justificativa, observacoes, updated_at`

// RequisicaoRepo implementação de RequisicaoRepository sobre PostgreSQL.
type RequisicaoRepo struct {
	q Querier
}

// NewRequisicaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRequisicaoRepository(q Querier) *RequisicaoRepo {
	return &RequisicaoRepo{q: q}
}

// Create persiste uma requisição.
func (r *RequisicaoRepo) Create(req *entity.Requisicao) error {
	query := `
		INSERT INTO requisicoes (` + requisicaoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Numero, req.Tipo, req.Descricao, req.Solicitante,
		nullable(req.Setor), req.Prioridade, req.Valor, req.DataAbertura, req.Prazo,
		req.Status, nullable(req.Aprovador), nullable(req.Justificativa),
		nullable(req.Observacoes), req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert requisicao: %w", err)
	}
	return nil
}

// GetByID obtém uma requisição por ID.
func (r *RequisicaoRepo) GetByID(id string) (*entity.Requisicao, error) {
	query := `SELECT ` + requisicaoColunas + ` FROM requisicoes WHERE id = $1`
	req, err := scanRequisicao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisicao: %w", err)
	}
	return req, nil
}

// List lista requisições por data de abertura, mais recente primeiro.
func (r *RequisicaoRepo) List(filter repository.RequisicaoFilter, limit, offset int) ([]*entity.Requisicao, error) {
	query := `SELECT ` + requisicaoColunas + ` FROM requisicoes WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, filter.Tipo)
		pos++
	}
	if filter.Setor != "" {
		query += fmt.Sprintf(" AND setor = $%d", pos)
		args = append(args, filter.Setor)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY data_abertura DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requisicoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Requisicao
	for rows.Next() {
		req, err := scanRequisicao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requisicao: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Update substitui os campos mutáveis de uma requisição (id, numero e
// data_abertura nunca mudam).
func (r *RequisicaoRepo) Update(req *entity.Requisicao) error {
	query := `
		UPDATE requisicoes
		SET tipo = $2, descricao = $3, solicitante = $4, setor = $5, prioridade = $6,
		    valor = $7, prazo = $8, status = $9, aprovador = $10, justificativa = $11,
		    observacoes = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Tipo, req.Descricao, req.Solicitante, nullable(req.Setor),
		req.Prioridade, req.Valor, req.Prazo, req.Status, nullable(req.Aprovador),
		nullable(req.Justificativa), nullable(req.Observacoes), req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update requisicao: %w", err)
	}
	return nil
}

func scanRequisicao(row pgx.Row) (*entity.Requisicao, error) {
	var req entity.Requisicao
	var setor, aprovador, justificativa, observacoes *string
	var prazo *time.Time
	err := row.Scan(
		&req.ID, &req.Numero, &req.Tipo, &req.Descricao, &req.Solicitante,
		&setor, &req.Prioridade, &req.Valor, &req.DataAbertura, &prazo,
		&req.Status, &aprovador, &justificativa, &observacoes, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Setor = deref(setor)
	req.Aprovador = deref(aprovador)
	req.Justificativa = deref(justificativa)
	req.Observacoes = deref(observacoes)
	req.Prazo = prazo
	return &req, nil
}

// SequenciaRepo contador durável por ano para numeração de requisições.
type SequenciaRepo struct {
	q Querier
}

// NewSequenciaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSequenciaRepository(q Querier) *SequenciaRepo {
	return &SequenciaRepo{q: q}
}

// Proximo incrementa e devolve o contador do ano de forma atômica.
// O upsert com RETURNING garante que chamadas concorrentes nunca
// recebem o mesmo número.
func (r *SequenciaRepo) Proximo(ano int) (int, error) {
	query := `
		INSERT INTO sequencias_requisicao (ano, ultimo_numero)
		VALUES ($1, 1)
		ON CONFLICT (ano)
		DO UPDATE SET ultimo_numero = sequencias_requisicao.ultimo_numero + 1
		RETURNING ultimo_numero`
	var n int
	if err := r.q.QueryRow(context.Background(), query, ano).Scan(&n); err != nil {
		return 0, fmt.Errorf("proximo numero: %w", err)
	}
	return n, nil
}
