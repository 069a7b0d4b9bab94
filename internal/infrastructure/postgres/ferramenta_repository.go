package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.FerramentaRepository = (*FerramentaRepo)(nil)

const ferramentaColunas = `id, codigo, descricao, fabricante, categoria,
		quantidade_total, quantidade_disponivel, quantidade_minima,
		custo_unitario, localizacao, status, created_at, updated_at`

// FerramentaRepo implementação de FerramentaRepository sobre PostgreSQL (usável com pool ou tx).
type FerramentaRepo struct {
	q Querier
}

// NewFerramentaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFerramentaRepository(q Querier) *FerramentaRepo {
	return &FerramentaRepo{q: q}
}

// Create persiste uma nova ferramenta.
func (r *FerramentaRepo) Create(f *entity.Ferramenta) error {
	query := `
		INSERT INTO ferramentas (` + ferramentaColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Codigo, f.Descricao, nullable(f.Fabricante), nullable(f.Categoria),
		f.QuantidadeTotal, f.QuantidadeDisponivel, f.QuantidadeMinima,
		f.CustoUnitario, nullable(f.Localizacao), f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ferramenta: %w", err)
	}
	return nil
}

// GetByID obtém uma ferramenta por ID.
func (r *FerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColunas + ` FROM ferramentas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ferramenta")
}

// GetByCodigo obtém uma ferramenta pelo código único.
func (r *FerramentaRepo) GetByCodigo(codigo string) (*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColunas + ` FROM ferramentas WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get ferramenta por codigo")
}

// GetForUpdate obtém a ferramenta e bloqueia a linha (SELECT FOR UPDATE).
// Movimentações concorrentes sobre a mesma ferramenta serializam aqui.
func (r *FerramentaRepo) GetForUpdate(id string) (*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColunas + ` FROM ferramentas WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get ferramenta for update")
}

// List lista ferramentas, opcionalmente por status, ordenadas por descrição.
func (r *FerramentaRepo) List(status string, limit, offset int) ([]*entity.Ferramenta, error) {
	query := `SELECT ` + ferramentaColunas + ` FROM ferramentas`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY descricao LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ferramentas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ferramenta
	for rows.Next() {
		f, err := scanFerramenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ferramenta: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update substitui os campos cadastrais de uma ferramenta.
func (r *FerramentaRepo) Update(f *entity.Ferramenta) error {
	query := `
		UPDATE ferramentas
		SET descricao = $2, fabricante = $3, categoria = $4, quantidade_minima = $5,
		    custo_unitario = $6, localizacao = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Descricao, nullable(f.Fabricante), nullable(f.Categoria),
		f.QuantidadeMinima, f.CustoUnitario, nullable(f.Localizacao), f.Status, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ferramenta: %w", err)
	}
	return nil
}

// UpdateSaldo grava os contadores total/disponível (dentro da transação corrente).
func (r *FerramentaRepo) UpdateSaldo(id string, total, disponivel int) error {
	query := `
		UPDATE ferramentas
		SET quantidade_total = $2, quantidade_disponivel = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, total, disponivel)
	if err != nil {
		return fmt.Errorf("update saldo: %w", err)
	}
	return nil
}

func (r *FerramentaRepo) scanOne(row pgx.Row, op string) (*entity.Ferramenta, error) {
	f, err := scanFerramenta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

func scanFerramenta(row pgx.Row) (*entity.Ferramenta, error) {
	var f entity.Ferramenta
	var fabricante, categoria, localizacao *string
	err := row.Scan(
		&f.ID, &f.Codigo, &f.Descricao, &fabricante, &categoria,
		&f.QuantidadeTotal, &f.QuantidadeDisponivel, &f.QuantidadeMinima,
		&f.CustoUnitario, &localizacao, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Fabricante = deref(fabricante)
	f.Categoria = deref(categoria)
	f.Localizacao = deref(localizacao)
	return &f, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
