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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorColunas = `id, nome, cnpj, contato, email, telefone, endereco,
		status, created_at, updated_at`

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um fornecedor.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (` + fornecedorColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, nullable(f.CNPJ), nullable(f.Contato), nullable(f.Email),
		nullable(f.Telefone), nullable(f.Endereco), f.Status, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE id = $1`
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// List lista fornecedores, opcionalmente por status, ordenados por nome.
func (r *FornecedorRepo) List(status string) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY nome"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fornecedor
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update substitui os campos mutáveis de um fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, cnpj = $3, contato = $4, email = $5, telefone = $6,
		    endereco = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, nullable(f.CNPJ), nullable(f.Contato), nullable(f.Email),
		nullable(f.Telefone), nullable(f.Endereco), f.Status, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	var cnpj, contato, email, telefone, endereco *string
	err := row.Scan(&f.ID, &f.Nome, &cnpj, &contato, &email, &telefone, &endereco,
		&f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.CNPJ = deref(cnpj)
	f.Contato = deref(contato)
	f.Email = deref(email)
	f.Telefone = deref(telefone)
	f.Endereco = deref(endereco)
	return &f, nil
}
