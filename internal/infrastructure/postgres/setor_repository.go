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

var _ repository.SetorRepository = (*SetorRepo)(nil)

// SetorRepo implementação de SetorRepository sobre PostgreSQL.
type SetorRepo struct {
	q Querier
}

// NewSetorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSetorRepository(q Querier) *SetorRepo {
	return &SetorRepo{q: q}
}

// Create persiste um setor.
func (r *SetorRepo) Create(s *entity.Setor) error {
	query := `
		INSERT INTO setores (id, nome, descricao, responsavel, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nome, nullable(s.Descricao), nullable(s.Responsavel), s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert setor: %w", err)
	}
	return nil
}

// GetByID obtém um setor por ID.
func (r *SetorRepo) GetByID(id string) (*entity.Setor, error) {
	query := `SELECT id, nome, descricao, responsavel, created_at FROM setores WHERE id = $1`
	var s entity.Setor
	var descricao, responsavel *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nome, &descricao, &responsavel, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setor: %w", err)
	}
	s.Descricao = deref(descricao)
	s.Responsavel = deref(responsavel)
	return &s, nil
}

// List lista setores ordenados por nome.
func (r *SetorRepo) List() ([]*entity.Setor, error) {
	query := `SELECT id, nome, descricao, responsavel, created_at FROM setores ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list setores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Setor
	for rows.Next() {
		var s entity.Setor
		var descricao, responsavel *string
		if err := rows.Scan(&s.ID, &s.Nome, &descricao, &responsavel, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan setor: %w", err)
		}
		s.Descricao = deref(descricao)
		s.Responsavel = deref(responsavel)
		list = append(list, &s)
	}
	return list, rows.Err()
}
