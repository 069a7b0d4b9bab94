package repository

import "github.com/almeidajf/ferramentaria-api/internal/domain/entity"

// RequisicaoFilter filtros de listagem de requisições.
type RequisicaoFilter struct {
	Status string
	Tipo   string
	Setor  string
}

// RequisicaoRepository define o porto de persistência de requisições.
type RequisicaoRepository interface {
	Create(r *entity.Requisicao) error
	GetByID(id string) (*entity.Requisicao, error)
	// List ordena por data de abertura, mais recente primeiro.
	List(filter RequisicaoFilter, limit, offset int) ([]*entity.Requisicao, error)
	Update(r *entity.Requisicao) error
}

// SequenciaRepository mantém o contador durável por ano usado na numeração
// PR-<ano>-<sequencial>. Proximo deve ser atômico: duas chamadas concorrentes
// nunca devolvem o mesmo número.
type SequenciaRepository interface {
	Proximo(ano int) (int, error)
}
