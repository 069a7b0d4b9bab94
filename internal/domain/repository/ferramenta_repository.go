package repository

import "github.com/almeidajf/ferramentaria-api/internal/domain/entity"

// FerramentaRepository define o porto de persistência de ferramentas.
type FerramentaRepository interface {
	Create(f *entity.Ferramenta) error
	GetByID(id string) (*entity.Ferramenta, error)
	GetByCodigo(codigo string) (*entity.Ferramenta, error)
	List(status string, limit, offset int) ([]*entity.Ferramenta, error)
	Update(f *entity.Ferramenta) error
	// GetForUpdate bloqueia a linha da ferramenta (SELECT FOR UPDATE) para
	// serializar movimentações concorrentes sobre a mesma ferramenta.
	GetForUpdate(id string) (*entity.Ferramenta, error)
	// UpdateSaldo grava os contadores total/disponível dentro da transação corrente.
	UpdateSaldo(id string, total, disponivel int) error
}
