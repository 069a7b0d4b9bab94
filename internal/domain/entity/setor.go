package entity

import "time"

// Setor é uma unidade organizacional (departamento) associada a movimentações e requisições.
type Setor struct {
	ID          string
	Nome        string
	Descricao   string
	Responsavel string
	CreatedAt   time.Time
}
