package memory

import (
	"sort"
	"strings"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.FerramentaRepository = (*FerramentaRepo)(nil)

// FerramentaRepo adaptador em memória de FerramentaRepository.
type FerramentaRepo struct {
	store *Store
}

func NewFerramentaRepository(store *Store) *FerramentaRepo {
	return &FerramentaRepo{store: store}
}

func (r *FerramentaRepo) Create(f *entity.Ferramenta) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existente := range r.store.ferramentas {
		if strings.EqualFold(existente.Codigo, f.Codigo) {
			return domain.ErrDuplicate
		}
	}
	r.store.ferramentas[f.ID] = *f
	return nil
}

func (r *FerramentaRepo) GetByID(id string) (*entity.Ferramenta, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f, ok := r.store.ferramentas[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *FerramentaRepo) GetByCodigo(codigo string) (*entity.Ferramenta, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, f := range r.store.ferramentas {
		if strings.EqualFold(f.Codigo, codigo) {
			f := f
			return &f, nil
		}
	}
	return nil, nil
}

func (r *FerramentaRepo) List(status string, limit, offset int) ([]*entity.Ferramenta, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Ferramenta
	for _, f := range r.store.ferramentas {
		if status != "" && f.Status != status {
			continue
		}
		f := f
		all = append(all, &f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Descricao < all[j].Descricao })
	return paginar(all, limit, offset), nil
}

func (r *FerramentaRepo) Update(f *entity.Ferramenta) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.ferramentas[f.ID]; !ok {
		return &domain.NotFoundError{Entity: "ferramenta", ID: f.ID}
	}
	r.store.ferramentas[f.ID] = *f
	return nil
}

// GetForUpdate em memória equivale a GetByID: a exclusão mútua vem do TxRunner.
func (r *FerramentaRepo) GetForUpdate(id string) (*entity.Ferramenta, error) {
	return r.GetByID(id)
}

func (r *FerramentaRepo) UpdateSaldo(id string, total, disponivel int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	f, ok := r.store.ferramentas[id]
	if !ok {
		return &domain.NotFoundError{Entity: "ferramenta", ID: id}
	}
	f.QuantidadeTotal = total
	f.QuantidadeDisponivel = disponivel
	r.store.ferramentas[id] = f
	return nil
}

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo adaptador em memória do razão de movimentações.
type MovimentacaoRepo struct {
	store *Store
}

func NewMovimentacaoRepository(store *Store) *MovimentacaoRepo {
	return &MovimentacaoRepo{store: store}
}

func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.movimentacoes[m.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.movimentacoes[m.ID] = *m
	r.store.ordemMov = append(r.store.ordemMov, m.ID)
	return nil
}

func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.movimentacoes[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MovimentacaoRepo) List(filter repository.MovimentacaoFilter, limit, offset int) ([]*entity.Movimentacao, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Movimentacao
	for _, id := range r.store.ordemMov {
		m := r.store.movimentacoes[id]
		if filter.FerramentaID != "" && m.FerramentaID != filter.FerramentaID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.De != nil && m.DataMovimento.Before(*filter.De) {
			continue
		}
		if filter.Ate != nil && m.DataMovimento.After(*filter.Ate) {
			continue
		}
		all = append(all, &m)
	}
	// mais recente primeiro; desempate pela ordem de inserção
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DataMovimento.After(all[j].DataMovimento)
	})
	return paginar(all, limit, offset), nil
}

var _ repository.HistoricoEstoqueRepository = (*HistoricoEstoqueRepo)(nil)

// HistoricoEstoqueRepo adaptador em memória da trilha de auditoria de saldo.
type HistoricoEstoqueRepo struct {
	store *Store
}

func NewHistoricoEstoqueRepository(store *Store) *HistoricoEstoqueRepo {
	return &HistoricoEstoqueRepo{store: store}
}

func (r *HistoricoEstoqueRepo) Create(h *entity.HistoricoEstoque) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.historico = append(r.store.historico, *h)
	return nil
}

func (r *HistoricoEstoqueRepo) ListByFerramenta(ferramentaID string, limit, offset int) ([]*entity.HistoricoEstoque, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.HistoricoEstoque
	for i := len(r.store.historico) - 1; i >= 0; i-- {
		h := r.store.historico[i]
		if h.FerramentaID != ferramentaID {
			continue
		}
		all = append(all, &h)
	}
	return paginar(all, limit, offset), nil
}

func paginar[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
