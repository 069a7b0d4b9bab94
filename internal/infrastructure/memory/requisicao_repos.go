package memory

import (
	"sort"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.RequisicaoRepository = (*RequisicaoRepo)(nil)

// RequisicaoRepo adaptador em memória de RequisicaoRepository.
type RequisicaoRepo struct {
	store *Store
}

func NewRequisicaoRepository(store *Store) *RequisicaoRepo {
	return &RequisicaoRepo{store: store}
}

func (r *RequisicaoRepo) Create(req *entity.Requisicao) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requisicoes[req.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.requisicoes[req.ID] = *req
	r.store.ordemReq = append(r.store.ordemReq, req.ID)
	return nil
}

func (r *RequisicaoRepo) GetByID(id string) (*entity.Requisicao, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	req, ok := r.store.requisicoes[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *RequisicaoRepo) List(filter repository.RequisicaoFilter, limit, offset int) ([]*entity.Requisicao, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Requisicao
	for _, id := range r.store.ordemReq {
		req := r.store.requisicoes[id]
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Tipo != "" && req.Tipo != filter.Tipo {
			continue
		}
		if filter.Setor != "" && req.Setor != filter.Setor {
			continue
		}
		all = append(all, &req)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DataAbertura.After(all[j].DataAbertura)
	})
	return paginar(all, limit, offset), nil
}

func (r *RequisicaoRepo) Update(req *entity.Requisicao) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requisicoes[req.ID]; !ok {
		return &domain.NotFoundError{Entity: "requisição", ID: req.ID}
	}
	r.store.requisicoes[req.ID] = *req
	return nil
}

var _ repository.SequenciaRepository = (*SequenciaRepo)(nil)

// SequenciaRepo contador por ano em memória.
type SequenciaRepo struct {
	store *Store
}

func NewSequenciaRepository(store *Store) *SequenciaRepo {
	return &SequenciaRepo{store: store}
}

func (r *SequenciaRepo) Proximo(ano int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sequencias[ano]++
	return r.store.sequencias[ano], nil
}
