package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

var _ repository.SetorRepository = (*SetorRepo)(nil)

// SetorRepo adaptador em memória de SetorRepository.
type SetorRepo struct {
	store *Store
}

func NewSetorRepository(store *Store) *SetorRepo {
	return &SetorRepo{store: store}
}

func (r *SetorRepo) Create(s *entity.Setor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existente := range r.store.setores {
		if strings.EqualFold(existente.Nome, s.Nome) {
			return domain.ErrDuplicate
		}
	}
	r.store.setores[s.ID] = *s
	return nil
}

func (r *SetorRepo) GetByID(id string) (*entity.Setor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.setores[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SetorRepo) List() ([]*entity.Setor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Setor
	for _, s := range r.store.setores {
		s := s
		all = append(all, &s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nome < all[j].Nome })
	return all, nil
}

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo adaptador em memória de FornecedorRepository.
type FornecedorRepo struct {
	store *Store
}

func NewFornecedorRepository(store *Store) *FornecedorRepo {
	return &FornecedorRepo{store: store}
}

func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existente := range r.store.fornecedores {
		if existente.CNPJ != "" && existente.CNPJ == f.CNPJ {
			return domain.ErrDuplicate
		}
	}
	r.store.fornecedores[f.ID] = *f
	return nil
}

func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	f, ok := r.store.fornecedores[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *FornecedorRepo) List(status string) ([]*entity.Fornecedor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Fornecedor
	for _, f := range r.store.fornecedores {
		if status != "" && f.Status != status {
			continue
		}
		f := f
		all = append(all, &f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nome < all[j].Nome })
	return all, nil
}

func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.fornecedores[f.ID]; !ok {
		return &domain.NotFoundError{Entity: "fornecedor", ID: f.ID}
	}
	r.store.fornecedores[f.ID] = *f
	return nil
}

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo adaptador em memória de UsuarioRepository.
type UsuarioRepo struct {
	store *Store
}

func NewUsuarioRepository(store *Store) *UsuarioRepo {
	return &UsuarioRepo{store: store}
}

func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existente := range r.store.usuarios {
		if strings.EqualFold(existente.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.store.usuarios[u.ID] = *u
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.usuarios {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Usuario
	for _, u := range r.store.usuarios {
		u := u
		all = append(all, &u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nome < all[j].Nome })
	return all, nil
}

func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.usuarios[u.ID]; !ok {
		return &domain.NotFoundError{Entity: "usuário", ID: u.ID}
	}
	r.store.usuarios[u.ID] = *u
	return nil
}

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo agregados em memória para o painel.
type RelatorioRepo struct {
	store *Store
}

func NewRelatorioRepository(store *Store) *RelatorioRepo {
	return &RelatorioRepo{store: store}
}

func (r *RelatorioRepo) ResumoFerramentas() (*repository.ResumoFerramentas, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res := &repository.ResumoFerramentas{}
	for _, f := range r.store.ferramentas {
		res.Total++
		if f.Status != entity.FerramentaAtiva {
			continue
		}
		res.Ativas++
		if f.AbaixoDoMinimo() {
			res.AbaixoDoMinimo++
		}
	}
	return res, nil
}

func (r *RelatorioRepo) ResumoMovimentacoes(de, ate time.Time) (*repository.ResumoMovimentacoes, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res := &repository.ResumoMovimentacoes{
		PorTipo:    make(map[string]int),
		CustoTotal: decimal.Zero,
	}
	for _, m := range r.store.movimentacoes {
		if m.DataMovimento.Before(de) || m.DataMovimento.After(ate) {
			continue
		}
		res.Quantidade++
		res.PorTipo[m.Tipo]++
		res.CustoTotal = res.CustoTotal.Add(m.CustoTotal)
	}
	return res, nil
}

func (r *RelatorioRepo) RequisicoesPorStatus() (map[string]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]int)
	for _, req := range r.store.requisicoes {
		out[req.Status]++
	}
	return out, nil
}
