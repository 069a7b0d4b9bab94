package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// FerramentaUseCase cadastro de ferramentas. Saldos só mudam via movimentação;
// aqui alteram-se apenas os dados cadastrais e o status de ciclo de vida.
type FerramentaUseCase struct {
	repo repository.FerramentaRepository
}

// NewFerramentaUseCase constrói o caso de uso.
func NewFerramentaUseCase(repo repository.FerramentaRepository) *FerramentaUseCase {
	return &FerramentaUseCase{repo: repo}
}

// Criar registra uma nova ferramenta. Código deve ser único; o estoque inicial
// entra com disponível == total.
func (uc *FerramentaUseCase) Criar(ctx context.Context, in dto.CreateFerramentaRequest) (*entity.Ferramenta, error) {
	var faltantes []string
	if strings.TrimSpace(in.Codigo) == "" {
		faltantes = append(faltantes, "codigo")
	}
	if strings.TrimSpace(in.Descricao) == "" {
		faltantes = append(faltantes, "descricao")
	}
	if len(faltantes) > 0 {
		return nil, domain.NewValidationError(faltantes...)
	}
	if in.QuantidadeTotal < 0 || in.QuantidadeMinima < 0 {
		return nil, domain.NewValidationError("quantidade_total", "quantidade_minima")
	}

	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	f := &entity.Ferramenta{
		ID:                   uuid.New().String(),
		Codigo:               in.Codigo,
		Descricao:            in.Descricao,
		Fabricante:           in.Fabricante,
		Categoria:            in.Categoria,
		QuantidadeTotal:      in.QuantidadeTotal,
		QuantidadeDisponivel: in.QuantidadeTotal,
		QuantidadeMinima:     in.QuantidadeMinima,
		CustoUnitario:        in.CustoUnitario,
		Localizacao:          in.Localizacao,
		Status:               entity.FerramentaAtiva,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Atualizar aplica um patch aos dados cadastrais de uma ferramenta.
func (uc *FerramentaUseCase) Atualizar(ctx context.Context, id string, in dto.UpdateFerramentaRequest) (*entity.Ferramenta, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &domain.NotFoundError{Entity: "ferramenta", ID: id}
	}

	if in.Descricao != nil {
		f.Descricao = *in.Descricao
	}
	if in.Fabricante != nil {
		f.Fabricante = *in.Fabricante
	}
	if in.Categoria != nil {
		f.Categoria = *in.Categoria
	}
	if in.QuantidadeMinima != nil {
		if *in.QuantidadeMinima < 0 {
			return nil, domain.NewValidationError("quantidade_minima")
		}
		f.QuantidadeMinima = *in.QuantidadeMinima
	}
	if in.CustoUnitario != nil {
		f.CustoUnitario = *in.CustoUnitario
	}
	if in.Localizacao != nil {
		f.Localizacao = *in.Localizacao
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.FerramentaAtiva, entity.FerramentaManutencao, entity.FerramentaDescartada:
			f.Status = *in.Status
		default:
			return nil, domain.NewValidationError("status")
		}
	}
	f.UpdatedAt = time.Now()

	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Descartar marca a ferramenta como Descartada (soft delete: o histórico de
// movimentações continua referenciando o registro).
func (uc *FerramentaUseCase) Descartar(ctx context.Context, id string) (*entity.Ferramenta, error) {
	status := entity.FerramentaDescartada
	return uc.Atualizar(ctx, id, dto.UpdateFerramentaRequest{Status: &status})
}

// Listar devolve ferramentas, opcionalmente filtradas por status.
func (uc *FerramentaUseCase) Listar(ctx context.Context, status string, page dto.PageRequest) ([]*entity.Ferramenta, error) {
	page.DefaultPage()
	return uc.repo.List(status, page.Limit, page.Offset)
}

// Buscar devolve uma ferramenta por ID.
func (uc *FerramentaUseCase) Buscar(ctx context.Context, id string) (*entity.Ferramenta, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &domain.NotFoundError{Entity: "ferramenta", ID: id}
	}
	return f, nil
}
