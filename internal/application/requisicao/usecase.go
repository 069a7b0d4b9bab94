package requisicao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// UseCase dono da máquina de estados de requisições:
// criação numerada, aprovação, rejeição e edição fora de estado terminal.
type UseCase struct {
	txRunner TxRunner
	repo     repository.RequisicaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, repo repository.RequisicaoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo}
}

// Criar abre uma requisição em estado Pendente. Obrigatórios: tipo, descricao,
// prioridade. O número PR-<ano>-<seq> vem do contador durável por ano, na mesma
// transação do insert.
func (uc *UseCase) Criar(ctx context.Context, in dto.CreateRequisicaoRequest) (*entity.Requisicao, error) {
	var faltantes []string
	if in.Tipo == "" {
		faltantes = append(faltantes, "tipo")
	}
	if strings.TrimSpace(in.Descricao) == "" {
		faltantes = append(faltantes, "descricao")
	}
	if in.Prioridade == "" {
		faltantes = append(faltantes, "prioridade")
	}
	if len(faltantes) > 0 {
		return nil, domain.NewValidationError(faltantes...)
	}
	if !entity.TipoRequisicaoValido(in.Tipo) {
		return nil, domain.NewValidationError("tipo")
	}
	if !entity.PrioridadeValida(in.Prioridade) {
		return nil, domain.NewValidationError("prioridade")
	}

	now := time.Now()
	req := &entity.Requisicao{
		ID:            uuid.New().String(),
		Tipo:          in.Tipo,
		Descricao:     in.Descricao,
		Solicitante:   in.Solicitante,
		Setor:         in.Setor,
		Prioridade:    in.Prioridade,
		Valor:         in.Valor,
		DataAbertura:  now,
		Prazo:         in.Prazo,
		Status:        entity.RequisicaoPendente,
		Justificativa: in.Justificativa,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunRequisicao(ctx, func(
		reqRepo repository.RequisicaoRepository,
		seqRepo repository.SequenciaRepository,
	) error {
		seq, err := seqRepo.Proximo(now.Year())
		if err != nil {
			return err
		}
		req.Numero = fmt.Sprintf("PR-%d-%03d", now.Year(), seq)
		return reqRepo.Create(req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Aprovar transiciona Pendente (ou Em Andamento) -> Aprovado e carimba o
// aprovador. Observações são opcionais.
func (uc *UseCase) Aprovar(ctx context.Context, id, aprovador, observacoes string) (*entity.Requisicao, error) {
	req, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.RequisicaoPendente && req.Status != entity.RequisicaoEmAndamento {
		return nil, &domain.InvalidStateError{Current: req.Status, Attempted: entity.RequisicaoAprovada}
	}
	req.Status = entity.RequisicaoAprovada
	req.Aprovador = aprovador
	req.Observacoes = observacoes
	req.UpdatedAt = time.Now()
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Rejeitar transiciona Pendente -> Rejeitado. A justificativa da rejeição é
// obrigatória (assimetria deliberada em relação à aprovação).
func (uc *UseCase) Rejeitar(ctx context.Context, id, aprovador, observacoes string) (*entity.Requisicao, error) {
	if strings.TrimSpace(observacoes) == "" {
		return nil, domain.NewValidationError("observacoes")
	}
	req, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.RequisicaoPendente {
		return nil, &domain.InvalidStateError{Current: req.Status, Attempted: entity.RequisicaoRejeitada}
	}
	req.Status = entity.RequisicaoRejeitada
	req.Aprovador = aprovador
	req.Observacoes = observacoes
	req.UpdatedAt = time.Now()
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Editar aplica um patch aos campos mutáveis. Requisições em estado terminal
// (Rejeitado/Concluído) são imutáveis; mudança de status via patch precisa ser
// uma transição permitida da máquina de estados.
func (uc *UseCase) Editar(ctx context.Context, id string, in dto.EditRequisicaoRequest) (*entity.Requisicao, error) {
	req, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	if entity.StatusTerminal(req.Status) {
		return nil, &domain.InvalidStateError{Current: req.Status, Attempted: req.Status}
	}

	if in.Tipo != nil {
		if !entity.TipoRequisicaoValido(*in.Tipo) {
			return nil, domain.NewValidationError("tipo")
		}
		req.Tipo = *in.Tipo
	}
	if in.Descricao != nil {
		if strings.TrimSpace(*in.Descricao) == "" {
			return nil, domain.NewValidationError("descricao")
		}
		req.Descricao = *in.Descricao
	}
	if in.Solicitante != nil {
		req.Solicitante = *in.Solicitante
	}
	if in.Setor != nil {
		req.Setor = *in.Setor
	}
	if in.Prioridade != nil {
		if !entity.PrioridadeValida(*in.Prioridade) {
			return nil, domain.NewValidationError("prioridade")
		}
		req.Prioridade = *in.Prioridade
	}
	if in.Valor != nil {
		req.Valor = *in.Valor
	}
	if in.Prazo != nil {
		req.Prazo = in.Prazo
	}
	if in.Justificativa != nil {
		req.Justificativa = *in.Justificativa
	}
	if in.Status != nil && *in.Status != req.Status {
		if !entity.TransicaoPermitida(req.Status, *in.Status) {
			return nil, &domain.InvalidStateError{Current: req.Status, Attempted: *in.Status}
		}
		req.Status = *in.Status
	}
	req.UpdatedAt = time.Now()

	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Listar devolve requisições por data de abertura, mais recente primeiro.
func (uc *UseCase) Listar(ctx context.Context, filter repository.RequisicaoFilter, page dto.PageRequest) ([]*entity.Requisicao, error) {
	page.DefaultPage()
	return uc.repo.List(filter, page.Limit, page.Offset)
}

// Buscar devolve uma requisição por ID.
func (uc *UseCase) Buscar(ctx context.Context, id string) (*entity.Requisicao, error) {
	return uc.get(id)
}

func (uc *UseCase) get(id string) (*entity.Requisicao, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &domain.NotFoundError{Entity: "requisição", ID: id}
	}
	return req, nil
}
