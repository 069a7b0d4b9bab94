package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
)

// MovimentacaoUseCase registra movimentações de estoque de forma transacional
// (Entrada, Saída, Reafiamento, Retorno, Descarte) com bloqueio de linha
// (SELECT FOR UPDATE) e Commit/Rollback.
type MovimentacaoUseCase struct {
	txRunner       TxRunner
	ferramentaRepo repository.FerramentaRepository
	movRepo        repository.MovimentacaoRepository
	setorRepo      repository.SetorRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	ferramentaRepo repository.FerramentaRepository,
	movRepo repository.MovimentacaoRepository,
	setorRepo repository.SetorRepository,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:       txRunner,
		ferramentaRepo: ferramentaRepo,
		movRepo:        movRepo,
		setorRepo:      setorRepo,
	}
}

// Registrar valida e grava uma movimentação: calcula saldo antes/depois e custo
// total, persiste movimentação + saldo da ferramenta + histórico numa única
// transação e devolve a movimentação criada.
//
// Ordem de validação: (1) campos obrigatórios; (2) quantidade positiva;
// (3) tipo conhecido e setor existente; (4) saldo suficiente, verificado
// dentro da transação com a linha da ferramenta bloqueada.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimentacaoRequest) (*entity.Movimentacao, error) {
	var faltantes []string
	if in.FerramentaID == "" {
		faltantes = append(faltantes, "ferramenta_id")
	}
	if in.Tipo == "" {
		faltantes = append(faltantes, "tipo")
	}
	if in.Quantidade == 0 {
		faltantes = append(faltantes, "quantidade")
	}
	if strings.TrimSpace(in.Usuario) == "" {
		faltantes = append(faltantes, "usuario")
	}
	if strings.TrimSpace(in.Setor) == "" {
		faltantes = append(faltantes, "setor")
	}
	if len(faltantes) > 0 {
		return nil, domain.NewValidationError(faltantes...)
	}
	if in.Quantidade < 0 {
		return nil, domain.NewValidationError("quantidade")
	}
	if !entity.TipoMovimentacaoValido(in.Tipo) {
		return nil, domain.NewValidationError("tipo")
	}

	// Setor por id é opcional (esquema legado aceita texto livre), mas se veio
	// precisa resolver para um setor conhecido.
	if in.SetorID != "" {
		setor, err := uc.setorRepo.GetByID(in.SetorID)
		if err != nil {
			return nil, err
		}
		if setor == nil {
			return nil, &domain.NotFoundError{Entity: "setor", ID: in.SetorID}
		}
	}

	ferramenta, err := uc.ferramentaRepo.GetByID(in.FerramentaID)
	if err != nil {
		return nil, err
	}
	if ferramenta == nil {
		return nil, &domain.NotFoundError{Entity: "ferramenta", ID: in.FerramentaID}
	}

	now := time.Now()
	movID := in.ID
	if movID == "" {
		movID = uuid.New().String()
	}

	var criada *entity.Movimentacao

	// Transação única: bloqueia a linha da ferramenta, recalcula o saldo e grava
	// movimentação + saldo + histórico. Commit se tudo ok, Rollback se algo falha.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		ferramentaRepo repository.FerramentaRepository,
		histRepo repository.HistoricoEstoqueRepository,
	) error {
		// Replay idempotente: se o cliente reenviou o mesmo ID após um sucesso
		// confirmado, devolve a movimentação gravada sem reaplicar o delta.
		if in.ID != "" {
			existente, err := movRepo.GetByID(in.ID)
			if err != nil {
				return err
			}
			if existente != nil {
				criada = existente
				return nil
			}
		}

		f, err := ferramentaRepo.GetForUpdate(in.FerramentaID)
		if err != nil {
			return err
		}
		if f == nil {
			return &domain.NotFoundError{Entity: "ferramenta", ID: in.FerramentaID}
		}

		antes := f.QuantidadeDisponivel
		depois := antes + entity.Delta(in.Tipo, in.Quantidade)
		total := f.QuantidadeTotal

		switch in.Tipo {
		case entity.MovimentacaoEntrada:
			total += in.Quantidade
		case entity.MovimentacaoDescarte:
			if antes < in.Quantidade {
				return &domain.InsufficientStockError{Available: antes, Requested: in.Quantidade}
			}
			total -= in.Quantidade
		case entity.MovimentacaoSaida, entity.MovimentacaoReafiamento:
			if antes < in.Quantidade {
				return &domain.InsufficientStockError{Available: antes, Requested: in.Quantidade}
			}
		case entity.MovimentacaoRetorno:
			// Retorno nunca pode deixar o disponível acima do total possuído.
			if depois > total {
				return domain.NewValidationError("quantidade")
			}
		}

		mov := &entity.Movimentacao{
			ID:               movID,
			FerramentaID:     f.ID,
			Tipo:             in.Tipo,
			Quantidade:       in.Quantidade,
			QuantidadeAntes:  antes,
			QuantidadeDepois: depois,
			Usuario:          in.Usuario,
			Setor:            in.Setor,
			SetorID:          in.SetorID,
			Observacoes:      in.Observacoes,
			CustoTotal:       f.CustoUnitario.Mul(decimal.NewFromInt(int64(in.Quantidade))),
			Status:           entity.MovimentacaoConcluida,
			DataMovimento:    now,
			CreatedAt:        now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := ferramentaRepo.UpdateSaldo(f.ID, total, depois); err != nil {
			return err
		}
		hist := &entity.HistoricoEstoque{
			ID:                 uuid.New().String(),
			FerramentaID:       f.ID,
			MovimentacaoID:     mov.ID,
			QuantidadeAnterior: antes,
			QuantidadeNova:     depois,
			TipoAlteracao:      in.Tipo,
			DataAlteracao:      now,
		}
		if err := histRepo.Create(hist); err != nil {
			return err
		}
		criada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criada, nil
}

// Listar devolve movimentações por data de movimento, mais recente primeiro.
func (uc *MovimentacaoUseCase) Listar(ctx context.Context, filter repository.MovimentacaoFilter, page dto.PageRequest) ([]*entity.Movimentacao, error) {
	page.DefaultPage()
	return uc.movRepo.List(filter, page.Limit, page.Offset)
}

// Saldo devolve o snapshot de saldo atual de uma ferramenta.
func (uc *MovimentacaoUseCase) Saldo(ctx context.Context, ferramentaID string) (*dto.SaldoFerramentaResponse, error) {
	f, err := uc.ferramentaRepo.GetByID(ferramentaID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, &domain.NotFoundError{Entity: "ferramenta", ID: ferramentaID}
	}
	return &dto.SaldoFerramentaResponse{
		FerramentaID:         f.ID,
		Codigo:               f.Codigo,
		QuantidadeTotal:      f.QuantidadeTotal,
		QuantidadeDisponivel: f.QuantidadeDisponivel,
		QuantidadeMinima:     f.QuantidadeMinima,
		AbaixoDoMinimo:       f.AbaixoDoMinimo(),
	}, nil
}
