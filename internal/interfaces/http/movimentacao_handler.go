package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/domain"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/metrics"
)

// MovimentacaoHandler atende o razão de movimentações de estoque (protegido).
type MovimentacaoHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *estoque.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimentação de estoque
// @Description  Entrada, Saída, Reafiamento, Retorno ou Descarte. Um id gerado no
//
//	cliente torna o replay idempotente: a repetição devolve o registro original.
//
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "ferramenta_id, tipo, quantidade, usuario, setor"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	m, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			metrics.MovimentacoesRecusadas.Inc()
		}
		return respondError(c, err)
	}
	metrics.MovimentacoesRegistradas.WithLabelValues(m.Tipo).Inc()
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(m))
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        ferramenta_id  query  string  false  "filtrar por ferramenta"
// @Param        tipo           query  string  false  "filtrar por tipo"
// @Param        de             query  string  false  "RFC 3339"
// @Param        ate            query  string  false  "RFC 3339"
// @Param        limit          query  int     false  "padrão 20"
// @Param        offset         query  int     false  "padrão 0"
// @Success      200  {array}   dto.MovimentacaoResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	filter := repository.MovimentacaoFilter{
		FerramentaID: c.Query("ferramenta_id"),
		Tipo:         c.Query("tipo"),
	}
	if v := c.Query("de"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "de: data inválida (RFC 3339)"})
		}
		filter.De = &t
	}
	if v := c.Query("ate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ate: data inválida (RFC 3339)"})
		}
		filter.Ate = &t
	}
	list, err := h.uc.Listar(c.Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovimentacaoResponse(m))
	}
	return c.JSON(out)
}

// Saldo godoc
// @Summary      Saldo atual de uma ferramenta
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID da ferramenta"
// @Success      200  {object}  dto.SaldoFerramentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/saldo [get]
func (h *MovimentacaoHandler) Saldo(c *fiber.Ctx) error {
	out, err := h.uc.Saldo(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:               m.ID,
		FerramentaID:     m.FerramentaID,
		Tipo:             m.Tipo,
		Quantidade:       m.Quantidade,
		QuantidadeAntes:  m.QuantidadeAntes,
		QuantidadeDepois: m.QuantidadeDepois,
		Usuario:          m.Usuario,
		Setor:            m.Setor,
		SetorID:          m.SetorID,
		Observacoes:      m.Observacoes,
		CustoTotal:       m.CustoTotal,
		Status:           m.Status,
		DataMovimento:    m.DataMovimento,
	}
}
