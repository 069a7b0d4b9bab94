package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
	"github.com/almeidajf/ferramentaria-api/internal/domain/repository"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/metrics"
)

// RequisicaoHandler atende o fluxo de requisições (protegido; decisões exigem
// perfil aprovador ou administrador, garantido no router).
type RequisicaoHandler struct {
	uc *requisicao.UseCase
}

// NewRequisicaoHandler constrói o handler.
func NewRequisicaoHandler(uc *requisicao.UseCase) *RequisicaoHandler {
	return &RequisicaoHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir requisição
// @Description  Gera o número PR-<ano>-<sequencial> e abre em status Pendente.
// @Tags         requisicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequisicaoRequest  true  "tipo, descricao e prioridade obrigatórios"
// @Success      201   {object}  dto.RequisicaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/requisicoes [post]
func (h *RequisicaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequisicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	req, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RequisicoesCriadas.WithLabelValues(req.Tipo).Inc()
	return c.Status(fiber.StatusCreated).JSON(toRequisicaoResponse(req))
}

// List godoc
// @Summary      Listar requisições
// @Tags         requisicoes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "filtrar por status"
// @Param        tipo    query  string  false  "Compra ou Reafiamento"
// @Param        setor   query  string  false  "filtrar por setor"
// @Param        limit   query  int     false  "padrão 20"
// @Param        offset  query  int     false  "padrão 0"
// @Success      200  {array}   dto.RequisicaoResponse
// @Router       /api/requisicoes [get]
func (h *RequisicaoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	filter := repository.RequisicaoFilter{
		Status: c.Query("status"),
		Tipo:   c.Query("tipo"),
		Setor:  c.Query("setor"),
	}
	list, err := h.uc.Listar(c.Context(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.RequisicaoResponse, 0, len(list))
	for _, req := range list {
		out = append(out, toRequisicaoResponse(req))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar requisição por ID
// @Tags         requisicoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID da requisição"
// @Success      200  {object}  dto.RequisicaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requisicoes/{id} [get]
func (h *RequisicaoHandler) GetByID(c *fiber.Ctx) error {
	req, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequisicaoResponse(req))
}

// Update godoc
// @Summary      Editar requisição
// @Description  id, numero e data de abertura são imutáveis. Requisições em estado
//
//	terminal (Rejeitado, Concluído) não aceitam edição.
//
// @Tags         requisicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "UUID da requisição"
// @Param        body  body  dto.EditRequisicaoRequest  true  "campos a alterar"
// @Success      200   {object}  dto.RequisicaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisicoes/{id} [put]
func (h *RequisicaoHandler) Update(c *fiber.Ctx) error {
	var in dto.EditRequisicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	req, err := h.uc.Editar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequisicaoResponse(req))
}

// Aprovar godoc
// @Summary      Aprovar requisição
// @Description  Permitido de Pendente ou Em Andamento. Observações opcionais.
// @Tags         requisicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true   "UUID da requisição"
// @Param        body  body  dto.DecisaoRequisicaoRequest  false  "observações da análise"
// @Success      200   {object}  dto.RequisicaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisicoes/{id}/aprovar [post]
func (h *RequisicaoHandler) Aprovar(c *fiber.Ctx) error {
	var in dto.DecisaoRequisicaoRequest
	// corpo vazio é válido na aprovação
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	req, err := h.uc.Aprovar(c.Context(), c.Params("id"), GetUserID(c), in.Observacoes)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RequisicoesDecididas.WithLabelValues("aprovado").Inc()
	return c.JSON(toRequisicaoResponse(req))
}

// Rejeitar godoc
// @Summary      Rejeitar requisição
// @Description  Permitido apenas de Pendente. Observações obrigatórias.
// @Tags         requisicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "UUID da requisição"
// @Param        body  body  dto.DecisaoRequisicaoRequest  true  "motivo da rejeição"
// @Success      200   {object}  dto.RequisicaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisicoes/{id}/rejeitar [post]
func (h *RequisicaoHandler) Rejeitar(c *fiber.Ctx) error {
	var in dto.DecisaoRequisicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	req, err := h.uc.Rejeitar(c.Context(), c.Params("id"), GetUserID(c), in.Observacoes)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RequisicoesDecididas.WithLabelValues("rejeitado").Inc()
	return c.JSON(toRequisicaoResponse(req))
}

func toRequisicaoResponse(r *entity.Requisicao) *dto.RequisicaoResponse {
	return &dto.RequisicaoResponse{
		ID:            r.ID,
		Numero:        r.Numero,
		Tipo:          r.Tipo,
		Descricao:     r.Descricao,
		Solicitante:   r.Solicitante,
		Setor:         r.Setor,
		Prioridade:    r.Prioridade,
		Valor:         r.Valor,
		DataAbertura:  r.DataAbertura,
		Prazo:         r.Prazo,
		Status:        r.Status,
		Aprovador:     r.Aprovador,
		Justificativa: r.Justificativa,
		Observacoes:   r.Observacoes,
	}
}
