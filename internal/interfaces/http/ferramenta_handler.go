package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// FerramentaHandler atende o cadastro de ferramentas (protegido).
type FerramentaHandler struct {
	uc *estoque.FerramentaUseCase
}

// NewFerramentaHandler constrói o handler.
func NewFerramentaHandler(uc *estoque.FerramentaUseCase) *FerramentaHandler {
	return &FerramentaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar ferramenta
// @Tags         ferramentas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFerramentaRequest  true  "codigo e descricao obrigatórios"
// @Success      201   {object}  dto.FerramentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ferramentas [post]
func (h *FerramentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFerramentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFerramentaResponse(f))
}

// List godoc
// @Summary      Listar ferramentas
// @Tags         ferramentas
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Ativa, Manutenção ou Descartada"
// @Param        limit   query  int     false  "padrão 20"
// @Param        offset  query  int     false  "padrão 0"
// @Success      200  {array}   dto.FerramentaResponse
// @Router       /api/ferramentas [get]
func (h *FerramentaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	list, err := h.uc.Listar(c.Context(), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.FerramentaResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFerramentaResponse(f))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar ferramenta por ID
// @Tags         ferramentas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID da ferramenta"
// @Success      200  {object}  dto.FerramentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [get]
func (h *FerramentaHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toFerramentaResponse(f))
}

// Update godoc
// @Summary      Atualizar ferramenta
// @Description  Contadores de saldo não são editáveis; só mudam via movimentação.
// @Tags         ferramentas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "UUID da ferramenta"
// @Param        body  body  dto.UpdateFerramentaRequest  true  "campos a alterar"
// @Success      200   {object}  dto.FerramentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [put]
func (h *FerramentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFerramentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Atualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toFerramentaResponse(f))
}

// Descartar godoc
// @Summary      Descartar ferramenta (baixa lógica)
// @Description  Muda o status para Descartada. O histórico de movimentações permanece.
// @Tags         ferramentas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID da ferramenta"
// @Success      200  {object}  dto.FerramentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [delete]
func (h *FerramentaHandler) Descartar(c *fiber.Ctx) error {
	f, err := h.uc.Descartar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toFerramentaResponse(f))
}

func toFerramentaResponse(f *entity.Ferramenta) *dto.FerramentaResponse {
	return &dto.FerramentaResponse{
		ID:                   f.ID,
		Codigo:               f.Codigo,
		Descricao:            f.Descricao,
		Fabricante:           f.Fabricante,
		Categoria:            f.Categoria,
		QuantidadeTotal:      f.QuantidadeTotal,
		QuantidadeDisponivel: f.QuantidadeDisponivel,
		QuantidadeMinima:     f.QuantidadeMinima,
		CustoUnitario:        f.CustoUnitario,
		Localizacao:          f.Localizacao,
		Status:               f.Status,
		AbaixoDoMinimo:       f.AbaixoDoMinimo(),
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}
}
