package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/usecase"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// SetorHandler atende o cadastro de setores (protegido).
type SetorHandler struct {
	uc *usecase.SetorUseCase
}

// NewSetorHandler constrói o handler.
func NewSetorHandler(uc *usecase.SetorUseCase) *SetorHandler {
	return &SetorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar setor
// @Tags         setores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSetorRequest  true  "nome obrigatório"
// @Success      201   {object}  dto.SetorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/setores [post]
func (h *SetorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSetorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	s, err := h.uc.Criar(c.Context(), in.Nome, in.Descricao, in.Responsavel)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSetorResponse(s))
}

// List godoc
// @Summary      Listar setores
// @Tags         setores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SetorResponse
// @Router       /api/setores [get]
func (h *SetorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SetorResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSetorResponse(s))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar setor por ID
// @Tags         setores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID do setor"
// @Success      200  {object}  dto.SetorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/setores/{id} [get]
func (h *SetorHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.Buscar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSetorResponse(s))
}

func toSetorResponse(s *entity.Setor) *dto.SetorResponse {
	return &dto.SetorResponse{
		ID:          s.ID,
		Nome:        s.Nome,
		Descricao:   s.Descricao,
		Responsavel: s.Responsavel,
		CreatedAt:   s.CreatedAt,
	}
}
