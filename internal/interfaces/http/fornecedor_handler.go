package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/usecase"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// FornecedorHandler atende o cadastro de fornecedores (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFornecedorRequest  true  "nome obrigatório; CNPJ único quando informado"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Criar(c.Context(), &entity.Fornecedor{
		Nome:     in.Nome,
		CNPJ:     in.CNPJ,
		Contato:  in.Contato,
		Email:    in.Email,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toFornecedorResponse(f))
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Ativo ou Inativo"
// @Success      200  {array}  dto.FornecedorResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFornecedorResponse(f))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar fornecedor
// @Description  CNPJ não é editável. Campos vazios permanecem inalterados.
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "UUID do fornecedor"
// @Param        body  body  dto.UpdateFornecedorRequest  true  "campos a alterar"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	f, err := h.uc.Atualizar(c.Context(), c.Params("id"), &entity.Fornecedor{
		Nome:     in.Nome,
		Contato:  in.Contato,
		Email:    in.Email,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
		Status:   in.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toFornecedorResponse(f))
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Contato:   f.Contato,
		Email:     f.Email,
		Telefone:  f.Telefone,
		Endereco:  f.Endereco,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
