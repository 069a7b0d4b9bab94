package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/usecase"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// UsuarioHandler administração de usuários (restrito a administradores no router).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUsuarioResponse(u))
	}
	return c.JSON(out)
}

// AlterarPerfil godoc
// @Summary      Alterar perfil de um usuário
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "UUID do usuário"
// @Param        body  body  dto.AlterarPerfilRequest  true  "administrador, aprovador ou operador"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/perfil [patch]
func (h *UsuarioHandler) AlterarPerfil(c *fiber.Ctx) error {
	var in dto.AlterarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	u, err := h.uc.AlterarPerfil(c.Context(), c.Params("id"), in.Perfil)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toUsuarioResponse(u))
}

// AlterarStatus godoc
// @Summary      Ativar/inativar usuário
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "UUID do usuário"
// @Param        body  body  dto.AlterarStatusRequest  true  "Ativo ou Inativo"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/status [patch]
func (h *UsuarioHandler) AlterarStatus(c *fiber.Ctx) error {
	var in dto.AlterarStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	u, err := h.uc.AlterarStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toUsuarioResponse(u))
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:           u.ID,
		Nome:         u.Nome,
		Email:        u.Email,
		Perfil:       u.Perfil,
		SetorID:      u.SetorID,
		Status:       u.Status,
		UltimoAcesso: u.UltimoAcesso,
		CreatedAt:    u.CreatedAt,
	}
}
