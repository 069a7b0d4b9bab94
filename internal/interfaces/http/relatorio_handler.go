package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/dto"
	"github.com/almeidajf/ferramentaria-api/internal/application/relatorio"
)

// RelatorioHandler atende o painel de indicadores (protegido).
type RelatorioHandler struct {
	uc *relatorio.PainelUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.PainelUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Painel godoc
// @Summary      Painel de indicadores
// @Description  Agregados do cadastro, do razão no período (padrão: últimos 30 dias)
//
//	e das requisições por status.
//
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        de   query  string  false  "início do período (RFC 3339)"
// @Param        ate  query  string  false  "fim do período (RFC 3339)"
// @Success      200  {object}  dto.PainelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/painel [get]
func (h *RelatorioHandler) Painel(c *fiber.Ctx) error {
	var de, ate time.Time
	if v := c.Query("de"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "de: data inválida (RFC 3339)"})
		}
		de = t
	}
	if v := c.Query("ate"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "ate: data inválida (RFC 3339)"})
		}
		ate = t
	}
	out, err := h.uc.Gerar(c.Context(), de, ate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
