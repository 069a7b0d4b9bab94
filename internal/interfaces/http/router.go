package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almeidajf/ferramentaria-api/internal/application/auth"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/application/relatorio"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/application/usecase"
	"github.com/almeidajf/ferramentaria-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	MovimentacaoUC *estoque.MovimentacaoUseCase
	FerramentaUC   *estoque.FerramentaUseCase
	RequisicaoUC   *requisicao.UseCase
	SetorUC        *usecase.SetorUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	PainelUC       *relatorio.PainelUseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ferramentas (protegido)
	ferramentas := protected.Group("/ferramentas")
	ferramentaHandler := NewFerramentaHandler(deps.FerramentaUC)
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	ferramentas.Post("/", ferramentaHandler.Create)
	ferramentas.Get("/", ferramentaHandler.List)
	ferramentas.Get("/:id", ferramentaHandler.GetByID)
	ferramentas.Put("/:id", ferramentaHandler.Update)
	ferramentas.Delete("/:id", ferramentaHandler.Descartar)
	ferramentas.Get("/:id/saldo", movimentacaoHandler.Saldo)

	// Movimentações de estoque (protegido)
	movimentacoes := protected.Group("/movimentacoes")
	movimentacoes.Post("/", movimentacaoHandler.Registrar)
	movimentacoes.Get("/", movimentacaoHandler.List)

	// Requisições (protegido; decisões exigem perfil aprovador ou administrador)
	requisicoes := protected.Group("/requisicoes")
	requisicaoHandler := NewRequisicaoHandler(deps.RequisicaoUC)
	requisicoes.Post("/", requisicaoHandler.Create)
	requisicoes.Get("/", requisicaoHandler.List)
	requisicoes.Get("/:id", requisicaoHandler.GetByID)
	requisicoes.Put("/:id", requisicaoHandler.Update)
	decisores := RequireRole(entity.PerfilAprovador, entity.PerfilAdministrador)
	requisicoes.Post("/:id/aprovar", decisores, requisicaoHandler.Aprovar)
	requisicoes.Post("/:id/rejeitar", decisores, requisicaoHandler.Rejeitar)

	// Setores (protegido)
	setores := protected.Group("/setores")
	setorHandler := NewSetorHandler(deps.SetorUC)
	setores.Post("/", setorHandler.Create)
	setores.Get("/", setorHandler.List)
	setores.Get("/:id", setorHandler.GetByID)

	// Fornecedores (protegido)
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Put("/:id", fornecedorHandler.Update)

	// Usuários (restrito a administradores)
	usuarios := protected.Group("/usuarios", RequireRole(entity.PerfilAdministrador))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Patch("/:id/perfil", usuarioHandler.AlterarPerfil)
	usuarios.Patch("/:id/status", usuarioHandler.AlterarStatus)

	// Relatórios (protegido)
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.PainelUC)
	relatorios.Get("/painel", relatorioHandler.Painel)
}
