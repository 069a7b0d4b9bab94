package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/almeidajf/ferramentaria-api/internal/application/auth"
	"github.com/almeidajf/ferramentaria-api/internal/application/estoque"
	"github.com/almeidajf/ferramentaria-api/internal/application/relatorio"
	"github.com/almeidajf/ferramentaria-api/internal/application/requisicao"
	"github.com/almeidajf/ferramentaria-api/internal/application/usecase"
	"github.com/almeidajf/ferramentaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/almeidajf/ferramentaria-api/internal/interfaces/http"
	"github.com/almeidajf/ferramentaria-api/pkg/config"
	"github.com/almeidajf/ferramentaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	ferramentaRepo := postgres.NewFerramentaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	requisicaoRepo := postgres.NewRequisicaoRepository(pool)
	setorRepo := postgres.NewSetorRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movimentacaoUC := estoque.NewMovimentacaoUseCase(txRunner, ferramentaRepo, movRepo, setorRepo)
	ferramentaUC := estoque.NewFerramentaUseCase(ferramentaRepo)
	requisicaoUC := requisicao.NewUseCase(txRunner, requisicaoRepo)
	setorUC := usecase.NewSetorUseCase(setorRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	painelUC := relatorio.NewPainelUseCase(relatorioRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ferramentaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovimentacaoUC: movimentacaoUC,
		FerramentaUC:   ferramentaUC,
		RequisicaoUC:   requisicaoUC,
		SetorUC:        setorUC,
		FornecedorUC:   fornecedorUC,
		UsuarioUC:      usuarioUC,
		PainelUC:       painelUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

// runMigrations aplica as migrações SQL do diretório migrations via goose.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	return goose.Up(sqlDB, "migrations")
}
