package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/bilheteria/bilheteria-api/internal/interfaces/http"
	"github.com/bilheteria/bilheteria-api/pkg/config"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	checkoutRepo := postgres.NewCheckoutRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	eventUC := usecase.NewEventUseCase(eventRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, eventRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, ticketRepo)
	checkoutUC := usecase.NewCheckoutUseCase(checkoutRepo, cartRepo, userRepo)
	setupUC := usecase.NewSetupUseCase(postgres.NewSetupStore(pool))
	statusUC := usecase.NewStatusUseCase(postgres.NewStatusProvider(pool))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		UserUC:       userUC,
		ClientUC:     clientUC,
		EventUC:      eventUC,
		TicketUC:     ticketUC,
		CartUC:       cartUC,
		CheckoutUC:   checkoutUC,
		SetupUC:      setupUC,
		StatusUC:     statusUC,
		Logger:       log,
		SecureCookie: cfg.App.Env == "production",
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
