package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilheteria/bilheteria-api/internal/application/auth"
	"github.com/bilheteria/bilheteria-api/internal/application/usecase"
	"github.com/bilheteria/bilheteria-api/internal/domain/entity"
	"github.com/bilheteria/bilheteria-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	ClientUC     *usecase.ClientUseCase
	EventUC      *usecase.EventUseCase
	TicketUC     *usecase.TicketUseCase
	CartUC       *usecase.CartUseCase
	CheckoutUC   *usecase.CheckoutUseCase
	SetupUC      *usecase.SetupUseCase
	StatusUC     *usecase.StatusUseCase
	Logger       *logger.Logger
	SecureCookie bool
}

// Router registra as rotas da API sob /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	api := app.Group("/api/v1")

	// Rotas públicas: status, bootstrap, login e o fluxo de compra (carrinho e
	// checkout usam o sessionToken do cliente, não a sessão de login).
	statusHandler := NewStatusHandler(deps.StatusUC, log)
	api.Get("/status", statusHandler.Get)

	setupHandler := NewSetupHandler(deps.SetupUC, log)
	api.Post("/setup", setupHandler.Run)

	sessionHandler := NewSessionHandler(deps.AuthUC, log, deps.SecureCookie)
	api.Post("/sessions", sessionHandler.Login)

	cartHandler := NewCartHandler(deps.CartUC, log)
	carts := api.Group("/carts")
	carts.Post("/", cartHandler.Replace)
	carts.Get("/", cartHandler.Get)
	carts.Post("/shipping", cartHandler.SetShipping)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, log)
	api.Post("/checkout", checkoutHandler.Create)
	api.Get("/checkout", checkoutHandler.GetLatest)

	// Rotas autenticadas.
	protected := api.Group("/", RequireAuth(deps.AuthUC, log))
	protected.Delete("/sessions", sessionHandler.Logout)
	protected.Get("/user", sessionHandler.CurrentUser)

	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	companies := protected.Group("/companies")
	companies.Get("/", RequireRole(log, entity.RoleAdmin), companyHandler.List)
	companies.Post("/", RequireRole(log, entity.RoleAdmin), companyHandler.Create)
	companies.Get("/:slug", companyHandler.GetBySlug)
	companies.Patch("/:slug", RequireRole(log, entity.RoleAdmin), companyHandler.Update)

	userHandler := NewUserHandler(deps.UserUC, log)
	users := protected.Group("/users", RequireRole(log, entity.RoleAdmin, entity.RoleManager))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:username", userHandler.GetByUsername)
	users.Patch("/:username", userHandler.Update)

	clientHandler := NewClientHandler(deps.ClientUC, log)
	clients := protected.Group("/clients",
		RequireActiveSubscription(log),
		RequireRole(log, entity.RoleAdmin, entity.RoleManager, entity.RoleOperator),
	)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Patch("/:id", clientHandler.Update)

	eventHandler := NewEventHandler(deps.EventUC, deps.TicketUC, log)
	events := protected.Group("/events", RequireActiveSubscription(log))
	events.Get("/", eventHandler.List)
	events.Post("/", RequireRole(log, entity.RoleAdmin, entity.RoleManager), eventHandler.Create)
	events.Get("/:slug", eventHandler.GetBySlug)
	events.Patch("/:slug", RequireRole(log, entity.RoleAdmin, entity.RoleManager), eventHandler.Update)
	events.Delete("/:slug", RequireRole(log, entity.RoleAdmin, entity.RoleManager), eventHandler.Delete)
	events.Get("/:slug/tickets", eventHandler.ListTickets)

	ticketHandler := NewTicketHandler(deps.TicketUC, log)
	tickets := protected.Group("/tickets", RequireActiveSubscription(log))
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", RequireRole(log, entity.RoleAdmin, entity.RoleManager), ticketHandler.Create)
	// Clonagem em massa é recurso dos planos pagos.
	tickets.Post("/clone-batch",
		RequireRole(log, entity.RoleAdmin, entity.RoleManager),
		RequirePlan(log, entity.PlanPremium, entity.PlanEnterprise),
		ticketHandler.CloneBatch,
	)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Patch("/:id", RequireRole(log, entity.RoleAdmin, entity.RoleManager), ticketHandler.Update)
	tickets.Delete("/:id", RequireRole(log, entity.RoleAdmin, entity.RoleManager), ticketHandler.Delete)
	tickets.Post("/:id/stock",
		RequireRole(log, entity.RoleAdmin, entity.RoleManager, entity.RoleOperator),
		ticketHandler.UpdateStock,
	)
	tickets.Post("/:id/clone", RequireRole(log, entity.RoleAdmin, entity.RoleManager), ticketHandler.Clone)
}
