package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ashtabanjan/restaurant-api/internal/api/http/handlers"
	"github.com/ashtabanjan/restaurant-api/internal/auth"
	"github.com/ashtabanjan/restaurant-api/internal/ratelimit"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Menu        *handlers.MenuHandler
	Orders      *handlers.OrdersHandler
	Admin       *handlers.AdminHandler
	Pipeline    *auth.Pipeline
	AuthLimiter ratelimit.Limiter
	Logger      *zap.Logger
}

// RegisterRoutes wires HTTP routes. Every route states its access category.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	p := cfg.Pipeline
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	throttle := rateLimitMiddleware(cfg.AuthLimiter, logger)

	app.Get("/", p.Public(cfg.Health.Root))
	app.Get("/health/live", p.Public(cfg.Health.Live))
	app.Get("/health/ready", p.Public(cfg.Health.Ready))

	authGroup := app.Group("/auth")
	authGroup.Post("/register", throttle, p.Public(cfg.Auth.Register))
	authGroup.Post("/login", throttle, p.Public(cfg.Auth.Login))
	authGroup.Get("/me", p.Authenticated(cfg.Auth.Me))
	authGroup.Post("/password/change", p.Authenticated(cfg.Auth.ChangePassword))
	authGroup.Post("/password/reset/request", throttle, p.Public(cfg.Auth.RequestPasswordReset))
	authGroup.Post("/password/reset/confirm", throttle, p.Public(cfg.Auth.ConfirmPasswordReset))

	users := app.Group("/users")
	users.Get("/", p.Admin(cfg.Users.List))
	users.Get("/:uid/admin", p.Owner(auth.OwnerFromParam("uid"), cfg.Users.IsAdmin))
	users.Patch("/:id/role", p.Admin(cfg.Users.SetRole))
	users.Delete("/:id", p.Admin(cfg.Users.Delete))

	menu := app.Group("/menu")
	menu.Get("/", p.Public(cfg.Menu.List))
	menu.Get("/count", p.Public(cfg.Menu.Count))
	menu.Get("/category", p.Public(cfg.Menu.ByCategory))
	menu.Get("/:id", p.Public(cfg.Menu.Get))
	menu.Post("/", p.Admin(cfg.Menu.Create))
	menu.Patch("/:id", p.Admin(cfg.Menu.Update))
	menu.Delete("/:id", p.Admin(cfg.Menu.Delete))

	carts := app.Group("/carts")
	carts.Get("/", p.Owner(auth.OwnerFromQuery("uid"), cfg.Orders.ListCart))
	carts.Post("/", p.Authenticated(cfg.Orders.AddToCart))
	carts.Delete("/:id", p.Authenticated(cfg.Orders.RemoveFromCart))

	payments := app.Group("/payments")
	payments.Get("/", p.Owner(auth.OwnerFromQuery("uid"), cfg.Orders.ListPayments))
	payments.Post("/", p.Authenticated(cfg.Orders.RecordPayment))

	reviews := app.Group("/reviews")
	reviews.Get("/", p.Public(cfg.Orders.ListReviews))
	reviews.Post("/", p.Authenticated(cfg.Orders.CreateReview))

	admin := app.Group("/admin")
	admin.Get("/stats", p.Admin(cfg.Admin.Stats))
	admin.Get("/stats/categories", p.Admin(cfg.Admin.CategoryStats))
	admin.Get("/access-denials", p.Admin(cfg.Admin.AccessDenials))

	app.Get("/metrics", p.Admin(cfg.Admin.Metrics))
}
