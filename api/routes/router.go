package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayurnest/ayurnest-backend/api/controllers"
	"github.com/ayurnest/ayurnest-backend/api/middleware"
	"github.com/ayurnest/ayurnest-backend/internal/address"
	authsvc "github.com/ayurnest/ayurnest-backend/internal/auth"
	"github.com/ayurnest/ayurnest-backend/internal/cart"
	checkoutsvc "github.com/ayurnest/ayurnest-backend/internal/checkout"
	"github.com/ayurnest/ayurnest-backend/internal/favorites"
	"github.com/ayurnest/ayurnest-backend/internal/feedback"
	"github.com/ayurnest/ayurnest-backend/internal/notifications"
	"github.com/ayurnest/ayurnest-backend/internal/orders"
	"github.com/ayurnest/ayurnest-backend/internal/products"
	"github.com/ayurnest/ayurnest-backend/internal/users"
	"github.com/ayurnest/ayurnest-backend/pkg/auth/session"
	"github.com/ayurnest/ayurnest-backend/pkg/config"
	"github.com/ayurnest/ayurnest-backend/pkg/db"
	"github.com/ayurnest/ayurnest-backend/pkg/logger"
	"github.com/ayurnest/ayurnest-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *redis.Client
	Sessions      session.AccessSessionChecker
	AuthService   authsvc.Service
	UserService   users.Service
	ProductsSvc   products.Service
	CartService   cart.Service
	FavoritesSvc  favorites.Service
	CheckoutSvc   checkoutsvc.Service
	OrdersService orders.Service
	Notifications notifications.Service
	FeedbackSvc   feedback.Service
	AddressSvc    address.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	forgotPolicy := middleware.NewAuthRateLimitPolicy(
		"forgot",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.AuthRegister(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(forgotPolicy, p.Redis, logg)).Post("/forgot-password", controllers.AuthForgotPassword(p.AuthService, cfg, logg))
		r.Post("/reset-password", controllers.AuthResetPassword(p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
	})

	// Wellness reference content and the catalog are readable without an
	// account.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dosha", func(r chi.Router) {
			r.Get("/questions", controllers.DoshaQuestions())
			r.Post("/score", controllers.DoshaScore(logg))
			r.Get("/profiles", controllers.DoshaProfiles())
			r.Get("/profiles/{constitution}", controllers.DoshaProfileDetail(logg))
		})
		r.Route("/routines", func(r chi.Router) {
			r.Get("/", controllers.RoutineList())
			r.Get("/{dosha}", controllers.RoutineDetail(logg))
		})
		r.Route("/remedies", func(r chi.Router) {
			r.Get("/", controllers.RemedyList(logg))
			r.Get("/{remedyId}", controllers.RemedyDetail(logg))
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(p.ProductsSvc, logg))
			r.Get("/{productId}", controllers.ProductDetail(p.ProductsSvc, logg))
		})

		// Carts serve signed-in and anonymous shoppers alike.
		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, p.Sessions, logg))
			r.Use(middleware.CartToken())
			r.Get("/", controllers.CartGet(p.CartService, logg))
			r.Post("/items", controllers.CartAddItem(p.CartService, logg))
			r.Patch("/items/{productId}", controllers.CartSetQuantity(p.CartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(p.CartService, logg))
			r.Delete("/", controllers.CartClear(p.CartService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
			r.Use(middleware.Idempotency(p.Redis, logg))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.ProfileGet(p.UserService, logg))
				r.Patch("/", controllers.ProfileUpdate(p.UserService, logg))
				r.Post("/constitution", controllers.ProfileSaveConstitution(p.UserService, logg))
				r.Post("/change-password", controllers.AuthChangePassword(p.AuthService, logg))
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", controllers.FavoriteList(p.FavoritesSvc, logg))
				r.Put("/{productId}", controllers.FavoriteAdd(p.FavoritesSvc, logg))
				r.Delete("/{productId}", controllers.FavoriteRemove(p.FavoritesSvc, logg))
			})

			r.Post("/checkout", controllers.Checkout(p.CheckoutSvc, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrderList(p.OrdersService, logg))
				r.Get("/{orderId}", controllers.OrderDetail(p.OrdersService, logg))
				r.Get("/{orderId}/tracking", controllers.OrderTracking(p.OrdersService, logg))
				r.Post("/{orderId}/cancel", controllers.OrderCancel(p.OrdersService, logg))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", controllers.ListNotifications(p.Notifications, logg))
				r.Post("/{notificationId}/read", controllers.MarkNotificationRead(p.Notifications, logg))
				r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, logg))
			})

			r.Route("/feedback", func(r chi.Router) {
				r.Post("/", controllers.FeedbackSubmit(p.FeedbackSvc, logg))
				r.Get("/", controllers.FeedbackList(p.FeedbackSvc, logg))
			})
			r.Route("/support", func(r chi.Router) {
				r.Post("/", controllers.SupportSubmit(p.FeedbackSvc, logg))
				r.Get("/", controllers.SupportList(p.FeedbackSvc, logg))
			})

			if p.AddressSvc != nil {
				r.Route("/address", func(r chi.Router) {
					r.Get("/autocomplete", controllers.AddressAutocomplete(p.AddressSvc, logg))
					r.Get("/resolve", controllers.AddressResolve(p.AddressSvc, logg))
				})
			}
		})
	})

	return r
}
