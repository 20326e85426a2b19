package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ayurnest/ayurnest-backend/api/routes"
	addresssvc "github.com/ayurnest/ayurnest-backend/internal/address"
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
	"github.com/ayurnest/ayurnest-backend/pkg/maps"
	"github.com/ayurnest/ayurnest-backend/pkg/migrate"
	"github.com/ayurnest/ayurnest-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	favoritesRepo := favorites.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	notificationRepo := notifications.NewRepository(dbClient.DB())
	feedbackRepo := feedback.NewRepository(dbClient.DB())

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		TxRunner:       dbClient,
		SessionManager: sessionManager,
		ResetStore:     redisClient,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	favoritesService, err := favorites.NewService(favorites.ServiceParams{
		FavoritesRepo: favoritesRepo,
		ProductRepo:   productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		TxRunner:         dbClient,
		CartRepo:         cartRepo,
		OrderRepo:        orderRepo,
		NotificationRepo: notificationRepo,
		CheckoutConfig:   cfg.Checkout,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	notificationsService, err := notifications.NewService(notificationRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	feedbackService, err := feedback.NewService(feedbackRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create feedback service", err)
		os.Exit(1)
	}

	// Address lookups are optional; without an API key the routes stay off.
	var addressService addresssvc.Service
	if cfg.GoogleMaps.APIKey != "" {
		placesClient, err := maps.NewClient(cfg.GoogleMaps.APIKey)
		if err != nil {
			logg.Error(context.Background(), "failed to create places client", err)
			os.Exit(1)
		}
		addressService, err = addresssvc.NewService(placesClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create address service", err)
			os.Exit(1)
		}
	}

	handler := routes.NewRouter(routes.RouterParams{
		Config:        cfg,
		Logger:        logg,
		DB:            dbClient,
		Redis:         redisClient,
		Sessions:      sessionManager,
		AuthService:   authService,
		UserService:   userService,
		ProductsSvc:   productService,
		CartService:   cartService,
		FavoritesSvc:  favoritesService,
		CheckoutSvc:   checkoutService,
		OrdersService: ordersService,
		Notifications: notificationsService,
		FeedbackSvc:   feedbackService,
		AddressSvc:    addressService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
