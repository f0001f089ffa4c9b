package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/stream"
	"github.com/hugohenrick/pdv-varejo/pkg/auth"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/middleware"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
	"github.com/redis/go-redis/v9"
)

const cleanupInterval = 60 * time.Second

// App representa a aplicação e suas dependências
type App struct {
	router   *gin.Engine
	db       *database.PostgresDB
	rdb      *redis.Client
	registry *stream.Registry
	logger   logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewComponentLogger("api")

	// Banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Redis: registro de conexões do stream e cache do painel
	rdb := stream.NewRedisClient()
	if err := stream.Ping(context.Background(), rdb); err != nil {
		db.Close()
		return nil, err
	}

	// Serviço de tokens
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	pool := db.Pool()

	// Repositórios
	businessRepo := repository.NewBusinessRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	suspendedRepo := repository.NewSuspendedSaleRepository(pool)
	inventoryRepo := repository.NewInventoryRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	debtRepo := repository.NewDebtRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// Infraestrutura de stream
	registry := stream.NewRegistry(rdb)
	statsCache := stream.NewStatsCache(rdb)

	// Middlewares
	businessValidator := repository.NewBusinessValidator(businessRepo)
	authMW := middleware.AuthMiddleware(jwtService)
	tenantMW := tenant.Middleware(businessValidator)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, logger.NewComponentLogger("auth"))
	businessController := controller.NewBusinessController(businessRepo, userRepo, logger.NewComponentLogger("business"))
	categoryController := controller.NewCategoryController(categoryRepo, logger.NewComponentLogger("category"))
	customerController := controller.NewCustomerController(customerRepo, logger.NewComponentLogger("customer"))
	productController := controller.NewProductController(productRepo, inventoryRepo, logger.NewComponentLogger("product"))
	saleController := controller.NewSaleController(saleRepo, businessRepo, notificationRepo, logger.NewComponentLogger("sale"))
	suspendedController := controller.NewSuspendedSaleController(suspendedRepo, businessRepo, logger.NewComponentLogger("suspended"))
	debtController := controller.NewDebtController(debtRepo, logger.NewComponentLogger("debt"))
	dashboardController := controller.NewDashboardController(dashboardRepo, debtRepo, statsCache, logger.NewComponentLogger("dashboard"))
	notificationController := controller.NewNotificationController(notificationRepo, registry, logger.NewComponentLogger("notification"))
	healthController := controller.NewHealthController(db, rdb)

	// Router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig()))

	route.RegisterHealthRoutes(router, healthController)

	api := router.Group("/api/v1")
	route.RegisterSetupRoutes(api, businessController, authMW, tenantMW)
	route.RegisterAuthRoutes(api, authController, authMW, tenantMW)
	route.RegisterCategoryRoutes(api, categoryController, authMW, tenantMW)
	route.RegisterCustomerRoutes(api, customerController, authMW, tenantMW)
	route.RegisterProductRoutes(api, productController, authMW, tenantMW)
	route.RegisterSaleRoutes(api, saleController, suspendedController, authMW, tenantMW)
	route.RegisterDebtRoutes(api, debtController, authMW, tenantMW)
	route.RegisterDashboardRoutes(api, dashboardController, authMW, tenantMW)
	route.RegisterNotificationRoutes(api, notificationController, authMW, tenantMW)

	return &App{
		router:   router,
		db:       db,
		rdb:      rdb,
		registry: registry,
		logger:   log,
	}, nil
}

// corsConfig monta a configuração de CORS a partir do ambiente
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = []string{origins}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowCredentials = !cfg.AllowAllOrigins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}

// Start inicia o servidor HTTP e o passe periódico de limpeza de conexões;
// bloqueia até o sinal de encerramento
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	go a.cleanupLoop(cleanupCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		cancelCleanup()
		return err
	case sig := <-quit:
		a.logger.Info("encerrando servidor", "signal", sig.String())
	}

	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	a.Close()
	return nil
}

// cleanupLoop recolhe periodicamente do registro as conexões de stream mortas
func (a *App) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := a.registry.CleanupAll(ctx)
			if err != nil {
				a.logger.Warn("erro no passe de limpeza de conexões", "error", err)
				continue
			}
			if removed > 0 {
				a.logger.Info("conexões expiradas recolhidas", "removed", removed)
			}
		}
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
