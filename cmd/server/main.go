package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bundleapp "github.com/flowstock/backend/internal/application/bundle"
	catalogapp "github.com/flowstock/backend/internal/application/catalog"
	inventoryapp "github.com/flowstock/backend/internal/application/inventory"
	"github.com/flowstock/backend/internal/infrastructure/config"
	"github.com/flowstock/backend/internal/infrastructure/event"
	"github.com/flowstock/backend/internal/infrastructure/logger"
	"github.com/flowstock/backend/internal/infrastructure/persistence"
	"github.com/flowstock/backend/internal/interfaces/http/handler"
	"github.com/flowstock/backend/internal/interfaces/http/middleware"
	"github.com/flowstock/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			FlowStock API
//	@version		1.0
//	@description	Product catalog and inventory API with variant generation and bundle stock management

//	@contact.name	API Support
//	@contact.url	https://github.com/flowstock/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting FlowStock",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	bundleRepo := persistence.NewGormBundleRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)

	// Transaction scopes for the multi-row write paths
	catalogTxScope := persistence.NewGormCatalogTransactionScope(db.DB)
	saleTxScope := persistence.NewGormSaleTransactionScope(db.DB)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingHandler(log))

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, variantRepo, bundleRepo, catalogTxScope, eventBus)
	variantGenerator := catalogapp.NewVariantGenerator(productRepo, catalogTxScope, eventBus, log)
	bundleService := bundleapp.NewBundleService(bundleRepo, productRepo, variantRepo, eventBus)
	stockCalculator := bundleapp.NewStockCalculator(bundleRepo, warehouseRepo, stockRepo)
	saleTransactor := bundleapp.NewSaleTransactor(bundleRepo, warehouseRepo, stockCalculator, saleTxScope, eventBus, log)
	stockService := inventoryapp.NewStockService(stockRepo, warehouseRepo, productRepo, variantRepo, eventBus)
	warehouseService := inventoryapp.NewWarehouseService(warehouseRepo, stockRepo)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, variantGenerator)
	bundleHandler := handler.NewBundleHandler(bundleService, stockCalculator, saleTransactor)
	stockHandler := handler.NewStockHandler(stockService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. CORS - Handle cross-origin requests
	// 5. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/api/v1/ping", "/api/v1/system/health"))

	// Configure CORS from config
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Swagger documentation endpoint, disabled outside development
	engine.GET("/swagger/*any", middleware.SwaggerGate(cfg.Swagger.Enabled), ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (products, variants, bundles)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.Get)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/products/:id/options", productHandler.AddOption)
	catalogRoutes.GET("/products/:id/variants", productHandler.ListVariants)
	catalogRoutes.POST("/products/:id/variants/generate", productHandler.GenerateVariants)
	catalogRoutes.GET("/variants/:id", productHandler.GetVariant)
	catalogRoutes.DELETE("/variants/:id", productHandler.DeleteVariant)
	catalogRoutes.POST("/bundles", bundleHandler.Create)
	catalogRoutes.GET("/bundles", bundleHandler.List)
	catalogRoutes.GET("/bundles/:id", bundleHandler.Get)
	catalogRoutes.PUT("/bundles/:id", bundleHandler.Update)
	catalogRoutes.DELETE("/bundles/:id", bundleHandler.Delete)
	catalogRoutes.POST("/bundles/:id/items", bundleHandler.AddItem)
	catalogRoutes.DELETE("/bundles/:id/items/:item_type/:item_id", bundleHandler.RemoveItem)
	catalogRoutes.GET("/bundles/:id/stock", bundleHandler.CalculateStock)
	catalogRoutes.POST("/bundles/:id/sell", bundleHandler.Sell)

	// Inventory domain (warehouses, stock ledger)
	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("/warehouses", warehouseHandler.Create)
	inventoryRoutes.GET("/warehouses", warehouseHandler.List)
	inventoryRoutes.GET("/warehouses/:id", warehouseHandler.Get)
	inventoryRoutes.PUT("/warehouses/:id", warehouseHandler.Update)
	inventoryRoutes.DELETE("/warehouses/:id", warehouseHandler.Delete)
	inventoryRoutes.GET("/warehouses/:id/stocks", stockHandler.ListByWarehouse)
	inventoryRoutes.GET("/warehouses/:id/stocks/:item_type/:item_id", stockHandler.GetQuantity)
	inventoryRoutes.PUT("/stocks", stockHandler.SetQuantity)
	inventoryRoutes.GET("/items/:item_type/:item_id/stocks", stockHandler.ListByItem)

	// System routes (info, health)
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Simple ping at root API level for basic liveness checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
