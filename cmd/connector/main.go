package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/erp/connector/internal/application/export"
	"github.com/erp/connector/internal/domain/sync"
	"github.com/erp/connector/internal/infrastructure/config"
	"github.com/erp/connector/internal/infrastructure/logger"
	"github.com/erp/connector/internal/infrastructure/persistence"
	"github.com/erp/connector/internal/infrastructure/soap"
	"github.com/erp/connector/internal/interfaces/http/handler"
	"github.com/erp/connector/internal/interfaces/http/middleware"
	"github.com/erp/connector/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

	log.Info("Starting ERP connector",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
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
	identityMap := persistence.NewGormIdentityMap(db.DB)
	paymentStatus := persistence.NewGormPaymentStatusStore(db.DB)
	txRunner := persistence.NewGormTxRunner(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	resolver := persistence.NewGormTranslationResolver(db.DB)

	// Initialize remote gateway
	soapClient := soap.NewClient(&cfg.ERP, log)
	gateway := soap.NewGateway(soapClient)

	// Initialize export adapters
	customerExporter := export.NewCustomerExporter(customerRepo, identityMap, gateway, log)
	orderExporter := export.NewOrderExporter(orderRepo, identityMap, gateway, customerExporter, log)
	paymentExporter := export.NewPaymentExporter(orderRepo, paymentStatus, identityMap, gateway, customerExporter, txRunner, log)
	productExporter := export.NewProductExporter(productRepo, identityMap, resolver, gateway, log)
	warehouseExporter := export.NewWarehouseExporter(warehouseRepo, identityMap, gateway, log)
	propertyExporter := export.NewPropertyExporter(propertyRepo, identityMap, resolver, gateway, log)

	orchestrator := export.NewOrchestrator(log)
	orchestrator.Register(sync.EntityKindCustomer, customerExporter)
	orchestrator.Register(sync.EntityKindOrder, orderExporter)
	orchestrator.Register(sync.EntityKindPayment, paymentExporter)
	orchestrator.Register(sync.EntityKindProduct, productExporter)
	orchestrator.Register(sync.EntityKindWarehouse, warehouseExporter)
	orchestrator.Register(sync.EntityKindProperty, propertyExporter)

	args := os.Args[1:]
	command := "serve"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "serve":
		serve(cfg, log, db, orchestrator, identityMap)

	case "export":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: connector export <KIND> <id>")
			os.Exit(2)
		}
		kind := sync.EntityKind(args[1])
		if !kind.IsValid() {
			log.Fatal("Unknown entity kind", zap.String("kind", args[1]))
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			log.Fatal("Invalid entity id", zap.String("id", args[2]))
		}
		if err := orchestrator.Export(context.Background(), kind, id); err != nil {
			os.Exit(1)
		}

	case "seed":
		if len(args) < 4 {
			fmt.Fprintln(os.Stderr, "Usage: connector seed <KIND> <local-id> <remote-id>")
			os.Exit(2)
		}
		kind := sync.EntityKind(args[1])
		if kind != sync.EntityKindCurrency && kind != sync.EntityKindPaymentMethod {
			log.Fatal("Only CURRENCY and PAYMENT_METHOD mappings can be seeded",
				zap.String("kind", args[1]))
		}
		if err := identityMap.Record(context.Background(), kind, args[2], args[3]); err != nil {
			log.Fatal("Failed to record mapping", zap.Error(err))
		}
		log.Info("Mapping recorded",
			zap.String("kind", args[1]),
			zap.String("local_id", args[2]),
			zap.String("remote_id", args[3]))

	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", command)
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  serve                               Run the HTTP API (default)")
		fmt.Fprintln(os.Stderr, "  export <KIND> <id>                  Export one entity")
		fmt.Fprintln(os.Stderr, "  seed <KIND> <local-id> <remote-id>  Seed a CURRENCY or PAYMENT_METHOD mapping")
		os.Exit(2)
	}
}

// serve runs the HTTP API until SIGINT/SIGTERM.
func serve(cfg *config.Config, log *zap.Logger, db *persistence.Database, orchestrator *export.Orchestrator, identityMap sync.IdentityMap) {
	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id, panic recovery, request logging, security headers
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecurityHeaders())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.RegisterRoot(handler.NewHealthHandler(db))
	r.Register(handler.NewExportHandler(orchestrator, identityMap, log))
	r.Setup()

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
