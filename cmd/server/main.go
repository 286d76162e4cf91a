package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"radagast/internal/commons"
	"radagast/internal/company"
	"radagast/internal/config"
	"radagast/internal/employee"
	"radagast/internal/identity"
	"radagast/internal/infrastructure/logger"
	"radagast/internal/infrastructure/mysql"
	"radagast/internal/order"
	"radagast/internal/product"
	"radagast/internal/repository"
	"radagast/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	validate := commons.NewValidator()

	controllers := server.Controllers{
		Companies: company.NewModule(db, validate, zapLogger),
		Employees: employee.NewModule(db, validate, zapLogger),
		Orders:    order.NewModule(db, validate, zapLogger),
		Products:  product.NewModule(db, validate, zapLogger),
		Users:     identity.NewModule(repository.NewUserStore(db), cfg.JWT, validate, zapLogger),
		Customers: identity.NewModule(repository.NewCustomerStore(db), cfg.JWT, validate, zapLogger),
	}

	router := server.NewRouter(controllers, cfg.JWT, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
