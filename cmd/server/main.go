package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/config"
	"github.com/CiaoGab/Restaurant-Order-App/internal/infrastructure/logger"
	"github.com/CiaoGab/Restaurant-Order-App/internal/infrastructure/mysql"
	"github.com/CiaoGab/Restaurant-Order-App/internal/menu"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order"
	"github.com/CiaoGab/Restaurant-Order-App/internal/server"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	var db *sql.DB
	if cfg.Menu.Source == "mysql" {
		db, err = mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("database connected")
	}

	menuRepo, err := menu.NewRepository(cfg.Menu, db)
	if err != nil {
		zapLogger.Fatal("configuring menu source", zap.Error(err))
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	items, err := menu.Load(loadCtx, menuRepo, zapLogger.With(zap.String("source", cfg.Menu.Source)))
	cancelLoad()
	if err != nil {
		zapLogger.Fatal("loading menu", zap.Error(err))
	}

	orderModule, err := order.NewModule(items, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("building order module", zap.Error(err))
	}
	menuCtrl := menu.NewController(items, zapLogger)

	router := server.NewRouter(orderModule.Page, orderModule.API, menuCtrl, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go orderModule.Sessions.RunJanitor(janitorCtx, cfg.Session.TTL, cfg.Session.SweepInterval, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")
	stopJanitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
