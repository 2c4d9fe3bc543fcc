package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/franjavi-upct-es/Proyecto-ICAP-AquaSense/config"
	"github.com/franjavi-upct-es/Proyecto-ICAP-AquaSense/db"
	httpserver "github.com/franjavi-upct-es/Proyecto-ICAP-AquaSense/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.TableName, cfg.Region, cfg.EndpointURL)
	if err != nil {
		logger.Fatal("dynamodb client error", zap.Error(err))
	}

	srv := httpserver.New(cfg, store, logger)
	logger.Info("AquaSenseCloud API iniciada",
		zap.String("tabla", cfg.TableName),
		zap.String("addr", cfg.ListenAddr()),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
