// Package main - Entry point for the creator-rates API server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"creator-rates/api"
	"creator-rates/internal/config"
	"creator-rates/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	log := logging.Named("server")
	log.Info("starting creator-rates",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr))

	if err := api.NewServer(version).Listen(cfg.Server); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
