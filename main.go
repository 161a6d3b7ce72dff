package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"machikoro/internal/config"
	"machikoro/internal/engine/cards"
	"machikoro/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	port := flag.Int("port", cfg.Port, "server port")
	flag.Parse()
	cfg.Port = *port

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Fatal("load rules", zap.Error(err))
	}
	sub, err := fs.Sub(static, "web/static")
	if err != nil {
		logger.Fatal("static fs", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, cards.NewCatalog(), rules, sub, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
