package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/catalog_site/config"
	"github.com/Gunvolt24/catalog_site/internal/app"
)

func main() {
	// локальные переменные окружения (если файл есть)
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}

	code := 0
	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "service failed: %v", err)
		code = 1
	}
	cleanup()
	stop()
	os.Exit(code)
}
