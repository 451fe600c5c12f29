package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/catalog_site/config"
	cachemem "github.com/Gunvolt24/catalog_site/internal/cache/memory"
	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/sitemap"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

// CLI: генерирует sitemap.xml (или image-sitemap) из контент-API без запуска сервера.
func main() {
	_ = godotenv.Load(".env.local")

	outPath := flag.String("out", "", "output file. If empty, writes to stdout.")
	base := flag.String("base", "", "site origin, e.g. https://example.com (defaults to SITE_HTTP_PUBLIC_URL)")
	withImages := flag.Bool("images", false, "generate image sitemap")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *base == "" {
		*base = cfg.HTTP.PublicURL
	}
	if *base == "" {
		fmt.Fprintln(os.Stderr, "base url is required (-base or SITE_HTTP_PUBLIC_URL)")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	src, err := content.New(content.Config{
		BaseURL:   cfg.Content.BaseURL,
		Timeout:   cfg.Content.Timeout,
		UserAgent: cfg.Content.UserAgent,
		ListLimit: cfg.Content.ListLimit,
	}, logg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "content client: %v\n", err)
		os.Exit(1)
	}

	// одноразовый прогон: кэш только в памяти процесса
	mem := cachemem.NewLRUCacheTTL(0, cfg.Cache.TTL)
	site := usecase.NewSite(src, mem, logg, usecase.Options{ListLimit: cfg.Content.ListLimit})
	gen := sitemap.NewGenerator(site, mem, cfg.Cache.SitemapTTL, *base)

	var doc []byte
	if *withImages {
		doc, err = gen.ImageSitemap(ctx, *base)
	} else {
		doc, err = gen.Sitemap(ctx, *base)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sitemap: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		_, _ = os.Stdout.Write(doc)
		return
	}
	if err := os.WriteFile(*outPath, doc, 0o644); err != nil { //nolint:gosec
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "sitemap written to %s (%d bytes)\n", *outPath, len(doc))
}
