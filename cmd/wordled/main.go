// Command wordled runs the daily puzzle answer resolution service.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/puzzlewire/wordled/internal/api"
	"github.com/puzzlewire/wordled/internal/config"
	"github.com/puzzlewire/wordled/internal/database"
	"github.com/puzzlewire/wordled/internal/definition"
	"github.com/puzzlewire/wordled/internal/notify"
	"github.com/puzzlewire/wordled/internal/resolve"
	"github.com/puzzlewire/wordled/internal/scheduler"
	"github.com/puzzlewire/wordled/internal/source"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	generateConfig := flag.Bool("generate-config", false, "write a sample config file and exit")
	flag.Parse()

	if *generateConfig {
		if err := config.GenerateSample(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write sample config:", err)
			os.Exit(1)
		}
		fmt.Println("Sample config written to", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)

	store, err := database.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer store.Close()

	var primary source.Strategy
	if cfg.Sources.Official {
		primary = source.NewOfficialClient()
	}

	// Filter the fixed priority list down to the enabled scrapers; order
	// comes from source.AllSecondaries, never from here.
	enabled := map[string]bool{
		"review-page":      cfg.Sources.Review,
		"tomsguide":        cfg.Sources.TomsGuide,
		"techradar":        cfg.Sources.TechRadar,
		"rockpapershotgun": cfg.Sources.RockPaperShotgun,
	}
	var secondary []source.Strategy
	for _, s := range source.AllSecondaries() {
		if enabled[s.Name()] {
			secondary = append(secondary, s)
		}
	}

	definer, err := definition.NewProvider(cfg.Definition)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create definition provider")
	}

	var notifier resolve.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewPinger(cfg.Notify.SiteURL)
	}

	pipeline := resolve.NewPipeline(primary, secondary, store, definer, notifier,
		time.Duration(cfg.Resolver.FetchTimeoutSeconds)*time.Second)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled && len(cfg.Scheduler.Cron) > 0 {
		sched, err = scheduler.New(cfg.Scheduler.Cron, pipeline)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create scheduler")
		}
		sched.Start()
	}

	handler := api.NewHandler(pipeline, store)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.NewRouter(cfg, handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if sched != nil {
		sched.Shutdown()
	}
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
