package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matrix-life/internal/app"
	"matrix-life/internal/core"
	"matrix-life/internal/journal"
	"matrix-life/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindHeadless(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "[life] ", log.LstdFlags)
	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *app.Config, logger *log.Logger) error {
	eng, _, source, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	lc := eng.Config()
	logger.Printf("%s %dx%d, reseed every %d generations, %d workers, %s",
		eng.Name(), lc.Width, lc.Height, lc.ReseedThreshold, lc.Workers, source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var surfaces core.Surfaces

	if cfg.Journal != "" {
		j, err := journal.Open(cfg.Journal, logger)
		if err != nil {
			return err
		}
		defer j.Close()
		logger.Printf("journal %s, run %s", cfg.Journal, j.RunID())
		surfaces = append(surfaces, j)
	}

	if cfg.Listen != "" {
		hub := stream.NewHub(logger)
		go hub.Run(ctx)

		mux := http.NewServeMux()
		mux.Handle("/frames", hub)
		srv := &http.Server{Addr: cfg.Listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Printf("stream: %v", err)
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		logger.Printf("streaming frames on ws://%s/frames", cfg.Listen)
		surfaces = append(surfaces, hub)
	}

	gps := cfg.GPS
	if gps <= 0 {
		gps = 10
	}
	runner := app.NewRunner(eng, surfaces, time.Second/time.Duration(gps), logger)
	runner.SetLimit(cfg.Generations)
	return runner.Run(ctx)
}
