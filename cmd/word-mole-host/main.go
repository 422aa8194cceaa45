// Command word-mole-host serves the game to browser pages over a websocket
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

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/word-mole/config"
	"github.com/lixenwraith/word-mole/core"
	"github.com/lixenwraith/word-mole/engine"
	"github.com/lixenwraith/word-mole/hostapi"
	"github.com/lixenwraith/word-mole/status"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML settings file")
	envFlag    = flag.String("env", ".env", "Path to a dotenv file, ignored when missing")
	addrFlag   = flag.String("addr", "", "Listen address, overrides host.addr")
	logFlag    = flag.Bool("logfile", false, "Write logs to logs/word-mole-host.log instead of stderr")
)

const shutdownTimeout = 5 * time.Second

func main() {
	flag.Parse()

	if *logFlag {
		if logFile := core.SetupLogging("word-mole-host", true); logFile != nil {
			defer logFile.Close()
		}
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		log.Fatalf("host: config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Host.Addr = *addrFlag
	}

	bank, err := cfg.WordBank()
	if err != nil {
		log.Fatalf("host: word bank: %v", err)
	}

	// Browser pages have square pixels
	srv := hostapi.NewServer(bank, cfg.RoundConfig(1), status.NewRegistry(), engine.NewMonotonicTimeProvider(), cfg.Seed)
	httpSrv := &http.Server{
		Addr:              cfg.Host.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("host: listening on %s", cfg.Host.Addr)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Printf("host: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		// Websocket sessions are hijacked and outlive httpSrv.Shutdown
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("host: serve: %v", err)
	}
	srv.Wait()
}
