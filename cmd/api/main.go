package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/callback/postgres"
	rediscache "github.com/marcelsud/callback-inbox/callback/redis"
	"github.com/marcelsud/callback-inbox/config"
	"github.com/marcelsud/callback-inbox/fanout"
	"github.com/marcelsud/callback-inbox/fanout/kafka"
	"github.com/marcelsud/callback-inbox/forward"
	"github.com/marcelsud/callback-inbox/ingest"
	"github.com/marcelsud/callback-inbox/internal/http/chi"
	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/marcelsud/callback-inbox/seed"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main wires every package together and owns the process lifecycle
 * Imports only go one way, down: the application imports the business layers,
 * which import the storage layers
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	logger := httplog.NewLogger("callback-inbox", httplog.Options{
		JSON:     true,
		LogLevel: cfg.LogLevel,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("callback inbox stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	pg, err := postgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close(ctx)
		return err
	}

	var repo callback.Repository = pg
	if cfg.RedisAddr != "" {
		client, err := rediscache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("resolver cache disabled")
		} else {
			repo = rediscache.NewCachedRepository(pg, client, cfg.ResolverCacheTTL(), logger)
		}
	}
	defer repo.Close(context.Background())

	if cfg.SeedFile != "" {
		loader := seed.NewLoader()
		if err := loader.Load(cfg.SeedFile); err != nil {
			return err
		}
		sum, err := loader.Apply(ctx, repo, logger)
		if err != nil {
			return err
		}
		logger.Info().
			Int("applications_created", sum.ApplicationsCreated).
			Int("receivers_created", sum.ReceiversCreated).
			Int("receivers_updated", sum.ReceiversUpdated).
			Int("targets_created", sum.TargetsCreated).
			Msg("seed applied")
	}

	service := callback.NewService(repo)

	// the hub outlives the request context so forwards finishing during shutdown still broadcast
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := fanout.NewHub(logger, 0)
	go hub.Run(hubCtx)
	gateway := fanout.NewGateway(hub, logger)

	sinks := []fanout.Notifier{hub}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		sink := kafka.NewSink(brokers, cfg.KafkaTopic, logger)
		defer sink.Close()
		sinks = append(sinks, sink)
	}
	notifier := fanout.NewNotifiers(logger, sinks...)

	exporter, err := metrics.NewOTelExporter()
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())
	instruments, err := metrics.NewInstruments(exporter.Meter())
	if err != nil {
		return err
	}

	dispatcher := forward.NewDispatcher(service, notifier, logger,
		forward.WithTimeout(cfg.ForwardTimeout()),
		forward.WithInstruments(instruments),
	)
	runner := forward.NewRunner(service, dispatcher, cfg.ForwardWorkers, cfg.ForwardQueueSize, logger)
	runner.Start()

	collector := metrics.NewSystemCollector(hub, runner, service,
		metrics.WithStatsTTL(cfg.StatsCacheTTL()),
	)
	if err := exporter.Observe(collector); err != nil {
		return err
	}

	pipeline := ingest.NewPipeline(service, notifier, runner, instruments, logger)

	r := chi.Handlers(chi.Dependencies{
		Logger:       logger,
		Service:      service,
		Pipeline:     pipeline,
		Forwarder:    dispatcher,
		Collector:    collector,
		Realtime:     gateway.Handler(),
		Metrics:      exporter.ServeHTTP(),
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	srv := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		Addr:              ":" + cfg.Port,
		Handler:           r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	errServer := <-errShutdown

	gateway.Close()

	graceCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()
	if err := runner.Shutdown(graceCtx); err != nil {
		logger.Warn().Err(err).Int("pending", runner.Pending()).Msg("forwards cancelled at shutdown")
	}
	return errServer
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("shutting down server: %w", err)
	}
}
