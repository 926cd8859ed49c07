package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	kafkabroker "github.com/Egor213/EndpointLog/internal/broker/kafka"
	"github.com/Egor213/EndpointLog/internal/config"
	grpcv1 "github.com/Egor213/EndpointLog/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/EndpointLog/internal/controller/http/v1"
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/Egor213/EndpointLog/pkg/clock"
	errorsUtils "github.com/Egor213/EndpointLog/pkg/errors"
	"github.com/Egor213/EndpointLog/pkg/grpcserver"
	"github.com/Egor213/EndpointLog/pkg/httpserver"
	"github.com/Egor213/EndpointLog/pkg/logger"
	"github.com/Egor213/EndpointLog/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}).Info("Logger has been set up")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repos
	repositories, closeRepos := setupRepositories(ctx, cfg)
	defer closeRepos()

	// Revalidation
	revalidator, closeBroker := setupRevalidator(cfg)
	defer closeBroker()

	// Services
	metricsCnt := metrics.New()
	services := service.NewServices(service.ServicesDependencies{
		Repos:       repositories,
		Counters:    metricsCnt,
		Revalidator: revalidator,
		Clock:       clock.RealClock{},
	})

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(services, metricsCnt), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// HTTP API server
	log.Infof("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	apiServer := httpserver.New(
		httpv1.NewRouter(services, metrics.Middleware("endpointlog")),
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	select {
	case <-ctx.Done():
		log.Info(errorsUtils.WrapPathErr(errors.New("shutdown signal received")))
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(grpcServer, apiServer, metricsServer)
}

func setupRepositories(ctx context.Context, cfg *config.Config) (*repo.Repositories, func()) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		return repo.NewMemoryRepositories(), func() {}
	}

	// Migrations
	if err := Migrate(cfg.PG.URL, cfg.PG.MigrationsPath); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	log.Info("Connected to DB")

	return repo.NewRepositories(pg), pg.Close
}

func setupRevalidator(cfg *config.Config) (revalidate.Revalidator, func()) {
	if !cfg.Kafka.Enabled {
		log.Info("Kafka disabled, view revalidation signals are not published")
		return revalidate.Nop{}, func() {}
	}

	producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})

	revalidator := revalidate.NewBrokerRevalidator(producer, clock.RealClock{})
	closeFn := func() {
		revalidator.Wait()
		if err := producer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	return revalidator, closeFn
}

func shutdownApp(grpcServer *grpcserver.Server, servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, s := range servers {
		if err := s.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	grpcServer.Shutdown()
}
