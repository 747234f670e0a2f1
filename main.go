package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"wayfarer/config"
	"wayfarer/pkg/assistant"
	"wayfarer/pkg/costs"
	"wayfarer/pkg/events"
	"wayfarer/pkg/geocode"
	"wayfarer/pkg/identity"
	"wayfarer/pkg/itinerary"
	"wayfarer/pkg/kafka"
	"wayfarer/pkg/middleware"
	"wayfarer/pkg/redis"
	"wayfarer/pkg/refdata"
	chatroutes "wayfarer/pkg/routes/chat"
	costroutes "wayfarer/pkg/routes/costs"
	"wayfarer/pkg/routes/health"
	itineraryroutes "wayfarer/pkg/routes/itinerary"
	"wayfarer/pkg/session"
	"wayfarer/pkg/tracing"
	"wayfarer/pkg/tripstore"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	shutdownTracing, err := tracing.Init(cfg.AppName, version)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize tracing")
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	tripStore := tripstore.NewClient(tripstore.Config{
		BaseURL: cfg.TripStoreBaseURL,
		APIKey:  cfg.TripStoreAPIKey,
		Timeout: cfg.TripStoreTimeout,
	}, logger)

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to Redis")
		os.Exit(1)
	}
	defer redisClient.Close()

	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
		defer producer.Close()
	}

	var emitter *events.Emitter
	if producer != nil {
		emitter = events.NewEmitter(producer, logger)
	}

	geocache := refdata.NewGeoCache()
	providers := []geocode.Provider{geocode.NewCacheProvider(geocache)}
	if cfg.PlacesAPIKey != "" {
		providers = append(providers, geocode.NewPlacesProvider(geocode.PlacesConfig{
			BaseURL: cfg.PlacesBaseURL,
			APIKey:  cfg.PlacesAPIKey,
		}, logger))
	}
	providers = append(providers, geocode.NewNominatimProvider(geocode.NominatimConfig{
		BaseURL:   cfg.NominatimBaseURL,
		UserAgent: cfg.NominatimUserAgent,
	}, logger))
	chain := geocode.NewChain(providers, geocache, logger)

	itinerarySvc := itinerary.NewService(tripStore, refdata.NewStore(refdata.DefaultEntries()), chain, emitter, logger)
	resolver := identity.NewResolver(logger, identity.DefaultConfig())
	engine := costs.NewEngine(tripStore, resolver, emitter, logger)
	sessions := session.NewStore(redisClient, logger, cfg.SessionTTL)

	var assist *assistant.Assistant
	if cfg.OpenAIAPIKey != "" {
		assist = assistant.New(assistant.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY is not set; chat and research routes are disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))

	api := e.Group("/api/v1")
	itineraryroutes.NewHandler(itinerarySvc, sessions, logger).Register(api.Group("/itinerary"))
	costroutes.NewHandler(engine, assist, sessions, logger).Register(api.Group("/costs"))
	chatroutes.NewHandler(assist, itinerarySvc, sessions, logger).Register(api.Group("/chat"))

	checker := health.NewChecker(redisClient, tripStore, version)
	checker.RegisterRoutes(e)
	checker.SetReady(true)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()
	logger.Infof("%s listening on port %d", cfg.AppName, cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Shutdown complete")
}

func newLogger(cfg config.Config) ectologger.Logger {
	var zapLogger *zap.Logger
	var err error
	if cfg.PrettyLogs {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil)
}
