package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/korylprince/mians-chat/httpapi"
	"github.com/korylprince/mians-chat/relay"
)

//newProvider returns the relay.Provider selected by config
func newProvider(ctx context.Context, config *Config) (relay.Provider, error) {
	switch config.Provider {
	case ProviderOpenAI:
		return relay.NewOpenAIProvider(config.APIKey, config.Endpoint), nil
	case ProviderGemini:
		return relay.NewGeminiProvider(ctx, config.APIKey, config.Endpoint)
	default:
		return relay.NewCohereClient(config.Endpoint, config.APIKey), nil
	}
}

//newLogger returns a production logger, at debug level if debug is set
func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	logger, err := newLogger(config.Debug)
	if err != nil {
		log.Fatalln("Could not create logger:", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, config)
	if err != nil {
		logger.Fatal("Could not create provider", zap.String("provider", config.Provider), zap.Error(err))
	}

	rl := relay.New(provider, config.Model, relay.WithAltBrand(config.AltBrand), relay.WithLogger(logger))

	r := httpapi.NewRouter(os.Stdout, rl, logger, &httpapi.Config{Prefix: config.Prefix, AltBrand: config.AltBrand})

	chain := handlers.CompressHandler(http.StripPrefix(config.Prefix, r))
	chain = handlers.RecoveryHandler(handlers.RecoveryLogger(zap.NewStdLog(logger)), handlers.PrintRecoveryStack(config.Debug))(chain)

	srv := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           chain,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening",
			zap.String("addr", config.ListenAddr),
			zap.String("provider", provider.Name()),
			zap.String("model", config.Model),
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
