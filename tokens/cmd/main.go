package main

import (
	"context"
	"net/http"

	"github.com/spf13/viper"

	"github.com/weixuan2008/tele-sales-token-server/internal/config"
	"github.com/weixuan2008/tele-sales-token-server/internal/httputil"
	"github.com/weixuan2008/tele-sales-token-server/internal/log"
	"github.com/weixuan2008/tele-sales-token-server/internal/otel"
	"github.com/weixuan2008/tele-sales-token-server/internal/workflow"
	"github.com/weixuan2008/tele-sales-token-server/tokens"
	"github.com/weixuan2008/tele-sales-token-server/tokens/issuer"
	"github.com/weixuan2008/tele-sales-token-server/tokens/signer"
	"github.com/weixuan2008/tele-sales-token-server/tokens/transport"
)

type Config struct {
	App            config.App      `mapstructure:"app"`
	Http           httputil.Config `mapstructure:"http"`
	Otel           otel.Config     `mapstructure:"otel"`
	AppID          string          `mapstructure:"app_id"`
	AppCertificate string          `mapstructure:"app_certificate"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		// sourced from APP_ID / APP_CERTIFICATE env vars
		v.SetDefault("app_id", "")
		v.SetDefault("app_certificate", "")

		config.Setup(v, "app")
		otel.Setup(v, "otel")
		httputil.Setup(v, "http")

		// override default addr to ease testing
		v.SetDefault("http.addr", "0.0.0.0:8080")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer logger.Sync()

	// global background context
	ctx := context.Background()

	// Initialize OpenTelemetry
	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting Token Server...")

	// App credentials are immutable for the process lifetime; a broken
	// configuration is fatal here, never a per-request condition.
	creds := tokens.Credentials{
		AppID:          config.AppID,
		AppCertificate: config.AppCertificate,
	}
	if err := creds.Validate(); err != nil {
		logger.Fatal("Invalid app credentials", log.Error(err))
	}

	tokenSigner := signer.New(creds)
	tokenIssuer := issuer.New(tokenSigner, logger.Module("Issuer"))

	router := transport.NewRouter(tokenIssuer, logger.Module("Router"))
	server := httputil.NewServer(&config.Http, router.Handler())

	// Start HTTP server in goroutine
	go func() {
		logger.Info("Starting REST API server",
			log.String("addr", config.Http.Addr),
			log.Bool("tls", config.Http.TLS.Enabled))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start REST API server", log.Error(err))
		}
	}()

	// Graceful shutdown
	cleanup := func(ctx context.Context) {
		server.Shutdown(ctx)

		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
