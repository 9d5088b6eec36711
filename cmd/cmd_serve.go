package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadheryan/verified-commerce/application/asset"
	categoryapp "github.com/muhammadheryan/verified-commerce/application/category"
	"github.com/muhammadheryan/verified-commerce/application/credential"
	productapp "github.com/muhammadheryan/verified-commerce/application/product"
	userapp "github.com/muhammadheryan/verified-commerce/application/user"
	verificationapp "github.com/muhammadheryan/verified-commerce/application/verification"
	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/muhammadheryan/verified-commerce/cmd/database"
	redisclient "github.com/muhammadheryan/verified-commerce/cmd/redis"
	"github.com/muhammadheryan/verified-commerce/repository/filestore"
	redisRepo "github.com/muhammadheryan/verified-commerce/repository/redis"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/transport"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := database.Open(ctx, cfg, true)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		_ = repos.Close()
	}()

	// Redis only backs logout; without it tokens live until they expire.
	if cfg.Redis.Enabled {
		if err := redisclient.New(ctx, cfg.Redis); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	files, err := newFileStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	// Initialize application layers
	assets := asset.NewManager(cfg.Upload, files)
	credentials := credential.NewService(cfg.Auth)

	rh := &transport.RestHandler{
		UserApp:         userapp.NewUserApp(repos.Users, redisRepo.NewRepository(), credentials, publisher),
		CategoryApp:     categoryapp.NewCategoryApp(repos.Categories, assets, publisher),
		ProductApp:      productapp.NewProductApp(repos.Products, repos.Categories, assets, publisher, cfg.Upload.MaxGalleryImages),
		VerificationApp: verificationapp.NewVerificationApp(repos.Verifications, repos.Users, repos.Products, assets, publisher),
		Files:           files,
	}

	server := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: transport.NewTransport(rh, transport.Options{
			BasePath:       cfg.BasePath,
			MaxRequestBody: cfg.MaxRequestBody(),
			MetricsToken:   cfg.Server.MetricsToken,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newFileStore(ctx context.Context, cfg *config.Config) (filestore.FileStore, error) {
	switch cfg.Upload.Driver {
	case config.UploadS3:
		return filestore.NewS3(ctx, cfg.S3)
	case config.UploadMinIO:
		store, err := filestore.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return filestore.NewLocal(cfg.Upload.LocalDir), nil
	}
}

// newPublisher falls back to a no-op publisher when RabbitMQ is not
// configured or unreachable.
func newPublisher(cfg *config.Config) (rabbitmq.EventPublisher, func()) {
	if cfg.RabbitMQ.URL == "" {
		return rabbitmq.Noop{}, func() {}
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Warn("err connect rabbitmq, domain events disabled", zap.String("error", err.Error()))
		return rabbitmq.Noop{}, func() {}
	}
	return publisher, func() {
		_ = publisher.Close()
	}
}
