package main

import (
	"fmt"
	"os"

	"github.com/muhammadheryan/verified-commerce/cmd/config"
	_ "github.com/muhammadheryan/verified-commerce/docs"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title VERIFIED COMMERCE API
// @version 1.0
// @description Verified commerce API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "verified-commerce",
	Short:         "Verified commerce API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

// bootstrap loads the configuration and initializes the global logger.
func bootstrap() (*config.Config, error) {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Environment),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("upload_driver", cfg.Upload.Driver),
	)
	return cfg, nil
}
