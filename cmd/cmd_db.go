package main

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/verified-commerce/application/credential"
	userapp "github.com/muhammadheryan/verified-commerce/application/user"
	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/muhammadheryan/verified-commerce/cmd/database"
	"github.com/muhammadheryan/verified-commerce/model"
	redisRepo "github.com/muhammadheryan/verified-commerce/repository/redis"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	validatorx "github.com/muhammadheryan/verified-commerce/utils/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQL schema (mysql) or ensure the indexes (mongo)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		repos, err := database.Open(ctx, cfg, true)
		if err != nil {
			return err
		}
		defer func() {
			_ = repos.Close()
		}()

		logger.Info("Database schema up to date", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

var adminFlags model.SignupRequest

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account, or promote an existing one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validatorx.ValidateStruct(&adminFlags); err != nil {
			return fmt.Errorf("invalid admin: %v", validatorx.Messages(err))
		}

		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		admin, err := createAdmin(ctx, cfg, &adminFlags)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s (%s) ready\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.Email, "email", "", "admin email")
	f.StringVar(&adminFlags.Password, "password", "", "admin password (min 6 characters)")
	f.StringVar(&adminFlags.FirstName, "first-name", "Admin", "first name")
	f.StringVar(&adminFlags.LastName, "last-name", "User", "last name")
	f.StringVar(&adminFlags.Phone, "phone", "", "phone number")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func createAdmin(ctx context.Context, cfg *config.Config, req *model.SignupRequest) (*model.UserEntity, error) {
	repos, err := database.Open(ctx, cfg, true)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = repos.Close()
	}()

	app := userapp.NewUserApp(repos.Users, redisRepo.NewRepository(), credential.NewService(cfg.Auth), rabbitmq.Noop{})
	return app.CreateAdmin(ctx, req)
}
