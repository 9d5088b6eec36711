// Package database opens the configured backend and builds the repositories
// on top of it.
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/verified-commerce/cmd/config"
	categoryrepo "github.com/muhammadheryan/verified-commerce/repository/category"
	"github.com/muhammadheryan/verified-commerce/repository/mongostore"
	productrepo "github.com/muhammadheryan/verified-commerce/repository/product"
	"github.com/muhammadheryan/verified-commerce/repository/sqlstore"
	userrepo "github.com/muhammadheryan/verified-commerce/repository/user"
	verificationrepo "github.com/muhammadheryan/verified-commerce/repository/verification"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type Repositories struct {
	Users         userrepo.UserRepository
	Categories    categoryrepo.CategoryRepository
	Products      productrepo.ProductRepository
	Verifications verificationrepo.VerificationRepository

	close func() error
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open connects to the backend named by cfg.Database.Driver. MySQL schemas are
// migrated when migrate is set.
func Open(ctx context.Context, cfg *config.Config, migrate bool) (*Repositories, error) {
	switch cfg.Database.Driver {
	case config.DatabaseMongo:
		client, db, err := ConnectMongo(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:         userrepo.NewMongoUserRepository(db),
			Categories:    categoryrepo.NewMongoCategoryRepository(db),
			Products:      productrepo.NewMongoProductRepository(db),
			Verifications: verificationrepo.NewMongoVerificationRepository(db),
			close: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return client.Disconnect(ctx)
			},
		}, nil
	case config.DatabaseMySQL:
		db, err := ConnectMySQL(cfg)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := sqlstore.Migrate(ctx, db.DB, config.DatabaseMySQL); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return &Repositories{
			Users:         userrepo.NewUserRepository(db),
			Categories:    categoryrepo.NewCategoryRepository(db),
			Products:      productrepo.NewProductRepository(db),
			Verifications: verificationrepo.NewVerificationRepository(db),
			close:         db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// ConnectMongo connects, pings and ensures the indexes. Index failures are
// logged only; the unique indexes are re-attempted on the next start.
func ConnectMongo(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.MongoName)
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		logger.Warn("err ensure mongo indexes", zap.String("error", err.Error()))
	}
	return client, db, nil
}

func ConnectMySQL(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	return db, nil
}
