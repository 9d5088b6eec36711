package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// New connects the shared client and pings it. A failed ping leaves Redis
// disabled.
func New(ctx context.Context, cfg config.RedisConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	Use(c)
	return nil
}

// Use installs c as the shared client; nil disables Redis.
func Use(c *redis.Client) {
	client = c
}

// Get returns the shared client, or nil when Redis is disabled.
func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
