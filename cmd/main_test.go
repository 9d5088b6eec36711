package main

import (
	"context"
	"testing"

	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/muhammadheryan/verified-commerce/repository/filestore"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore_Local(t *testing.T) {
	cfg := &config.Config{Upload: config.UploadConfig{Driver: config.UploadLocal, LocalDir: t.TempDir()}}

	store, err := newFileStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &filestore.Local{}, store)
}

func TestNewPublisher_DisabledWithoutURL(t *testing.T) {
	publisher, closeFn := newPublisher(&config.Config{})
	defer closeFn()

	assert.Equal(t, rabbitmq.Noop{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), rabbitmq.NewEvent("product.created", nil)))
}

func TestCreateAdminFlags(t *testing.T) {
	for _, name := range []string{"email", "password", "first-name", "last-name", "phone"} {
		assert.NotNil(t, createAdminCmd.Flags().Lookup(name), name)
	}
}
