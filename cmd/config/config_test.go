package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("UPLOAD_DRIVER", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "")
	t.Setenv("UPLOAD_MAX_GALLERY_IMAGES", "")
	t.Setenv("APP_BASE_PATH", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, DatabaseMongo, cfg.Database.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, int64(20*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, []string{".jpeg", ".jpg", ".png", ".webp"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, int64(20*1024*1024*12), cfg.MaxRequestBody())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("JWT_EXPIRATION", "1h")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "PNG, .gif ,")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, DatabaseMySQL, cfg.Database.Driver)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, []string{".png", ".gif"}, cfg.Upload.AllowedExtensions)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: "JWT_SECRET is required"},
		{name: "bad driver", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: `unsupported DB_DRIVER "postgres"`},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Upload.Driver = UploadS3 }, wantErr: "S3_BUCKET is required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Auth:     AuthConfig{JWTSecret: "secret"},
				Database: DatabaseConfig{Driver: DatabaseMongo},
				Upload:   UploadConfig{Driver: UploadLocal},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 3306, Name: "shop"}}
	assert.Equal(t, "u:p@tcp(db:3306)/shop?parseTime=true&loc=UTC", cfg.GetDSN())
}
