package asset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository/filestore"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"github.com/muhammadheryan/verified-commerce/utils/metrics"
	"go.uber.org/zap"
)

const keyPrefix = "uploads"

// Manager owns the file side of entity lifecycles. Entity code calls Save
// before persisting a record and Release only after the record no longer
// references the keys.
type Manager interface {
	Validate(files []*model.UploadFile) error
	Save(ctx context.Context, folder string, files []*model.UploadFile) ([]string, error)
	Release(ctx context.Context, keys ...string)
}

type managerImpl struct {
	store       filestore.FileStore
	maxFileSize int64
	allowed     map[string]struct{}
	allowedList string
	now         func() time.Time
}

func NewManager(cfg config.UploadConfig, store filestore.FileStore) Manager {
	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &managerImpl{
		store:       store,
		maxFileSize: cfg.MaxFileSize,
		allowed:     allowed,
		allowedList: strings.Join(cfg.AllowedExtensions, ", "),
		now:         time.Now,
	}
}

func (m *managerImpl) Validate(files []*model.UploadFile) error {
	for _, f := range files {
		if f == nil {
			continue
		}
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if _, ok := m.allowed[ext]; !ok {
			return errors.SetCustomErrorWithDetail(constant.ErrInvalidFileType,
				fmt.Sprintf("%s: allowed types are %s", f.Filename, m.allowedList))
		}
		if m.maxFileSize > 0 && f.Size > m.maxFileSize {
			return errors.SetCustomErrorWithDetail(constant.ErrFileTooLarge,
				fmt.Sprintf("%s exceeds %d bytes", f.Filename, m.maxFileSize))
		}
	}
	return nil
}

func (m *managerImpl) newKey(folder, filename string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%d-%s%s", keyPrefix, folder, m.now().UnixMilli(), random, ext)
}

func (m *managerImpl) Save(ctx context.Context, folder string, files []*model.UploadFile) ([]string, error) {
	if err := m.Validate(files); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, f := range files {
		if f == nil {
			continue
		}
		key := m.newKey(folder, f.Filename)
		if err := m.put(ctx, key, f); err != nil {
			logger.Error("[Asset.Save] err store.Put", zap.String("key", key), zap.String("error", err.Error()))
			m.Release(ctx, keys...)
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		metrics.AssetsStored.WithLabelValues(folder).Inc()
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *managerImpl) put(ctx context.Context, key string, f *model.UploadFile) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	return m.store.Put(ctx, key, r, f.Size, f.ContentType)
}

// Release deletes keys best-effort. Failures leave an orphan file behind and
// are only logged and counted.
func (m *managerImpl) Release(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := m.store.Delete(ctx, key); err != nil {
			metrics.AssetCleanupFailures.Inc()
			logger.Warn("[Asset.Release] err store.Delete", zap.String("key", key), zap.String("error", err.Error()))
		}
	}
}

// Superseded returns the keys of old that are absent from current.
func Superseded(old, current []string) []string {
	keep := make(map[string]struct{}, len(current))
	for _, k := range current {
		keep[k] = struct{}{}
	}
	out := make([]string, 0, len(old))
	for _, k := range old {
		if _, ok := keep[k]; !ok && k != "" {
			out = append(out, k)
		}
	}
	return out
}
