package category

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/muhammadheryan/verified-commerce/application/asset"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	categoryrepo "github.com/muhammadheryan/verified-commerce/repository/category"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.uber.org/zap"
)

const duplicateNameDetail = "category name already exists"

type CategoryApp interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest, image *model.UploadFile) (*model.CategoryEntity, error)
	List(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryListResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest, image *model.UploadFile) (*model.CategoryEntity, error)
	Delete(ctx context.Context, id string) (*model.CategoryEntity, error)
}

type categoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
	assets       asset.Manager
	publisher    rabbitmq.EventPublisher
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository, assets asset.Manager, publisher rabbitmq.EventPublisher) CategoryApp {
	return &categoryAppImpl{
		categoryRepo: categoryRepo,
		assets:       assets,
		publisher:    publisher,
	}
}

// nameTaken reports whether another category already uses name exactly.
func (a *categoryAppImpl) nameTaken(ctx context.Context, name, exceptID string) (bool, error) {
	candidates, err := a.categoryRepo.List(ctx, &model.CategoryFilter{Name: name})
	if err != nil {
		return false, err
	}
	for _, c := range candidates {
		if c.Name == name && c.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (a *categoryAppImpl) Create(ctx context.Context, req *model.CreateCategoryRequest, image *model.UploadFile) (*model.CategoryEntity, error) {
	if image == nil {
		return nil, errors.SetCustomError(constant.ErrImageRequired)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "name is required")
	}
	if err := a.assets.Validate([]*model.UploadFile{image}); err != nil {
		return nil, err
	}

	taken, err := a.nameTaken(ctx, name, "")
	if err != nil {
		logger.Error("[Category.Create] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if taken {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, duplicateNameDetail)
	}

	keys, err := a.assets.Save(ctx, constant.FolderCategories, []*model.UploadFile{image})
	if err != nil {
		return nil, err
	}

	category, err := a.categoryRepo.Create(ctx, &model.CategoryEntity{
		Name:  name,
		Image: keys[0],
	})
	if err != nil {
		a.assets.Release(ctx, keys...)
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, duplicateNameDetail)
		}
		logger.Error("[Category.Create] err categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	a.publish(ctx, constant.EventCategoryCreated, category)
	return category, nil
}

func (a *categoryAppImpl) List(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryListResponse, error) {
	categories, err := a.categoryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Category.List] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.CategoryListResponse{
		Count:      len(categories),
		Categories: categories,
	}, nil
}

func (a *categoryAppImpl) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest, image *model.UploadFile) (*model.CategoryEntity, error) {
	category, err := a.categoryRepo.Get(ctx, &model.CategoryFilter{ID: id})
	if err != nil {
		logger.Error("[Category.Update] err categoryRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req != nil && req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "name must not be empty")
		}
		if name != category.Name {
			taken, err := a.nameTaken(ctx, name, category.ID)
			if err != nil {
				logger.Error("[Category.Update] err categoryRepo.List", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			if taken {
				return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, duplicateNameDetail)
			}
			category.Name = name
		}
	}

	oldImage := category.Image
	var newKeys []string
	if image != nil {
		newKeys, err = a.assets.Save(ctx, constant.FolderCategories, []*model.UploadFile{image})
		if err != nil {
			return nil, err
		}
		category.Image = newKeys[0]
	}

	updated, err := a.categoryRepo.Update(ctx, category)
	if err != nil {
		if len(newKeys) > 0 {
			a.assets.Release(ctx, newKeys...)
		}
		switch {
		case stderrors.Is(err, repository.ErrNotFound):
			return nil, errors.SetCustomError(constant.ErrNotFound)
		case stderrors.Is(err, repository.ErrDuplicate):
			return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, duplicateNameDetail)
		}
		logger.Error("[Category.Update] err categoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the record now points at the new file, so the old one can go
	if image != nil {
		a.assets.Release(ctx, oldImage)
	}

	a.publish(ctx, constant.EventCategoryUpdated, updated)
	return updated, nil
}

func (a *categoryAppImpl) Delete(ctx context.Context, id string) (*model.CategoryEntity, error) {
	deleted, err := a.categoryRepo.Delete(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Category.Delete] err categoryRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	a.assets.Release(ctx, deleted.Image)
	a.publish(ctx, constant.EventCategoryDeleted, deleted)
	return deleted, nil
}

func (a *categoryAppImpl) publish(ctx context.Context, name string, payload interface{}) {
	if err := a.publisher.Publish(ctx, rabbitmq.NewEvent(name, payload)); err != nil {
		logger.Warn("[CategoryApp] err publisher.Publish", zap.String("event", name), zap.String("error", err.Error()))
	}
}
