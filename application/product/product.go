package product

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/muhammadheryan/verified-commerce/application/asset"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	categoryrepo "github.com/muhammadheryan/verified-commerce/repository/category"
	productrepo "github.com/muhammadheryan/verified-commerce/repository/product"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	Create(ctx context.Context, req *model.CreateProductRequest, cover *model.UploadFile, images []*model.UploadFile) (*model.ProductResponse, error)
	List(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateProductRequest, cover *model.UploadFile, images []*model.UploadFile) (*model.ProductResponse, error)
	Delete(ctx context.Context, id string) (*model.ProductEntity, error)
}

type productAppImpl struct {
	productRepo      productrepo.ProductRepository
	categoryRepo     categoryrepo.CategoryRepository
	assets           asset.Manager
	publisher        rabbitmq.EventPublisher
	maxGalleryImages int
}

func NewProductApp(productRepo productrepo.ProductRepository, categoryRepo categoryrepo.CategoryRepository, assets asset.Manager, publisher rabbitmq.EventPublisher, maxGalleryImages int) ProductApp {
	return &productAppImpl{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		assets:           assets,
		publisher:        publisher,
		maxGalleryImages: maxGalleryImages,
	}
}

func (a *productAppImpl) checkGallery(images []*model.UploadFile) error {
	if a.maxGalleryImages > 0 && len(images) > a.maxGalleryImages {
		return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest,
			fmt.Sprintf("images must contain at most %d files", a.maxGalleryImages))
	}
	return nil
}

func (a *productAppImpl) resolveCategory(ctx context.Context, op, id string) (*model.CategoryEntity, error) {
	category, err := a.categoryRepo.Get(ctx, &model.CategoryFilter{ID: id})
	if err != nil {
		logger.Error("["+op+"] err categoryRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidReference, "category does not exist")
	}
	return category, nil
}

func (a *productAppImpl) Create(ctx context.Context, req *model.CreateProductRequest, cover *model.UploadFile, images []*model.UploadFile) (*model.ProductResponse, error) {
	if cover == nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrImageRequired, "imageCover is required")
	}
	if err := a.checkGallery(images); err != nil {
		return nil, err
	}

	files := append([]*model.UploadFile{cover}, images...)
	if err := a.assets.Validate(files); err != nil {
		return nil, err
	}

	category, err := a.resolveCategory(ctx, "Product.Create", req.CategoryID)
	if err != nil {
		return nil, err
	}

	keys, err := a.assets.Save(ctx, constant.FolderProducts, files)
	if err != nil {
		return nil, err
	}

	product, err := a.productRepo.Create(ctx, &model.ProductEntity{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Model:       strings.TrimSpace(req.Model),
		ImageCover:  keys[0],
		Images:      model.StringList(keys[1:]),
		Stock:       req.Stock,
		CategoryID:  category.ID,
	})
	if err != nil {
		a.assets.Release(ctx, keys...)
		logger.Error("[Product.Create] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	a.publish(ctx, constant.EventProductCreated, product)
	return model.NewProductResponse(product, category), nil
}

// List resolves the category of every product with a single batched lookup.
func (a *productAppImpl) List(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	products, err := a.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Product.List] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categories := map[string]*model.CategoryEntity{}
	if len(products) > 0 {
		ids := make([]string, 0, len(products))
		seen := map[string]struct{}{}
		for _, p := range products {
			if _, ok := seen[p.CategoryID]; ok {
				continue
			}
			seen[p.CategoryID] = struct{}{}
			ids = append(ids, p.CategoryID)
		}

		list, err := a.categoryRepo.List(ctx, &model.CategoryFilter{IDs: ids})
		if err != nil {
			logger.Error("[Product.List] err categoryRepo.List", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		for i := range list {
			categories[list[i].ID] = &list[i]
		}
	}

	resp := &model.ProductListResponse{
		Count:    len(products),
		Products: make([]model.ProductResponse, 0, len(products)),
	}
	for i := range products {
		resp.Products = append(resp.Products, *model.NewProductResponse(&products[i], categories[products[i].CategoryID]))
	}
	return resp, nil
}

func (a *productAppImpl) Update(ctx context.Context, id string, req *model.UpdateProductRequest, cover *model.UploadFile, images []*model.UploadFile) (*model.ProductResponse, error) {
	if err := a.checkGallery(images); err != nil {
		return nil, err
	}
	if req != nil && req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "name must not be empty")
	}

	product, err := a.productRepo.Get(ctx, &model.ProductFilter{ID: id})
	if err != nil {
		logger.Error("[Product.Update] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req == nil {
		req = &model.UpdateProductRequest{}
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if _, err := a.resolveCategory(ctx, "Product.Update", *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Model != nil {
		product.Model = strings.TrimSpace(*req.Model)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	oldKeys := product.Keys()

	files := make([]*model.UploadFile, 0, len(images)+1)
	if cover != nil {
		files = append(files, cover)
	}
	files = append(files, images...)

	var newKeys []string
	if len(files) > 0 {
		newKeys, err = a.assets.Save(ctx, constant.FolderProducts, files)
		if err != nil {
			return nil, err
		}
		rest := newKeys
		if cover != nil {
			product.ImageCover = rest[0]
			rest = rest[1:]
		}
		// a supplied gallery replaces the whole set
		if len(images) > 0 {
			product.Images = model.StringList(rest)
		}
	}

	updated, err := a.productRepo.Update(ctx, product)
	if err != nil {
		if len(newKeys) > 0 {
			a.assets.Release(ctx, newKeys...)
		}
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Product.Update] err productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if stale := asset.Superseded(oldKeys, updated.Keys()); len(stale) > 0 {
		a.assets.Release(ctx, stale...)
	}

	category, err := a.categoryRepo.Get(ctx, &model.CategoryFilter{ID: updated.CategoryID})
	if err != nil {
		// the update is committed; answer without the embedded category
		logger.Error("[Product.Update] err categoryRepo.Get", zap.String("error", err.Error()))
	}

	a.publish(ctx, constant.EventProductUpdated, updated)
	return model.NewProductResponse(updated, category), nil
}

func (a *productAppImpl) Delete(ctx context.Context, id string) (*model.ProductEntity, error) {
	deleted, err := a.productRepo.Delete(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Product.Delete] err productRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if keys := deleted.Keys(); len(keys) > 0 {
		a.assets.Release(ctx, keys...)
	}
	a.publish(ctx, constant.EventProductDeleted, deleted)
	return deleted, nil
}

func (a *productAppImpl) publish(ctx context.Context, name string, payload interface{}) {
	if err := a.publisher.Publish(ctx, rabbitmq.NewEvent(name, payload)); err != nil {
		logger.Warn("[ProductApp] err publisher.Publish", zap.String("event", name), zap.String("error", err.Error()))
	}
}
