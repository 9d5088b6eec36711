package verification

import (
	"context"

	"github.com/muhammadheryan/verified-commerce/application/asset"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	productrepo "github.com/muhammadheryan/verified-commerce/repository/product"
	userrepo "github.com/muhammadheryan/verified-commerce/repository/user"
	verificationrepo "github.com/muhammadheryan/verified-commerce/repository/verification"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.uber.org/zap"
)

type VerificationApp interface {
	Create(ctx context.Context, userID string, req *model.CreateVerificationRequest, image *model.UploadFile) (*model.VerificationResponse, error)
	List(ctx context.Context, filter *model.VerificationFilter) (*model.VerificationListResponse, error)
	ListMine(ctx context.Context, userID string) (*model.VerificationListResponse, error)
}

type verificationAppImpl struct {
	verificationRepo verificationrepo.VerificationRepository
	userRepo         userrepo.UserRepository
	productRepo      productrepo.ProductRepository
	assets           asset.Manager
	publisher        rabbitmq.EventPublisher
}

func NewVerificationApp(verificationRepo verificationrepo.VerificationRepository, userRepo userrepo.UserRepository, productRepo productrepo.ProductRepository, assets asset.Manager, publisher rabbitmq.EventPublisher) VerificationApp {
	return &verificationAppImpl{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		assets:           assets,
		publisher:        publisher,
	}
}

// Create records that userID verified a product. Repeated verifications of
// the same product are kept as separate records.
func (a *verificationAppImpl) Create(ctx context.Context, userID string, req *model.CreateVerificationRequest, image *model.UploadFile) (*model.VerificationResponse, error) {
	if image != nil {
		if err := a.assets.Validate([]*model.UploadFile{image}); err != nil {
			return nil, err
		}
	}

	user, err := a.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Verification.Create] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	product, err := a.productRepo.Get(ctx, &model.ProductFilter{ID: req.ProductID})
	if err != nil {
		logger.Error("[Verification.Create] err productRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidReference, "product does not exist")
	}

	var keys []string
	if image != nil {
		keys, err = a.assets.Save(ctx, constant.FolderVerifications, []*model.UploadFile{image})
		if err != nil {
			return nil, err
		}
	}

	entity := &model.VerificationEntity{
		UserID:    user.ID,
		ProductID: product.ID,
		Phone:     user.Phone,
	}
	if len(keys) > 0 {
		entity.Image = keys[0]
	}

	created, err := a.verificationRepo.Create(ctx, entity)
	if err != nil {
		if len(keys) > 0 {
			a.assets.Release(ctx, keys...)
		}
		logger.Error("[Verification.Create] err verificationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := a.publisher.Publish(ctx, rabbitmq.NewEvent(constant.EventVerificationCreated, created)); err != nil {
		logger.Warn("[Verification.Create] err publisher.Publish", zap.String("error", err.Error()))
	}

	return model.NewVerificationResponse(created, model.NewUserSummary(user), product), nil
}

func (a *verificationAppImpl) List(ctx context.Context, filter *model.VerificationFilter) (*model.VerificationListResponse, error) {
	verifications, err := a.verificationRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Verification.List] err verificationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return a.populate(ctx, verifications)
}

func (a *verificationAppImpl) ListMine(ctx context.Context, userID string) (*model.VerificationListResponse, error) {
	return a.List(ctx, &model.VerificationFilter{UserID: userID})
}

// populate resolves users and products with one batched lookup each.
func (a *verificationAppImpl) populate(ctx context.Context, verifications []model.VerificationEntity) (*model.VerificationListResponse, error) {
	resp := &model.VerificationListResponse{
		Count:         len(verifications),
		Verifications: make([]model.VerificationResponse, 0, len(verifications)),
	}
	if len(verifications) == 0 {
		return resp, nil
	}

	userIDs := make([]string, 0, len(verifications))
	productIDs := make([]string, 0, len(verifications))
	seenUsers := map[string]struct{}{}
	seenProducts := map[string]struct{}{}
	for _, v := range verifications {
		if _, ok := seenUsers[v.UserID]; !ok {
			seenUsers[v.UserID] = struct{}{}
			userIDs = append(userIDs, v.UserID)
		}
		if _, ok := seenProducts[v.ProductID]; !ok {
			seenProducts[v.ProductID] = struct{}{}
			productIDs = append(productIDs, v.ProductID)
		}
	}

	users, err := a.userRepo.List(ctx, &model.UserFilter{IDs: userIDs})
	if err != nil {
		logger.Error("[Verification.List] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	products, err := a.productRepo.List(ctx, &model.ProductFilter{IDs: productIDs})
	if err != nil {
		logger.Error("[Verification.List] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	usersByID := make(map[string]*model.UserSummary, len(users))
	for i := range users {
		usersByID[users[i].ID] = model.NewUserSummary(&users[i])
	}
	productsByID := make(map[string]*model.ProductEntity, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	for i := range verifications {
		v := &verifications[i]
		resp.Verifications = append(resp.Verifications, *model.NewVerificationResponse(v, usersByID[v.UserID], productsByID[v.ProductID]))
	}
	return resp, nil
}
