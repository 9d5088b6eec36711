package user

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/verified-commerce/application/credential"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	redisrepo "github.com/muhammadheryan/verified-commerce/repository/redis"
	userrepo "github.com/muhammadheryan/verified-commerce/repository/user"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, claims *model.Claims) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Claims, error)
	Me(ctx context.Context, userID string) (*model.UserEntity, error)
	ListUsers(ctx context.Context, filter *model.UserFilter) (*model.UserListResponse, error)
	UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, id string) (*model.UserEntity, error)
	CreateAdmin(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error)
}

type UserAppImpl struct {
	userRepo    userrepo.UserRepository
	redisRepo   redisrepo.Repository
	credentials credential.Service
	publisher   rabbitmq.EventPublisher
	now         func() time.Time
}

func NewUserApp(userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, credentials credential.Service, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		userRepo:    userRepo,
		redisRepo:   redisRepo,
		credentials: credentials,
		publisher:   publisher,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, "email is already registered")
	}

	hash, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Signup] err credentials.HashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         constant.RoleUser,
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, "email is already registered")
		}
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, _, err := s.credentials.IssueToken(user.ID, user.Role)
	if err != nil {
		logger.Error("[Signup] err credentials.IssueToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.EventUserRegistered, model.NewUserSummary(user))

	return &model.SignupResponse{
		Token: token,
		User:  model.NewUserSummary(user),
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email and wrong password are indistinguishable to the caller
	if user == nil || !s.credentials.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token, _, err := s.credentials.IssueToken(user.ID, user.Role)
	if err != nil {
		logger.Error("[Login] err credentials.IssueToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token: token,
		Role:  user.Role,
		User:  model.NewUserSummary(user),
	}, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *UserAppImpl) Logout(ctx context.Context, claims *model.Claims) error {
	if claims == nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if err := s.redisRepo.RevokeToken(ctx, claims.TokenID, ttl); err != nil {
		logger.Error("[Logout] err redisRepo.RevokeToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Claims, error) {
	claims, err := s.credentials.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.redisRepo.IsTokenRevoked(ctx, claims.TokenID)
	if err != nil {
		logger.Error("[ValidateToken] err redisRepo.IsTokenRevoked", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if revoked {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	return claims, nil
}

func (s *UserAppImpl) Me(ctx context.Context, userID string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Me] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context, filter *model.UserFilter) (*model.UserListResponse, error) {
	if filter == nil {
		filter = &model.UserFilter{}
	}
	filter.Email = normalizeEmail(filter.Email)

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserListResponse{
		Count: len(users),
		Users: users,
	}, nil
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			other, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
			if err != nil {
				logger.Error("[UpdateUser] err userRepo.Get email", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			if other != nil {
				return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, "email is already registered")
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := s.credentials.HashPassword(*req.Password)
		if err != nil {
			logger.Error("[UpdateUser] err credentials.HashPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = hash
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		switch {
		case stderrors.Is(err, repository.ErrNotFound):
			return nil, errors.SetCustomError(constant.ErrNotFound)
		case stderrors.Is(err, repository.ErrDuplicate):
			return nil, errors.SetCustomErrorWithDetail(constant.ErrDuplicate, "email is already registered")
		}
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, id string) (*model.UserEntity, error) {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return deleted, nil
}

// CreateAdmin registers an admin account, or promotes the existing account
// with the same email.
func (s *UserAppImpl) CreateAdmin(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[CreateAdmin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		if existingUser.Role == constant.RoleAdmin {
			return existingUser, nil
		}
		existingUser.Role = constant.RoleAdmin
		updated, err := s.userRepo.Update(ctx, existingUser)
		if err != nil {
			logger.Error("[CreateAdmin] err userRepo.Update", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return updated, nil
	}

	hash, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		logger.Error("[CreateAdmin] err credentials.HashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	admin, err := s.userRepo.Create(ctx, &model.UserEntity{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         constant.RoleAdmin,
	})
	if err != nil {
		logger.Error("[CreateAdmin] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return admin, nil
}

func (s *UserAppImpl) publish(ctx context.Context, name string, payload interface{}) {
	if err := s.publisher.Publish(ctx, rabbitmq.NewEvent(name, payload)); err != nil {
		logger.Warn("[UserApp] err publisher.Publish", zap.String("event", name), zap.String("error", err.Error()))
	}
}
