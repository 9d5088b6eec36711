package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/verified-commerce/application/user"
	"github.com/muhammadheryan/verified-commerce/constant"
	credentialmocks "github.com/muhammadheryan/verified-commerce/mocks/application/credential"
	redismocks "github.com/muhammadheryan/verified-commerce/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/verified-commerce/mocks/repository/user"
	rabbitmqmocks "github.com/muhammadheryan/verified-commerce/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	"github.com/muhammadheryan/verified-commerce/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	userRepo    *usermocks.UserRepository
	redisRepo   *redismocks.RedisRepository
	credentials *credentialmocks.Service
	publisher   *rabbitmqmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:    usermocks.NewUserRepository(t),
		redisRepo:   redismocks.NewRedisRepository(t),
		credentials: credentialmocks.NewService(t),
		publisher:   rabbitmqmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.userRepo, f.redisRepo, f.credentials, f.publisher)
}

func assertErrCode(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) bool {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return false
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
	return true
}

func TestUserApp_Signup(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.SignupRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.SignupResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email normalized and role user",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Email:     "  Jane@Example.COM ",
					Password:  "secret1",
					FirstName: "Jane",
					LastName:  "Doe",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).
					Return(nil, nil).
					Once()

				f.credentials.On("HashPassword", "secret1").Return("hashed", nil).Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "jane@example.com" &&
							ent.PasswordHash == "hashed" &&
							ent.Role == constant.RoleUser
					})).
					Return(&model.UserEntity{
						ID:           "u1",
						Email:        "jane@example.com",
						PasswordHash: "hashed",
						FirstName:    "Jane",
						LastName:     "Doe",
						Role:         constant.RoleUser,
					}, nil).
					Once()

				f.credentials.On("IssueToken", "u1", constant.RoleUser).Return("token-1", &model.Claims{}, nil).Once()

				f.publisher.
					On("Publish", mock.Anything, mock.MatchedBy(func(e rabbitmq.Event) bool {
						return e.Name == constant.EventUserRegistered
					})).
					Return(nil).
					Once()
			},
			want: &model.SignupResponse{
				Token: "token-1",
				User: &model.UserSummary{
					ID:        "u1",
					Email:     "jane@example.com",
					FirstName: "Jane",
					LastName:  "Doe",
					Role:      constant.RoleUser,
				},
			},
		},
		{
			name: "success: publish failure does not fail signup",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Email: "a@b.co", Password: "secret1", FirstName: "A", LastName: "B"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@b.co"}).Return(nil, nil).Once()
				f.credentials.On("HashPassword", "secret1").Return("hashed", nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(&model.UserEntity{ID: "u2", Email: "a@b.co", FirstName: "A", LastName: "B", Role: constant.RoleUser}, nil).
					Once()
				f.credentials.On("IssueToken", "u2", constant.RoleUser).Return("token-2", &model.Claims{}, nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			want: &model.SignupResponse{
				Token: "token-2",
				User:  &model.UserSummary{ID: "u2", Email: "a@b.co", FirstName: "A", LastName: "B", Role: constant.RoleUser},
			},
		},
		{
			name: "error: email already exists",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Email: "taken@example.com", Password: "secret1", FirstName: "A", LastName: "B"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).
					Return(&model.UserEntity{ID: "u9", Email: "taken@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
		{
			name: "error: unique index race maps to duplicate",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Email: "race@example.com", Password: "secret1", FirstName: "A", LastName: "B"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "race@example.com"}).Return(nil, nil).Once()
				f.credentials.On("HashPassword", "secret1").Return("hashed", nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, repository.ErrDuplicate).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
		{
			name: "error: repository Get returns error",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Email: "a@b.co", Password: "secret1", FirstName: "A", LastName: "B"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@b.co"}).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Email: "a@b.co", Password: "secret1", FirstName: "A", LastName: "B"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@b.co"}).Return(nil, nil).Once()
				f.credentials.On("HashPassword", "secret1").Return("hashed", nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Signup(tt.args.ctx, tt.args.req)
			if assertErrCode(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Signup() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	stored := &model.UserEntity{
		ID:           "u1",
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         constant.RoleAdmin,
	}

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: returns token and role",
			req:  &model.LoginRequest{Email: "Jane@Example.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(stored, nil).Once()
				f.credentials.On("VerifyPassword", "secret1", "hashed").Return(true).Once()
				f.credentials.On("IssueToken", "u1", constant.RoleAdmin).Return("token-1", &model.Claims{}, nil).Once()
			},
			want: &model.LoginResponse{
				Token: "token-1",
				Role:  constant.RoleAdmin,
				User:  model.NewUserSummary(stored),
			},
		},
		{
			name: "error: unknown email",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: wrong password issues no token",
			req:  &model.LoginRequest{Email: "jane@example.com", Password: "wrong"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(stored, nil).Once()
				f.credentials.On("VerifyPassword", "wrong", "hashed").Return(false).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: repository failure",
			req:  &model.LoginRequest{Email: "jane@example.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Login(context.Background(), tt.req)
			if assertErrCode(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	claims := &model.Claims{UserID: "u1", Role: constant.RoleUser, TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.Claims
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.credentials.On("ParseToken", "tok").Return(claims, nil).Once()
				f.redisRepo.On("IsTokenRevoked", mock.Anything, "jti-1").Return(false, nil).Once()
			},
			want: claims,
		},
		{
			name: "error: expired token passes through",
			mockCall: func(f fields) {
				f.credentials.On("ParseToken", "tok").Return(nil, cerr.SetCustomError(constant.ErrExpiredToken)).Once()
			},
			wantErr: true,
			errCode: constant.ErrExpiredToken,
		},
		{
			name: "error: revoked token",
			mockCall: func(f fields) {
				f.credentials.On("ParseToken", "tok").Return(claims, nil).Once()
				f.redisRepo.On("IsTokenRevoked", mock.Anything, "jti-1").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
		{
			name: "error: revocation store failure",
			mockCall: func(f fields) {
				f.credentials.On("ParseToken", "tok").Return(claims, nil).Once()
				f.redisRepo.On("IsTokenRevoked", mock.Anything, "jti-1").Return(false, errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ValidateToken(context.Background(), "tok")
			if assertErrCode(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if got != tt.want {
				t.Fatalf("ValidateToken() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	f := newFields(t)
	claims := &model.Claims{UserID: "u1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	f.redisRepo.
		On("RevokeToken", mock.Anything, "jti-1", mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 59*time.Minute && ttl <= time.Hour
		})).
		Return(nil).
		Once()

	if err := f.app().Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	f2 := newFields(t)
	f2.redisRepo.On("RevokeToken", mock.Anything, "jti-1", mock.Anything).Return(errors.New("redis down")).Once()
	err := f2.app().Logout(context.Background(), claims)
	assertErrCode(t, err, true, constant.ErrInternal)

	err = newFields(t).app().Logout(context.Background(), nil)
	assertErrCode(t, err, true, constant.ErrUnauthorize)
}

func TestUserApp_UpdateUser(t *testing.T) {
	newPassword := "newsecret"
	newEmail := "New@Example.com"
	takenEmail := "taken@example.com"
	admin := constant.RoleAdmin

	existing := func() *model.UserEntity {
		return &model.UserEntity{ID: "u1", Email: "old@example.com", PasswordHash: "old-hash", FirstName: "A", LastName: "B", Role: constant.RoleUser}
	}

	tests := []struct {
		name     string
		req      *model.UpdateUserRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email, password and role",
			req:  &model.UpdateUserRequest{Email: &newEmail, Password: &newPassword, Role: &admin},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "u1"}).Return(existing(), nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@example.com"}).Return(nil, nil).Once()
				f.credentials.On("HashPassword", "newsecret").Return("new-hash", nil).Once()
				f.userRepo.
					On("Update", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
						return u.Email == "new@example.com" && u.PasswordHash == "new-hash" && u.Role == constant.RoleAdmin
					})).
					Return(&model.UserEntity{ID: "u1"}, nil).
					Once()
			},
		},
		{
			name: "error: user missing",
			req:  &model.UpdateUserRequest{},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "u1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: email taken",
			req:  &model.UpdateUserRequest{Email: &takenEmail},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "u1"}).Return(existing(), nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).Return(&model.UserEntity{ID: "u2"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicate,
		},
		{
			name: "error: deleted between read and write",
			req:  &model.UpdateUserRequest{},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "u1"}).Return(existing(), nil).Once()
				f.userRepo.On("Update", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := f.app().UpdateUser(context.Background(), "u1", tt.req)
			assertErrCode(t, err, tt.wantErr, tt.errCode)
		})
	}
}

func TestUserApp_DeleteUser(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Delete", mock.Anything, "u1").Return(&model.UserEntity{ID: "u1"}, nil).Once()
	f.userRepo.On("Delete", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

	got, err := f.app().DeleteUser(context.Background(), "u1")
	if err != nil || got.ID != "u1" {
		t.Fatalf("DeleteUser() = %+v, %v", got, err)
	}

	_, err = f.app().DeleteUser(context.Background(), "missing")
	assertErrCode(t, err, true, constant.ErrNotFound)
}

func TestUserApp_MeAndList(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "u1"}).Return(&model.UserEntity{ID: "u1"}, nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "gone"}).Return(nil, nil).Once()
	f.userRepo.
		On("List", mock.Anything, &model.UserFilter{Email: "a@b.co", Role: constant.RoleAdmin}).
		Return([]model.UserEntity{{ID: "u1"}, {ID: "u2"}}, nil).
		Once()

	me, err := f.app().Me(context.Background(), "u1")
	if err != nil || me.ID != "u1" {
		t.Fatalf("Me() = %+v, %v", me, err)
	}

	_, err = f.app().Me(context.Background(), "gone")
	assertErrCode(t, err, true, constant.ErrNotFound)

	list, err := f.app().ListUsers(context.Background(), &model.UserFilter{Email: " A@B.co ", Role: constant.RoleAdmin})
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("ListUsers() count = %d, want 2", list.Count)
	}
}

func TestUserApp_CreateAdmin(t *testing.T) {
	req := &model.SignupRequest{Email: "root@example.com", Password: "secret1", FirstName: "Root", LastName: "Admin"}

	t.Run("creates new admin", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "root@example.com"}).Return(nil, nil).Once()
		f.credentials.On("HashPassword", "secret1").Return("hashed", nil).Once()
		f.userRepo.
			On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool { return u.Role == constant.RoleAdmin })).
			Return(&model.UserEntity{ID: "a1", Role: constant.RoleAdmin}, nil).
			Once()

		got, err := f.app().CreateAdmin(context.Background(), req)
		if err != nil || got.Role != constant.RoleAdmin {
			t.Fatalf("CreateAdmin() = %+v, %v", got, err)
		}
	})

	t.Run("promotes existing user", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "root@example.com"}).
			Return(&model.UserEntity{ID: "u1", Role: constant.RoleUser}, nil).
			Once()
		f.userRepo.
			On("Update", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool { return u.ID == "u1" && u.Role == constant.RoleAdmin })).
			Return(&model.UserEntity{ID: "u1", Role: constant.RoleAdmin}, nil).
			Once()

		got, err := f.app().CreateAdmin(context.Background(), req)
		if err != nil || got.Role != constant.RoleAdmin {
			t.Fatalf("CreateAdmin() = %+v, %v", got, err)
		}
	})
}
