package credential

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/verified-commerce/cmd/config"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	cerr "github.com/muhammadheryan/verified-commerce/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

// Service hashes passwords and issues/parses HS256 bearer tokens.
type Service interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
	IssueToken(userID string, role constant.Role) (string, *model.Claims, error)
	ParseToken(token string) (*model.Claims, error)
}

type tokenClaims struct {
	UserID string        `json:"userId"`
	Role   constant.Role `json:"role"`
	jwt.RegisteredClaims
}

type serviceImpl struct {
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

type Option func(*serviceImpl)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

func NewService(cfg config.AuthConfig, opts ...Option) Service {
	s := &serviceImpl{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTExpiration,
		cost:   cfg.BcryptCost,
		now:    time.Now,
	}
	if s.ttl <= 0 {
		s.ttl = 7 * 24 * time.Hour
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *serviceImpl) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *serviceImpl) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *serviceImpl) IssueToken(userID string, role constant.Role) (string, *model.Claims, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &model.Claims{
		UserID:    userID,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *serviceImpl) ParseToken(token string) (*model.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, cerr.SetCustomError(constant.ErrExpiredToken)
		}
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	return &model.Claims{
		UserID:    claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
