package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/calendara/backend/internal/models"
	"github.com/pageza/calendara/backend/internal/types"
	"github.com/pageza/calendara/backend/internal/validation"
)

const (
	tokenTTL     = 24 * time.Hour
	loginCodeTTL = 5 * time.Minute

	loginCodePrefix = "auth_code:"
)

var ErrInvalidToken = errors.New("invalid token")

// CodeStore persists one-time sign-in codes. Redemption is destructive: a
// code read once is gone.
type CodeStore interface {
	SetCode(ctx context.Context, code string, userID uuid.UUID, ttl time.Duration) error
	RedeemCode(ctx context.Context, code string) (uuid.UUID, bool, error)
}

// RedisCodeStore keeps sign-in codes in Redis under a short TTL.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{client: client}
}

func (s *RedisCodeStore) SetCode(ctx context.Context, code string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, loginCodePrefix+code, userID.String(), ttl).Err()
}

func (s *RedisCodeStore) RedeemCode(ctx context.Context, code string) (uuid.UUID, bool, error) {
	val, err := s.client.GetDel(ctx, loginCodePrefix+code).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

// AuthService establishes identity: it issues and validates session tokens
// and exchanges one-time sign-in codes. It never decides what a caller may
// do with a resource.
type AuthService struct {
	db        *gorm.DB
	codes     CodeStore
	jwtSecret string
}

func NewAuthService(db *gorm.DB, codes CodeStore, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		codes:     codes,
		jwtSecret: jwtSecret,
	}
}

// Register creates the account and its profile and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, error) {
	if errs := validation.Profile(&types.UpdateProfileRequest{
		Username: req.Username,
		FullName: req.FullName,
		Timezone: defaultString(req.Timezone, "UTC"),
		Locale:   defaultString(req.Locale, "en"),
	}); len(errs) > 0 {
		return "", invalid(errs)
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return "", conflict("Account already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", unexpected("failed to hash password", err)
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", unexpected("failed to create user", err)
	}

	profile := models.Profile{
		UserID:   user.ID,
		Username: req.Username,
		FullName: req.FullName,
		Timezone: defaultString(req.Timezone, "UTC"),
		Locale:   defaultString(req.Locale, "en"),
	}
	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		// Username uniqueness lives in the storage layer.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", conflict("Username already taken")
		}
		return "", unexpected("failed to create profile", err)
	}

	return s.GenerateToken(user.ID)
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", unauthorized("Invalid credentials")
	}
	return s.GenerateToken(user.ID)
}

// IssueLoginCode stores a one-time sign-in code for the user with a short
// TTL. The browser carries the code to /auth/callback, which redeems it for
// a session cookie; cross-device and hosted-auth hand-offs use this.
func (s *AuthService) IssueLoginCode(ctx context.Context, userID uuid.UUID) (string, error) {
	code := uuid.NewString()
	if err := s.codes.SetCode(ctx, code, userID, loginCodeTTL); err != nil {
		return "", unexpected("failed to store login code", err)
	}
	return code, nil
}

// ExchangeCode redeems a one-time sign-in code for a session token. Codes
// are single use: redemption deletes them.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	userID, ok, err := s.codes.RedeemCode(ctx, code)
	if err != nil {
		return "", unexpected("failed to redeem login code", err)
	}
	if !ok {
		return "", unauthorized("Invalid or expired code")
	}
	return s.GenerateToken(userID)
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", unexpected("failed to sign token", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &types.TokenClaims{UserID: userID}, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
