package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/siakadku/siakad-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims extends JWT standard claims with app-specific fields. The
// permission codes of the user's role are minted into the token at
// login; persisted Role records are the source of truth for them.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int      `json:"user_id"`
	RoleID      int      `json:"role_id"`
	Permissions []string `json:"permissions,omitempty"`
}

// AuthService handles authentication, JWT, and the session registry.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a JWT for a staff user with the role's
// permission codes embedded, and registers the session in Redis with
// the same expiry as the token.
func (s *AuthService) GenerateToken(ctx context.Context, userID, roleID int, permissions []string) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID:      userID,
		RoleID:      roleID,
		Permissions: permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	sessionKey := config.CacheKey.UserSessionKey(userID)
	if err := s.rdb.Set(ctx, sessionKey, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and verifies a JWT, returning its claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// CheckSession verifies that the token is still the registered session
// for the user. Logout or a newer login elsewhere invalidates it.
func (s *AuthService) CheckSession(ctx context.Context, claims *Claims) error {
	sessionKey := config.CacheKey.UserSessionKey(claims.UserID)
	stored, err := s.rdb.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return errors.New("session not found")
	}
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if stored != claims.ID {
		return errors.New("session superseded")
	}
	return nil
}

// InvalidateSession removes the user's session registration.
func (s *AuthService) InvalidateSession(ctx context.Context, userID int) error {
	return s.rdb.Del(ctx, config.CacheKey.UserSessionKey(userID)).Err()
}
