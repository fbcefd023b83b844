package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/technova/placement/internal/pkg/apperrors"
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// Principal identifies the account a session token was issued to.
type Principal struct {
	Subject string // roll number for students, admin name for CDC
	Role    string
}

// Claims defines JWT token content
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed access token and its metadata.
type IssuedToken struct {
	AccessToken string
	TokenID     string
	ExpiresAt   time.Time
	ExpiresIn   int64
}

// GenerateAccessToken signs a session token for p.
func (s *JWTService) GenerateAccessToken(p Principal) (*IssuedToken, error) {
	if p.Subject == "" || p.Role == "" {
		return nil, fmt.Errorf("%w: principal requires subject and role", apperrors.ErrTokenInvalid)
	}

	now := s.now()
	expiry := now.Add(s.config.AccessTokenExp)
	tokenID := uuid.New().String()

	claims := &Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   p.Subject,
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &IssuedToken{
		AccessToken: signed,
		TokenID:     tokenID,
		ExpiresAt:   expiry,
		ExpiresIn:   int64(s.config.AccessTokenExp.Seconds()),
	}, nil
}

// ValidateToken parses tokenString and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	},
		jwt.WithIssuer(s.config.TokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.Role == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", apperrors.ErrInvalidFormat
	}

	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return "", apperrors.ErrInvalidFormat
		}
		return token, nil
	}

	// Raw JWT without the scheme
	if strings.Count(authHeader, ".") == 2 {
		return authHeader, nil
	}

	return "", apperrors.ErrInvalidFormat
}
