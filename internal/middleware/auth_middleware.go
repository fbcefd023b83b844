package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/auth"
	"github.com/technova/placement/internal/pkg/logger"
	"github.com/technova/placement/internal/pkg/tokenstore"
)

// Context keys set by JWTAuth
const (
	ContextKeySubject   = "subject"
	ContextKeyRole      = "role"
	ContextKeyTokenID   = "tokenID"
	ContextKeyExpiresAt = "expiresAt"
)

// TokenValidator parses and verifies session tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens      TokenValidator
	revocations tokenstore.RevocationStore
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, revocations tokenstore.RevocationStore) *AuthMiddleware {
	if revocations == nil {
		revocations = tokenstore.NopStore{}
	}
	return &AuthMiddleware{
		tokens:      tokens,
		revocations: revocations,
	}
}

// Session is the authenticated caller of a request
type Session struct {
	Subject   string
	Role      models.RoleType
	TokenID   string
	ExpiresAt time.Time
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		revoked, err := m.revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error().Err(err).Str("token_id", claims.ID).Msg("Failed to check token revocation")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}
		if revoked {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
			errorDetail = errorDetail.WithDetails("Token has been revoked")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRole, models.RoleType(claims.Role))
		c.Set(ContextKeyTokenID, claims.ID)
		c.Set(ContextKeyExpiresAt, expiresAt)

		c.Next()
	}
}

// RoleRequired middleware to check the caller holds one of roles
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetSession returns the session JWTAuth stored on the request
func GetSession(c *gin.Context) (Session, bool) {
	subject := c.GetString(ContextKeySubject)
	role, ok := c.Get(ContextKeyRole)
	if subject == "" || !ok {
		return Session{}, false
	}
	roleType, ok := role.(models.RoleType)
	if !ok {
		return Session{}, false
	}
	return Session{
		Subject:   subject,
		Role:      roleType,
		TokenID:   c.GetString(ContextKeyTokenID),
		ExpiresAt: c.GetTime(ContextKeyExpiresAt),
	}, true
}
