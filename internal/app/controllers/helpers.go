// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
	"github.com/technova/placement/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, name+" must be a positive integer")
	}
	return id, nil
}

// actorFrom builds the service actor from the request session
func actorFrom(ctx *gin.Context) (services.Actor, error) {
	session, ok := middleware.GetSession(ctx)
	if !ok {
		return services.Actor{}, apperrors.ErrTokenInvalid
	}
	return services.Actor{Subject: session.Subject, Role: session.Role}, nil
}
