package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/present/rest/presenter"
	"github.com/yamori/recipebook/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// IdentifyRequester resolves an optional bearer token and stores the user ID
// on the request context. A missing or invalid token is not an error here;
// RequireUser decides whether anonymous access is acceptable.
func (s *AuthMiddleware) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyRequester")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		if authHeader != "" {
			authType, token, ok := strings.Cut(authHeader, " ")
			if ok && authType == "Bearer" {
				userID, err := s.auth.Authenticate(ctx, token)
				if err != nil {
					span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyRequester: authenticate failed"))
				} else {
					ctx = context.WithValue(ctx, domain.RequesterIDCtxKey, userID)
					span.SetAttributes(attribute.Int64("RequesterId", userID))
				}
			}
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireUser rejects requests that carry no resolved identity before any
// handler logic runs.
func (s *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Request().Context().Value(domain.RequesterIDCtxKey).(int64); !ok {
			return presenter.Unauthorized(c, "authentication required")
		}
		return next(c)
	}
}
