package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenRevoker reports whether an access token id was denylisted by a
// signout. The session store satisfies this.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer JWT and injects its claims into context as
// "user_id", "email", "jti", and "exp". Requests without a valid,
// unrevoked token are rejected with 401.
func Auth(jwtSecret string, revoker TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authenticate(c, jwtSecret, revoker); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// AuthOptional behaves like Auth but lets unauthenticated requests
// through without claims. GET /auth/session uses it: an absent or
// expired credential means "no current identity", not an error.
func AuthOptional(jwtSecret string, revoker TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_ = authenticate(c, jwtSecret, revoker)
			return next(c)
		}
	}
}

func authenticate(c echo.Context, jwtSecret string, revoker TokenRevoker) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	jti, _ := claims["jti"].(string)
	if revoker != nil && jti != "" {
		revoked, err := revoker.IsRevoked(c.Request().Context(), jti)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if revoked {
			return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
		}
	}

	c.Set("user_id", claims["sub"])
	c.Set("email", claims["email"])
	c.Set("jti", jti)
	if exp, ok := claims["exp"].(float64); ok {
		c.Set("exp", time.Unix(int64(exp), 0))
	}

	return nil
}
