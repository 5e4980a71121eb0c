package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxCaller extracts the authenticated caller injected by the Auth
// middleware. A missing user id means the middleware did not run or the
// token carried no subject; either way the request is unauthenticated.
func ctxCaller(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, nil
}

// ctxToken extracts the access token id and expiry for signout.
func ctxToken(c echo.Context) (jti string, expiry time.Time) {
	jti, _ = c.Get("jti").(string)
	expiry, _ = c.Get("exp").(time.Time)
	return jti, expiry
}
