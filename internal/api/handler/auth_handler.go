package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AuthHandler exposes signup, signin, signout, refresh, and session.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new identity with its profile and default role.
//
// @Summary      Register a new identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	who, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, who)
}

// Signin authenticates a user and issues a token pair.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, who, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, signinResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         who,
	})
}

// Signout invalidates the caller's credential.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	var req signoutRequest
	_ = c.Bind(&req) // body is optional

	jti, expiry := ctxToken(c)
	if err := h.authService.Signout(c.Request().Context(), req.RefreshToken, jti, expiry); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]bool{"signed_out": true})
}

// Refresh rotates the refresh session and issues a new token pair.
//
// @Summary      Refresh the credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, pair)
}

// Session returns the current identity, or null data when there is none.
// Anything short of a valid unrevoked token is "no current identity",
// never an error, so clients can simply redirect to their login flow.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return respond(c, http.StatusOK, nil)
	}
	email, _ := c.Get("email").(string)

	who, err := h.authService.Session(c.Request().Context(), userID, email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, who)
}
