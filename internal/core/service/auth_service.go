package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const minPasswordLen = 8

// AuthService implements signup, signin, signout, refresh, and session
// derivation. Access tokens are HS256 JWTs; refresh tokens are opaque
// and live in the session store until used or signed out.
type AuthService struct {
	identities ports.IdentityRepository
	profiles   ports.ProfileRepository
	roles      ports.RoleResolver
	sessions   ports.SessionStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	identities ports.IdentityRepository,
	profiles ports.ProfileRepository,
	roles ports.RoleResolver,
	sessions ports.SessionStore,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		identities: identities,
		profiles:   profiles,
		roles:      roles,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Signup registers a new identity. The mirrored profile and the default
// "user" role assignment are created in the same transaction.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (*ports.SessionIdentity, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "email", Message: "email must be a valid address"}
	}
	if len(password) < minPasswordLen {
		return nil, &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	profile := &domain.Profile{
		ID:        identity.ID,
		Email:     email,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	role := &domain.RoleAssignment{
		ID:        uuid.NewString(),
		UserID:    identity.ID,
		Role:      domain.RoleUser,
		CreatedAt: now,
	}

	if err := s.identities.CreateWithProfile(ctx, identity, profile, role); err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.logger.Info().Str("user_id", identity.ID).Msg("identity registered")

	return &ports.SessionIdentity{
		ID:       identity.ID,
		Email:    identity.Email,
		FullName: fullName,
		Role:     domain.RoleUser,
	}, nil
}

// Signin verifies credentials and issues a token pair. Unknown email and
// wrong password both surface as ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.TokenPair, *ports.SessionIdentity, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SigninsTotal.WithLabelValues("failed").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		metrics.SigninsTotal.WithLabelValues("failed").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, nil, err
	}

	who, err := s.Session(ctx, identity.ID, identity.Email)
	if err != nil {
		return nil, nil, err
	}

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return pair, who, nil
}

// Signout invalidates the credential: the refresh session is deleted and
// the access token id is denylisted until its natural expiry.
func (s *AuthService) Signout(ctx context.Context, refreshToken, jti string, accessExpiry time.Time) error {
	if refreshToken != "" {
		if err := s.sessions.DeleteSession(ctx, refreshToken); err != nil {
			return err
		}
	}
	if jti != "" {
		remaining := time.Until(accessExpiry)
		if remaining > 0 {
			if err := s.sessions.Revoke(ctx, jti, remaining); err != nil {
				return err
			}
		}
	}
	return nil
}

// Refresh rotates the refresh session and issues a fresh token pair.
// The old refresh token is unusable afterwards.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	userID, err := s.sessions.GetSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	identity, err := s.identities.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.sessions.DeleteSession(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, identity)
}

// Session composes the current identity with its role and profile.
// A missing role row resolves to the default role; a missing profile
// omits the display name. Neither failure aborts the call.
func (s *AuthService) Session(ctx context.Context, userID, email string) (*ports.SessionIdentity, error) {
	who := &ports.SessionIdentity{ID: userID, Email: email, Role: domain.RoleUser}

	role, err := s.roles.ResolveRole(ctx, userID)
	if err == nil {
		who.Role = role
	} else {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("role lookup failed, defaulting to user")
	}

	profile, err := s.profiles.FindByID(ctx, userID)
	if err == nil {
		who.FullName = profile.FullName
		if who.Email == "" {
			who.Email = profile.Email
		}
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("profile lookup failed, omitting display name")
	}

	return who, nil
}

func (s *AuthService) issueTokens(ctx context.Context, identity *domain.Identity) (*ports.TokenPair, error) {
	access, err := s.generateAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refresh, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.sessions.CreateSession(ctx, refresh, identity.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *AuthService) generateAccessToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// generateRefreshToken returns an opaque 256-bit token in hex.
func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
