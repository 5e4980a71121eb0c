package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

type authFixture struct {
	identities *stubIdentityRepo
	profiles   *stubProfileRepo
	roles      *stubRoleRepo
	sessions   *stubSessionStore
	svc        *AuthService
}

func newAuthFixture() *authFixture {
	profiles := newStubProfileRepo()
	roles := newStubRoleRepo()
	identities := newStubIdentityRepo(profiles, roles)
	sessions := newStubSessionStore()
	svc := NewAuthService(
		identities, profiles, NewRoleResolver(roles), sessions,
		"test-secret", 15*time.Minute, 24*time.Hour, discardLogger,
	)
	return &authFixture{
		identities: identities,
		profiles:   profiles,
		roles:      roles,
		sessions:   sessions,
		svc:        svc,
	}
}

func TestAuthService_Signup_AssignsDefaultRole(t *testing.T) {
	f := newAuthFixture()

	who, err := f.svc.Signup(context.Background(), "alice@example.com", "password1", "Alice")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if who.Role != domain.RoleUser {
		t.Fatalf("expected role %q after fresh signup, got %q", domain.RoleUser, who.Role)
	}
	if who.FullName != "Alice" {
		t.Fatalf("unexpected full name: %q", who.FullName)
	}

	identity, err := f.identities.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("identity not stored: %v", err)
	}
	if identity.PasswordHash == "password1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// Profile id mirrors the identity id.
	profile, err := f.profiles.FindByID(context.Background(), identity.ID)
	if err != nil {
		t.Fatalf("profile not stored: %v", err)
	}
	if profile.ID != identity.ID {
		t.Fatalf("profile id %q does not equal identity id %q", profile.ID, identity.ID)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	f := newAuthFixture()

	var ve *domain.ValidationError
	if _, err := f.svc.Signup(context.Background(), "not-an-email", "password1", ""); !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if _, err := f.svc.Signup(context.Background(), "bob@example.com", "short", ""); !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, err := f.svc.Signup(context.Background(), "bob@example.com", "password1", "Bob"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := f.svc.Signup(context.Background(), "bob@example.com", "password2", "Bobby"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Signin_IssuesVerifiableTokens(t *testing.T) {
	f := newAuthFixture()
	_, _ = f.svc.Signup(context.Background(), "carol@example.com", "s3cret-pw", "Carol")

	pair, who, err := f.svc.Signin(context.Background(), "carol@example.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("Signin returned error: %v", err)
	}
	if who.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %q", who.Role)
	}
	if pair.RefreshToken == "" || pair.AccessToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if _, ok := f.sessions.sessions[pair.RefreshToken]; !ok {
		t.Fatalf("refresh session not stored")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("access token does not verify: %v", err)
	}
	if claims["sub"] != who.ID {
		t.Fatalf("token subject %v does not match user id %s", claims["sub"], who.ID)
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
}

func TestAuthService_Signin_UniformDenial(t *testing.T) {
	f := newAuthFixture()
	_, _ = f.svc.Signup(context.Background(), "dave@example.com", "password1", "")

	// Wrong password and unknown email must be indistinguishable.
	if _, _, err := f.svc.Signin(context.Background(), "dave@example.com", "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := f.svc.Signin(context.Background(), "ghost@example.com", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Session_DegradesOnMissingSecondaryRecords(t *testing.T) {
	f := newAuthFixture()

	// No profile, no role row: the call still succeeds with defaults.
	who, err := f.svc.Session(context.Background(), "orphan-id", "orphan@example.com")
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if who.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %q", who.Role)
	}
	if who.FullName != "" {
		t.Fatalf("expected display name omitted, got %q", who.FullName)
	}
	if who.Email != "orphan@example.com" {
		t.Fatalf("unexpected email: %q", who.Email)
	}
}

func TestAuthService_Session_ComposesProfileAndRole(t *testing.T) {
	f := newAuthFixture()
	who, _ := f.svc.Signup(context.Background(), "erin@example.com", "password1", "Erin")
	f.roles.byUserID[who.ID].Role = domain.RoleAdmin

	got, err := f.svc.Session(context.Background(), who.ID, "erin@example.com")
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", got.Role)
	}
	if got.FullName != "Erin" {
		t.Fatalf("expected full name from profile, got %q", got.FullName)
	}
}

func TestAuthService_Signout_InvalidatesCredential(t *testing.T) {
	f := newAuthFixture()
	_, _ = f.svc.Signup(context.Background(), "frank@example.com", "password1", "")
	pair, _, err := f.svc.Signin(context.Background(), "frank@example.com", "password1")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}

	expiry := time.Now().Add(10 * time.Minute)
	if err := f.svc.Signout(context.Background(), pair.RefreshToken, "jti-1", expiry); err != nil {
		t.Fatalf("Signout returned error: %v", err)
	}

	if _, ok := f.sessions.sessions[pair.RefreshToken]; ok {
		t.Fatalf("refresh session still present after signout")
	}
	if !f.sessions.revoked["jti-1"] {
		t.Fatalf("access token id not denylisted")
	}

	if _, err := f.svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected refresh to fail after signout, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	f := newAuthFixture()
	_, _ = f.svc.Signup(context.Background(), "gina@example.com", "password1", "")
	pair, _, err := f.svc.Signin(context.Background(), "gina@example.com", "password1")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}

	next, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}

	// The used token is spent.
	if _, err := f.svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected spent refresh token to be rejected, got %v", err)
	}
	// The new one works.
	if _, err := f.svc.Refresh(context.Background(), next.RefreshToken); err != nil {
		t.Fatalf("rotated refresh token rejected: %v", err)
	}
}
