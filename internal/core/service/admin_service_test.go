package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

type adminFixture struct {
	profiles *stubProfileRepo
	roles    *stubRoleRepo
	svc      *AdminService
}

func newAdminFixture() *adminFixture {
	profiles := newStubProfileRepo()
	roles := newStubRoleRepo()
	svc := NewAdminService(profiles, roles, NewRoleResolver(roles), discardLogger)
	return &adminFixture{profiles: profiles, roles: roles, svc: svc}
}

func (f *adminFixture) addUser(id, role string) {
	now := time.Now().UTC()
	f.profiles.byID[id] = &domain.Profile{ID: id, Email: id + "@example.com", CreatedAt: now, UpdatedAt: now}
	f.roles.byUserID[id] = &domain.RoleAssignment{ID: "role-" + id, UserID: id, Role: role, CreatedAt: now}
}

func TestAdminService_NonAdminDenied(t *testing.T) {
	f := newAdminFixture()
	f.addUser("alice", domain.RoleUser)
	f.addUser("bob", domain.RoleUser)

	if _, err := f.svc.ListProfiles(context.Background(), "alice"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for ListProfiles, got %v", err)
	}
	if _, err := f.svc.ListRoleAssignments(context.Background(), "alice"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for ListRoleAssignments, got %v", err)
	}
	if _, err := f.svc.UpdateRole(context.Background(), "alice", "bob", domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for UpdateRole, got %v", err)
	}
	if f.roles.byUserID["bob"].Role != domain.RoleUser {
		t.Fatalf("role was changed by a non-admin")
	}
}

func TestAdminService_SelfPromotionImpossible(t *testing.T) {
	f := newAdminFixture()
	f.addUser("alice", domain.RoleUser)

	// The gate checks the caller's CURRENT role row, so writing admin to
	// one's own assignment is rejected before the write.
	if _, err := f.svc.UpdateRole(context.Background(), "alice", "alice", domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if f.roles.byUserID["alice"].Role != domain.RoleUser {
		t.Fatalf("self-promotion succeeded")
	}
}

func TestAdminService_AdminUpdatesRole(t *testing.T) {
	f := newAdminFixture()
	f.addUser("root", domain.RoleAdmin)
	f.addUser("alice", domain.RoleUser)

	updated, err := f.svc.UpdateRole(context.Background(), "root", "alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin || updated.UserID != "alice" {
		t.Fatalf("unexpected assignment: %+v", updated)
	}

	// The promotion takes effect immediately for policy checks.
	if _, err := f.svc.ListProfiles(context.Background(), "alice"); err != nil {
		t.Fatalf("promoted user still denied: %v", err)
	}
}

func TestAdminService_UpdateRole_Validation(t *testing.T) {
	f := newAdminFixture()
	f.addUser("root", domain.RoleAdmin)
	f.addUser("alice", domain.RoleUser)

	var ve *domain.ValidationError
	if _, err := f.svc.UpdateRole(context.Background(), "root", "alice", "superuser"); !errors.As(err, &ve) || ve.Field != "role" {
		t.Fatalf("expected role validation error, got %v", err)
	}
	if _, err := f.svc.UpdateRole(context.Background(), "root", "ghost", domain.RoleUser); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_AdminListsEverything(t *testing.T) {
	f := newAdminFixture()
	f.addUser("root", domain.RoleAdmin)
	f.addUser("alice", domain.RoleUser)
	f.addUser("bob", domain.RoleUser)

	profiles, err := f.svc.ListProfiles(context.Background(), "root")
	if err != nil {
		t.Fatalf("ListProfiles returned error: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}

	roles, err := f.svc.ListRoleAssignments(context.Background(), "root")
	if err != nil {
		t.Fatalf("ListRoleAssignments returned error: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(roles))
	}
}
