package service

import (
	"context"
	"sort"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror
// the scoping behaviour of the real Postgres queries: owner filters are
// applied inside the stub, not by the calling test.
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	byID    map[string]*domain.Profile
	findErr error // if set, FindByID returns this error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type stubRoleRepo struct {
	byUserID map[string]*domain.RoleAssignment
	findErr  error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byUserID: make(map[string]*domain.RoleAssignment)}
}

func (r *stubRoleRepo) FindByUserID(_ context.Context, userID string) (*domain.RoleAssignment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.RoleAssignment, error) {
	var out []domain.RoleAssignment
	for _, a := range r.byUserID {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRoleRepo) UpdateByUserID(_ context.Context, userID, role string) (*domain.RoleAssignment, error) {
	a, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	a.Role = role
	clone := *a
	return &clone, nil
}

type stubIdentityRepo struct {
	byEmail  map[string]*domain.Identity
	profiles *stubProfileRepo
	roles    *stubRoleRepo
}

func newStubIdentityRepo(profiles *stubProfileRepo, roles *stubRoleRepo) *stubIdentityRepo {
	return &stubIdentityRepo{
		byEmail:  make(map[string]*domain.Identity),
		profiles: profiles,
		roles:    roles,
	}
}

func (r *stubIdentityRepo) CreateWithProfile(_ context.Context, identity *domain.Identity, profile *domain.Profile, role *domain.RoleAssignment) error {
	if _, exists := r.byEmail[identity.Email]; exists {
		return domain.ErrEmailTaken
	}
	idClone := *identity
	r.byEmail[identity.Email] = &idClone
	if r.profiles != nil {
		pClone := *profile
		r.profiles.byID[profile.ID] = &pClone
	}
	if r.roles != nil {
		roleClone := *role
		r.roles.byUserID[role.UserID] = &roleClone
	}
	return nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *identity
	return &clone, nil
}

func (r *stubIdentityRepo) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	for _, identity := range r.byEmail {
		if identity.ID == id {
			clone := *identity
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubTaskRepo struct {
	byID      map[string]*domain.Task
	createErr error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *task
	r.byID[task.ID] = &clone
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, taskID, ownerID string) (*domain.Task, error) {
	task, ok := r.byID[taskID]
	if !ok || task.UserID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range r.byID {
		if task.UserID == ownerID {
			out = append(out, *task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	existing, ok := r.byID[task.ID]
	if !ok || existing.UserID != task.UserID {
		return domain.ErrTaskNotFound
	}
	clone := *task
	r.byID[task.ID] = &clone
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, taskID, ownerID string) error {
	task, ok := r.byID[taskID]
	if !ok || task.UserID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.byID, taskID)
	return nil
}

type stubSessionStore struct {
	sessions map[string]string
	revoked  map[string]bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		sessions: make(map[string]string),
		revoked:  make(map[string]bool),
	}
}

func (s *stubSessionStore) CreateSession(_ context.Context, refreshToken, userID string, _ time.Duration) error {
	s.sessions[refreshToken] = userID
	return nil
}

func (s *stubSessionStore) GetSession(_ context.Context, refreshToken string) (string, error) {
	userID, ok := s.sessions[refreshToken]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return userID, nil
}

func (s *stubSessionStore) DeleteSession(_ context.Context, refreshToken string) error {
	delete(s.sessions, refreshToken)
	return nil
}

func (s *stubSessionStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.revoked[jti] = true
	return nil
}

func (s *stubSessionStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}
