package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AdminService implements the admin-gated cross-user surface. The gate
// resolves the caller's CURRENT role row on every call: the JWT claim
// and the proposed role value play no part in the check, which is what
// makes self-promotion by direct write impossible.
type AdminService struct {
	profiles ports.ProfileRepository
	roles    ports.RoleRepository
	resolver ports.RoleResolver
	logger   zerolog.Logger
}

func NewAdminService(
	profiles ports.ProfileRepository,
	roles ports.RoleRepository,
	resolver ports.RoleResolver,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{profiles: profiles, roles: roles, resolver: resolver, logger: logger}
}

// ListProfiles returns every profile. Admin only.
func (s *AdminService) ListProfiles(ctx context.Context, callerID string) ([]domain.Profile, error) {
	if err := s.requireAdmin(ctx, callerID, "profile"); err != nil {
		return nil, err
	}
	return s.profiles.List(ctx)
}

// ListRoleAssignments returns every role assignment. Admin only.
func (s *AdminService) ListRoleAssignments(ctx context.Context, callerID string) ([]domain.RoleAssignment, error) {
	if err := s.requireAdmin(ctx, callerID, "role"); err != nil {
		return nil, err
	}
	return s.roles.List(ctx)
}

// UpdateRole sets targetUserID's role. Admin only; the role value must
// belong to the closed enumeration.
func (s *AdminService) UpdateRole(ctx context.Context, callerID, targetUserID, role string) (*domain.RoleAssignment, error) {
	if err := s.requireAdmin(ctx, callerID, "role"); err != nil {
		return nil, err
	}
	if !domain.ValidRole(role) {
		return nil, &domain.ValidationError{Field: "role", Message: "role must be one of: user, admin"}
	}

	updated, err := s.roles.UpdateByUserID(ctx, targetUserID, role)
	if err != nil {
		return nil, err
	}

	metrics.RoleChangesTotal.WithLabelValues(role).Inc()
	s.logger.Info().
		Str("actor_id", callerID).
		Str("user_id", targetUserID).
		Str("role", role).
		Msg("role assignment updated")
	return updated, nil
}

func (s *AdminService) requireAdmin(ctx context.Context, callerID, resource string) error {
	role, err := s.resolver.ResolveRole(ctx, callerID)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin {
		metrics.PolicyDenialsTotal.WithLabelValues(resource, "not_admin").Inc()
		return domain.ErrForbidden
	}
	return nil
}
