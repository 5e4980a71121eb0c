package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// RoleRepository persists role assignments in PostgreSQL.
//
// FindByUserID is the privileged lookup used inside authorization
// checks: a plain single-row read with no caller scoping, so role
// resolution can never re-enter a policy check.
type RoleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByUserID(ctx context.Context, userID string) (*domain.RoleAssignment, error) {
	a := &domain.RoleAssignment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, role, created_at FROM user_roles WHERE user_id = $1`,
		userID,
	).Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find role assignment: %w", err)
	}
	return a, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.RoleAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, role, created_at FROM user_roles ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list role assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.RoleAssignment
	for rows.Next() {
		var a domain.RoleAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role assignments: %w", err)
	}
	return assignments, nil
}

func (r *RoleRepository) UpdateByUserID(ctx context.Context, userID, role string) (*domain.RoleAssignment, error) {
	a := &domain.RoleAssignment{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE user_roles SET role = $1 WHERE user_id = $2
		 RETURNING id, user_id, role, created_at`,
		role, userID,
	).Scan(&a.ID, &a.UserID, &a.Role, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update role assignment: %w", err)
	}
	return a, nil
}

var _ ports.RoleRepository = (*RoleRepository)(nil)
