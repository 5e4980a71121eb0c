package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

const uniqueViolation = "23505"

// IdentityRepository persists authentication identities in PostgreSQL.
type IdentityRepository struct {
	db *sql.DB
}

func NewIdentityRepository(db *sql.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// CreateWithProfile inserts the identity, its mirrored profile, and the
// default role assignment in one transaction. A duplicate email maps to
// domain.ErrEmailTaken.
func (r *IdentityRepository) CreateWithProfile(ctx context.Context, identity *domain.Identity, profile *domain.Profile, role *domain.RoleAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO identities (id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)`,
		identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert identity: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (id, email, full_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		profile.ID, profile.Email, profile.FullName, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_roles (id, user_id, role, created_at)
		 VALUES ($1, $2, $3, $4)`,
		role.ID, role.UserID, role.Role, role.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert role assignment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identity := &domain.Identity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM identities WHERE email = $1`,
		email,
	).Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find identity by email: %w", err)
	}
	return identity, nil
}

func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	identity := &domain.Identity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM identities WHERE id = $1`,
		id,
	).Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find identity by id: %w", err)
	}
	return identity, nil
}

var _ ports.IdentityRepository = (*IdentityRepository)(nil)
