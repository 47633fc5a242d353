package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// PasswordResetRepository manages password reset token persistence.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type passwordResetRepository struct {
	pool *pgxpool.Pool
}

// NewPasswordResetRepository constructs repository. Without a pool every call
// fails with ErrUnavailable.
func NewPasswordResetRepository(pool *pgxpool.Pool) PasswordResetRepository {
	if pool == nil {
		return unavailablePasswordResetRepository{}
	}
	return &passwordResetRepository{pool: pool}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	const query = `
        INSERT INTO password_reset_tokens (uid, token, expires_at)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		reset.UID,
		reset.Token,
		reset.ExpiresAt,
	).Scan(&reset.ID, &reset.CreatedAt)
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error) {
	const query = `
        SELECT id, uid, token, expires_at, used_at, created_at
        FROM password_reset_tokens WHERE token=$1`
	var reset domain.PasswordReset
	if err := r.pool.QueryRow(ctx, query, token).Scan(
		&reset.ID,
		&reset.UID,
		&reset.Token,
		&reset.ExpiresAt,
		&reset.UsedAt,
		&reset.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reset, nil
}

// MarkUsed redeems the token. A token can be redeemed once; a second call
// reports ErrNotFound.
func (r *passwordResetRepository) MarkUsed(ctx context.Context, id string) error {
	const query = `
        UPDATE password_reset_tokens SET used_at=NOW()
        WHERE id=$1 AND used_at IS NULL`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Release makes a redeemed token usable again, for when the password update
// that followed MarkUsed did not go through.
func (r *passwordResetRepository) Release(ctx context.Context, id string) error {
	const query = `UPDATE password_reset_tokens SET used_at=NULL WHERE id=$1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

type unavailablePasswordResetRepository struct{}

func (unavailablePasswordResetRepository) Create(context.Context, *domain.PasswordReset) error {
	return ErrUnavailable
}

func (unavailablePasswordResetRepository) GetByToken(context.Context, string) (*domain.PasswordReset, error) {
	return nil, ErrUnavailable
}

func (unavailablePasswordResetRepository) MarkUsed(context.Context, string) error {
	return ErrUnavailable
}

func (unavailablePasswordResetRepository) Release(context.Context, string) error {
	return ErrUnavailable
}
