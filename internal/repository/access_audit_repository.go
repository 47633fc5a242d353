package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
)

// AccessAuditRepository persists rejected requests in Postgres.
type AccessAuditRepository interface {
	Create(ctx context.Context, denial *domain.AccessDenial) error
	ListRecent(ctx context.Context, limit int) ([]domain.AccessDenial, error)
}

type accessAuditRepository struct {
	pool *pgxpool.Pool
}

// NewAccessAuditRepository returns a Postgres-backed implementation. Without a
// pool denials are dropped and listing reports ErrUnavailable.
func NewAccessAuditRepository(pool *pgxpool.Pool) AccessAuditRepository {
	if pool == nil {
		return unavailableAccessAuditRepository{}
	}
	return &accessAuditRepository{pool: pool}
}

func (r *accessAuditRepository) Create(ctx context.Context, denial *domain.AccessDenial) error {
	const query = `
        INSERT INTO access_audit (id, reason, status, method, path, principal_id, remote_ip, occurred_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query,
		denial.ID,
		denial.Reason,
		denial.Status,
		denial.Method,
		denial.Path,
		denial.PrincipalID,
		denial.RemoteIP,
		denial.OccurredAt,
	)
	return err
}

func (r *accessAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AccessDenial, error) {
	limit = clampAuditLimit(limit)
	const query = `
        SELECT id, reason, status, method, path, principal_id, remote_ip, occurred_at
        FROM access_audit ORDER BY occurred_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.AccessDenial, 0, limit)
	for rows.Next() {
		var d domain.AccessDenial
		if err := rows.Scan(&d.ID, &d.Reason, &d.Status, &d.Method, &d.Path, &d.PrincipalID, &d.RemoteIP, &d.OccurredAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

type unavailableAccessAuditRepository struct{}

func (unavailableAccessAuditRepository) Create(context.Context, *domain.AccessDenial) error {
	return nil
}

func (unavailableAccessAuditRepository) ListRecent(context.Context, int) ([]domain.AccessDenial, error) {
	return nil, ErrUnavailable
}

// clampAuditLimit applies the default of 100 rows and the ceiling of 500.
func clampAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return 100
	case limit > 500:
		return 500
	}
	return limit
}
