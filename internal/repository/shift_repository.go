package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shiftswap-service/internal/domain"
)

// ShiftRepository handles read access to shift records. Shifts are owned
// by the scheduling system; Create and DeleteAll exist for cmd/seed.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	DeleteAll(ctx context.Context) error
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository instantiates the repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (role, start_time, end_time, colleague_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		shift.Role,
		shift.StartTime,
		shift.EndTime,
		shift.ColleagueID,
	).Scan(&shift.ID, &shift.CreatedAt)
}

func (r *shiftRepository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	const query = `
        SELECT id, role, start_time, end_time, colleague_id, created_at
        FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.Role,
		&shift.StartTime,
		&shift.EndTime,
		&shift.ColleagueID,
		&shift.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM shifts`)
	return err
}
