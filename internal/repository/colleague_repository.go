package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shiftswap-service/internal/domain"
)

// ColleagueRepository handles read access to colleague records. Hours
// worked are maintained by an external system; this service never updates
// them, so only cmd/seed uses Create.
type ColleagueRepository interface {
	Create(ctx context.Context, colleague *domain.Colleague) error
	ListByRole(ctx context.Context, role string) ([]domain.Colleague, error)
	DeleteAll(ctx context.Context) error
}

type colleagueRepository struct {
	pool *pgxpool.Pool
}

// NewColleagueRepository instantiates the repository.
func NewColleagueRepository(pool *pgxpool.Pool) ColleagueRepository {
	return &colleagueRepository{pool: pool}
}

func (r *colleagueRepository) Create(ctx context.Context, colleague *domain.Colleague) error {
	const query = `
        INSERT INTO colleagues (name, role, hours_worked_last_7d)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		colleague.Name,
		colleague.Role,
		colleague.HoursLast7Days,
	).Scan(&colleague.ID, &colleague.CreatedAt, &colleague.UpdatedAt)
}

func (r *colleagueRepository) ListByRole(ctx context.Context, role string) ([]domain.Colleague, error) {
	const query = `
        SELECT id, name, role, hours_worked_last_7d, created_at, updated_at
        FROM colleagues WHERE role=$1
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Colleague
	for rows.Next() {
		var colleague domain.Colleague
		if err := rows.Scan(
			&colleague.ID,
			&colleague.Name,
			&colleague.Role,
			&colleague.HoursLast7Days,
			&colleague.CreatedAt,
			&colleague.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, colleague)
	}
	return result, rows.Err()
}

func (r *colleagueRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM colleagues`)
	return err
}
