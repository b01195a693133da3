package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shiftswap-service/internal/domain"
)

// SwapRequestRepository persists swap request records. Create is a single
// INSERT so the record is visible in full or not at all; later status
// transitions belong to the external approval workflow, not this service.
type SwapRequestRepository interface {
	Create(ctx context.Context, request *domain.SwapRequest) error
	GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error)
}

type swapRequestRepository struct {
	pool *pgxpool.Pool
}

// NewSwapRequestRepository instantiates the repository.
func NewSwapRequestRepository(pool *pgxpool.Pool) SwapRequestRepository {
	return &swapRequestRepository{pool: pool}
}

func (r *swapRequestRepository) Create(ctx context.Context, request *domain.SwapRequest) error {
	const query = `
        INSERT INTO swap_requests (requesting_colleague_id, shift_id, status, ai_ranking_metadata)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		request.RequestingColleagueID,
		request.ShiftID,
		request.Status,
		request.RankingMetadata,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *swapRequestRepository) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	const query = `
        SELECT id, requesting_colleague_id, shift_id, status, ai_ranking_metadata, created_at
        FROM swap_requests WHERE id=$1`

	var request domain.SwapRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.RequestingColleagueID,
		&request.ShiftID,
		&request.Status,
		&request.RankingMetadata,
		&request.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}
