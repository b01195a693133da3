// Package ranking shapes requests for the external AI ranking service,
// validates its responses, and degrades to an empty result when the
// service is unavailable. The actual ranking decision is delegated to the
// external model and is not re-verified here.
package ranking

import (
	"context"
	"time"

	"github.com/spec-kit/shiftswap-service/internal/domain"
)

// Ranker orders swap candidates for a shift. Implementations return an
// error for transport or schema failures; callers are expected to collapse
// any error into the empty result rather than surfacing it.
type Ranker interface {
	Rank(ctx context.Context, req Request) (domain.RankingResult, error)
}

// ShiftDetails describes the shift to be covered.
type ShiftDetails struct {
	Role  string `json:"role"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Candidate is one eligible colleague as presented to the ranking service.
type Candidate struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	HoursLast7Days int    `json:"hours_last_7d"`
}

// Request is a ranking-request payload: the shift descriptor plus the
// literal candidate list, in caller order. No filtering or reordering
// happens here.
type Request struct {
	Shift      ShiftDetails
	Candidates []Candidate
}

// NewRequest builds the payload from domain records. Callers must not pass
// an empty candidate list; the orchestrator short-circuits before ranking.
func NewRequest(shift *domain.Shift, candidates []domain.Colleague) Request {
	req := Request{
		Shift: ShiftDetails{
			Role:  shift.Role,
			Start: shift.StartTime.Format(time.RFC3339),
			End:   shift.EndTime.Format(time.RFC3339),
		},
		Candidates: make([]Candidate, 0, len(candidates)),
	}
	for _, c := range candidates {
		req.Candidates = append(req.Candidates, Candidate{
			ID:             c.ID,
			Name:           c.Name,
			HoursLast7Days: c.HoursLast7Days,
		})
	}
	return req
}
