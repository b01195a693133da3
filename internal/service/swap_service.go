package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/shiftswap-service/internal/domain"
	"github.com/spec-kit/shiftswap-service/internal/events"
	"github.com/spec-kit/shiftswap-service/internal/ranking"
	"github.com/spec-kit/shiftswap-service/internal/repository"
	apperrors "github.com/spec-kit/shiftswap-service/pkg/util"
)

const (
	msgSwapRequested       = "Swap requested successfully."
	msgNoEligibleCandidate = "No eligible colleagues found."

	// topMatchNone is the literal returned when no ranking is available.
	topMatchNone = "None"
)

// SwapService orchestrates one swap-request operation: shift lookup,
// eligibility filtering, AI ranking, persistence, response.
type SwapService struct {
	shifts     repository.ShiftRepository
	colleagues repository.ColleagueRepository
	swaps      repository.SwapRequestRepository
	ranker     ranking.Ranker
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// SwapDependencies bundles collaborators.
type SwapDependencies struct {
	ShiftRepo     repository.ShiftRepository
	ColleagueRepo repository.ColleagueRepository
	SwapRepo      repository.SwapRequestRepository
	Ranker        ranking.Ranker
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// NewSwapService creates the service.
func NewSwapService(deps SwapDependencies) *SwapService {
	return &SwapService{
		shifts:     deps.ShiftRepo,
		colleagues: deps.ColleagueRepo,
		swaps:      deps.SwapRepo,
		ranker:     deps.Ranker,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// RequestSwapInput carries the caller's parameters.
type RequestSwapInput struct {
	RequestingColleagueID int64
	ShiftID               int64
	OptionalMessage       *string
}

// SwapOutcome is the operation result surfaced to the HTTP layer.
type SwapOutcome struct {
	Message      string
	Status       domain.SwapStatus
	TopMatchName string
	AIReasoning  string
}

// RequestSwap runs the swap operation end to end.
//
// Unknown shifts fail with NOT_FOUND and persist nothing. An empty eligible
// set is a business outcome, not an error: status FAILED, no ranking call,
// no record. Otherwise the eligible colleagues are ranked (any ranking
// failure collapses to the empty result and stays invisible to the caller)
// and a PENDING SwapRequest is written with the serialized ranking as its
// audit blob. Only a persistence failure propagates as an error.
func (s *SwapService) RequestSwap(ctx context.Context, input RequestSwapInput) (*SwapOutcome, error) {
	shift, err := s.shifts.GetByID(ctx, input.ShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("shift", map[string]any{"shift_id": input.ShiftID})
		}
		return nil, apperrors.MapError(err)
	}

	pool, err := s.colleagues.ListByRole(ctx, shift.Role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	candidates := EligibleColleagues(shift, input.RequestingColleagueID, pool)
	if len(candidates) == 0 {
		s.publish(ctx, events.EventSwapRejected, shift.ID, events.SwapRejectedPayload{
			RequestingColleagueID: input.RequestingColleagueID,
			Role:                  shift.Role,
		})
		return &SwapOutcome{
			Message: msgNoEligibleCandidate,
			Status:  domain.SwapStatusFailed,
		}, nil
	}

	s.logger.Info("ranking swap candidates",
		zap.Int64("shift_id", shift.ID),
		zap.Int("candidates", len(candidates)))

	result, err := s.ranker.Rank(ctx, ranking.NewRequest(shift, candidates))
	if err != nil {
		// Degrade, never surface: the swap is still recorded, the audit
		// blob stays parseable, and the caller sees the fallback reason.
		s.logger.Warn("ranking unavailable, continuing with empty result", zap.Error(err))
		result = domain.RankingResult{}
	}
	topMatch, reason := result.Top()

	swap := &domain.SwapRequest{
		RequestingColleagueID: input.RequestingColleagueID,
		ShiftID:               input.ShiftID,
		Status:                domain.SwapStatusPending,
		RankingMetadata:       result.AuditBlob(),
	}
	if err := s.swaps.Create(ctx, swap); err != nil {
		return nil, apperrors.MapError(err)
	}

	topMatchName := topMatchNone
	if topMatch != nil {
		topMatchName = topMatch.Name
		s.logger.Info("top match selected",
			zap.Int64("swap_request_id", swap.ID),
			zap.String("name", topMatch.Name),
			zap.Float64("score", topMatch.Score))
	} else {
		s.publish(ctx, events.EventRankingUnavailable, shift.ID, events.RankingUnavailablePayload{
			SwapRequestID: swap.ID,
			Candidates:    len(candidates),
		})
	}

	s.publish(ctx, events.EventSwapRequested, shift.ID, events.SwapRequestedPayload{
		SwapRequestID:         swap.ID,
		RequestingColleagueID: input.RequestingColleagueID,
		TopMatchName:          topMatchName,
		Reason:                reason,
		OptionalMessage:       input.OptionalMessage,
	})

	return &SwapOutcome{
		Message:      msgSwapRequested,
		Status:       domain.SwapStatusPending,
		TopMatchName: topMatchName,
		AIReasoning:  reason,
	}, nil
}

// SwapRecord is a persisted swap request with its decoded audit blob, for
// the approval-workflow and audit consumers.
type SwapRecord struct {
	Request domain.SwapRequest
	Ranking domain.RankingResult
}

// GetSwapRequest loads one persisted swap request by identifier.
func (s *SwapService) GetSwapRequest(ctx context.Context, id int64) (*SwapRecord, error) {
	swap, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("swap request", map[string]any{"swap_request_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	result, err := domain.ParseAuditBlob(swap.RankingMetadata)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &SwapRecord{Request: *swap, Ranking: result}, nil
}

func (s *SwapService) publish(ctx context.Context, eventType events.EventType, shiftID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ShiftID:   shiftID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	_ = s.dispatcher.Publish(ctx, event)
}
