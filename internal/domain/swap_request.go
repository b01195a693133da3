package domain

import "time"

// SwapStatus enumerates lifecycle states for swap requests.
type SwapStatus string

const (
	SwapStatusPending SwapStatus = "PENDING"
	SwapStatusFailed  SwapStatus = "FAILED"
	// Approved and denied are produced by the external approval workflow,
	// never by this service; they exist so readers can decode stored rows.
	SwapStatusApproved SwapStatus = "APPROVED"
	SwapStatusDenied   SwapStatus = "DENIED"
)

// SwapRequest records one request to have a shift covered. It is created
// exactly once and never mutated here; later status transitions belong to
// the approval workflow.
type SwapRequest struct {
	ID                    int64
	RequestingColleagueID int64
	ShiftID               int64
	Status                SwapStatus
	// RankingMetadata holds the serialized RankingResult for manager
	// auditing, or the literal "{}" when no ranking was available.
	RankingMetadata string
	CreatedAt       time.Time
}
