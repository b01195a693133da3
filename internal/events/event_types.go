package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSwapRequested      EventType = "swap_requested"
	EventSwapRejected       EventType = "swap_rejected"
	EventRankingUnavailable EventType = "ranking_unavailable"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ShiftID   int64       `json:"shift_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SwapRequestedPayload payload.
type SwapRequestedPayload struct {
	SwapRequestID         int64   `json:"swap_request_id"`
	RequestingColleagueID int64   `json:"requesting_colleague_id"`
	TopMatchName          string  `json:"top_match_name"`
	Reason                string  `json:"reason"`
	OptionalMessage       *string `json:"optional_message,omitempty"`
}

// SwapRejectedPayload payload, emitted when no colleague is eligible.
type SwapRejectedPayload struct {
	RequestingColleagueID int64  `json:"requesting_colleague_id"`
	Role                  string `json:"role"`
}

// RankingUnavailablePayload payload, emitted when a swap was recorded with
// a degraded ranking.
type RankingUnavailablePayload struct {
	SwapRequestID int64 `json:"swap_request_id"`
	Candidates    int   `json:"candidates"`
}
