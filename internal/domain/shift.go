package domain

import "time"

// Shift is a scheduled work interval tied to a role and an owning colleague.
// EndTime is always after StartTime (enforced by the schema).
type Shift struct {
	ID          int64
	Role        string
	StartTime   time.Time
	EndTime     time.Time
	ColleagueID int64
	CreatedAt   time.Time
}
