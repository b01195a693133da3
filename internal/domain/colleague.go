package domain

import "time"

// Colleague models an employee who can own shifts and cover swaps.
// Records are maintained by an external HR system (and cmd/seed in
// development); this service only reads them.
type Colleague struct {
	ID             int64
	Name           string
	Role           string
	HoursLast7Days int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
