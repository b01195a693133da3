package service

import "github.com/spec-kit/shiftswap-service/internal/domain"

// EligibleColleagues selects the candidates allowed to cover a shift: same
// role as the shift, not the requester. Input order is preserved. This is
// the only eligibility rule; time-slot overlap, availability windows and
// consent are out of scope.
func EligibleColleagues(shift *domain.Shift, requesterID int64, pool []domain.Colleague) []domain.Colleague {
	eligible := make([]domain.Colleague, 0, len(pool))
	for _, colleague := range pool {
		if colleague.Role != shift.Role {
			continue
		}
		if colleague.ID == requesterID {
			continue
		}
		eligible = append(eligible, colleague)
	}
	return eligible
}
