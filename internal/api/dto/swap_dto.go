package dto

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/shiftswap-service/internal/domain"
)

var validate = validator.New()

// SwapRequestCreate is the POST /api/v1/swaps/request payload.
type SwapRequestCreate struct {
	RequestingUserID int64   `json:"requestingUserId" validate:"required,gt=0"`
	ShiftID          int64   `json:"shiftId" validate:"required,gt=0"`
	OptionalMessage  *string `json:"optionalMessage" validate:"omitempty,max=500"`
}

// Validate checks field constraints and reports the offending fields.
func (r SwapRequestCreate) Validate() (map[string]any, error) {
	err := validate.Struct(r)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return details, err
}

// SwapRequestResponse is the swap operation outcome.
type SwapRequestResponse struct {
	Message      string `json:"message"`
	Status       string `json:"status"`
	TopMatchName string `json:"topMatchName,omitempty"`
	AIReasoning  string `json:"aiReasoning,omitempty"`
}

// SwapRecordResponse is a persisted swap request with its decoded ranking,
// served to audit consumers.
type SwapRecordResponse struct {
	ID               int64                `json:"id"`
	RequestingUserID int64                `json:"requestingUserId"`
	ShiftID          int64                `json:"shiftId"`
	Status           domain.SwapStatus    `json:"status"`
	Ranking          domain.RankingResult `json:"ranking"`
	CreatedAt        time.Time            `json:"createdAt"`
}
