package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shiftswap-service/internal/api/dto"
	"github.com/spec-kit/shiftswap-service/internal/service"
	apperrors "github.com/spec-kit/shiftswap-service/pkg/util"
)

// SwapsHandler manages swap request endpoints.
type SwapsHandler struct {
	service *service.SwapService
}

// NewSwapsHandler constructs handler.
func NewSwapsHandler(swapService *service.SwapService) *SwapsHandler {
	return &SwapsHandler{service: swapService}
}

// RequestSwap POST /api/v1/swaps/request.
func (h *SwapsHandler) RequestSwap(c *fiber.Ctx) error {
	var req dto.SwapRequestCreate
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details, err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}

	outcome, err := h.service.RequestSwap(c.UserContext(), service.RequestSwapInput{
		RequestingColleagueID: req.RequestingUserID,
		ShiftID:               req.ShiftID,
		OptionalMessage:       req.OptionalMessage,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SwapRequestResponse{
		Message:      outcome.Message,
		Status:       string(outcome.Status),
		TopMatchName: outcome.TopMatchName,
		AIReasoning:  outcome.AIReasoning,
	})
}

// GetSwap GET /api/v1/swaps/:id.
func (h *SwapsHandler) GetSwap(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("invalid swap request id", nil)
	}
	record, err := h.service.GetSwapRequest(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SwapRecordResponse{
		ID:               record.Request.ID,
		RequestingUserID: record.Request.RequestingColleagueID,
		ShiftID:          record.Request.ShiftID,
		Status:           record.Request.Status,
		Ranking:          record.Ranking,
		CreatedAt:        record.Request.CreatedAt,
	})
}
