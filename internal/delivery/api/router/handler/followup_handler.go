package handler

import (
	"net/http"
	"time"

	"hyperlocal/internal/delivery/api/response"
	"hyperlocal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FollowUpHandler triggers follow-up scans on demand. Only mounted with test routes.
type FollowUpHandler struct {
	followUpUC usecase.FollowUpUsecase
}

// NewFollowUpHandler creates a new FollowUpHandler instance
func NewFollowUpHandler(followUpUC usecase.FollowUpUsecase) *FollowUpHandler {
	return &FollowUpHandler{followUpUC: followUpUC}
}

// RunScan runs one scan cycle at the current time
func (h *FollowUpHandler) RunScan(c echo.Context) error {
	report, err := h.followUpUC.RunScan(c.Request().Context(), time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
