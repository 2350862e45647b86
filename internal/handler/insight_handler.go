package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/service"
)

// InsightHandler serves the dashboard's industry insight data.
type InsightHandler struct {
	svc service.InsightService
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(svc service.InsightService) *InsightHandler {
	return &InsightHandler{svc: svc}
}

// GetInsights godoc
// @Summary Get industry insights for the authenticated user
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.IndustryInsight
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	insight, err := h.svc.GetInsightsForUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, insight)
}
