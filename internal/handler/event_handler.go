package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/events"
)

// EventHandler exposes the endpoint a message-delivery service calls to
// invoke registered background functions.
type EventHandler struct {
	registry *events.Registry
}

// NewEventHandler creates a new event handler.
func NewEventHandler(registry *events.Registry) *EventHandler {
	return &EventHandler{registry: registry}
}

// EventRequest is one delivered event.
type EventRequest struct {
	Name string          `json:"name" validate:"required"`
	Data json.RawMessage `json:"data"`
}

// ListEvents godoc
// @Summary List registered background functions
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"functions": h.registry.Names(),
	})
}

// HandleEvent godoc
// @Summary Deliver an event to its registered function
// @Tags events
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) HandleEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.registry.Dispatch(c.Request().Context(), req.Name, req.Data); err != nil {
		if errors.Is(err, events.ErrUnknownEvent) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "UNKNOWN_EVENT",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "event handler failed",
			Code:  "EVENT_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
