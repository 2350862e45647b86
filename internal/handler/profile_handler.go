package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/service"
)

// ProfileHandler handles onboarding endpoints.
type ProfileHandler struct {
	svc service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// UpdateProfileRequest carries the onboarding form submission.
type UpdateProfileRequest struct {
	Industry   string   `json:"industry" validate:"required"`
	Experience int      `json:"experience" validate:"gte=0,lte=50"`
	Bio        string   `json:"bio" validate:"max=1000"`
	Skills     []string `json:"skills" validate:"dive,required"`
}

// OnboardingStatusResponse reports onboarding completion.
type OnboardingStatusResponse struct {
	IsOnboarded bool `json:"is_onboarded"`
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), userID, service.ProfileInput{
		Industry:   req.Industry,
		Experience: req.Experience,
		Bio:        req.Bio,
		Skills:     req.Skills,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetOnboardingStatus godoc
// @Summary Check whether the authenticated user has completed onboarding
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OnboardingStatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/status [get]
func (h *ProfileHandler) GetOnboardingStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	onboarded, err := h.svc.GetOnboardingStatus(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, OnboardingStatusResponse{IsOnboarded: onboarded})
}
