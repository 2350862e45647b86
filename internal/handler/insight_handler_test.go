package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/utkarshp579/career-orbit/internal/model"
)

// MockInsightService is a mock implementation of service.InsightService.
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) GetInsightsForUser(ctx context.Context, userID uuid.UUID) (*model.IndustryInsight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryInsight), args.Error(1)
}

func TestInsightHandler_GetInsights_NoToken(t *testing.T) {
	svc := new(MockInsightService)
	h := NewInsightHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/insights", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// no JWT middleware ran, so no "user" key on the context

	err := h.GetInsights(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	// rejected before the service (and therefore the store) is touched
	svc.AssertNotCalled(t, "GetInsightsForUser", mock.Anything, mock.Anything)
}
