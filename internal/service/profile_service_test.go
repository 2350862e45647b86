package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/model"
)

func TestProfileService_UpdateProfile_NewIndustryCreatesPlaceholder(t *testing.T) {
	users := new(MockUserRepository)
	txUsers := new(MockUserRepository)
	txInsights := new(MockInsightRepository)
	tx := &stubTransactor{users: txUsers, insights: txInsights}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	existing := &model.User{ID: userID, Email: "test@example.com"}
	input := ProfileInput{
		Industry:   "Quantum Computing",
		Experience: 4,
		Bio:        "Qubit wrangler",
		Skills:     []string{"Go", "Linear Algebra"},
	}
	placeholder := &model.IndustryInsight{
		ID:            uuid.New(),
		Industry:      "Quantum Computing",
		SalaryRanges:  model.SalaryRangeList{},
		DemandLevel:   model.DemandMedium,
		MarketOutlook: model.OutlookNeutral,
		NextUpdate:    time.Now().Add(7 * 24 * time.Hour),
	}
	industry := "Quantum Computing"
	updated := &model.User{ID: userID, Email: "test@example.com", Industry: &industry, Experience: 4}

	users.On("FindByID", mock.Anything, userID).Return(existing, nil).Once()
	txInsights.On("FindByIndustry", mock.Anything, "Quantum Computing").Return(nil, gorm.ErrRecordNotFound)
	txInsights.On("CreatePlaceholder", mock.Anything, "Quantum Computing").Return(placeholder, nil).Once()
	txUsers.On("UpdateProfile", mock.Anything, userID, "Quantum Computing", 4, "Qubit wrangler",
		model.StringList{"Go", "Linear Algebra"}).Return(nil).Once()
	users.On("FindByID", mock.Anything, userID).Return(updated, nil).Once()

	got, err := svc.UpdateProfile(context.Background(), userID, input)

	assert.NoError(t, err)
	assert.Equal(t, "Quantum Computing", *got.Industry)
	txInsights.AssertNumberOfCalls(t, "CreatePlaceholder", 1)
	txUsers.AssertExpectations(t)
}

func TestProfileService_UpdateProfile_ExistingIndustrySkipsPlaceholder(t *testing.T) {
	users := new(MockUserRepository)
	txUsers := new(MockUserRepository)
	txInsights := new(MockInsightRepository)
	tx := &stubTransactor{users: txUsers, insights: txInsights}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	existing := &model.User{ID: userID}
	row := &model.IndustryInsight{ID: uuid.New(), Industry: "Fintech"}

	users.On("FindByID", mock.Anything, userID).Return(existing, nil)
	txInsights.On("FindByIndustry", mock.Anything, "Fintech").Return(row, nil)
	txUsers.On("UpdateProfile", mock.Anything, userID, "Fintech", 2, "", model.StringList(nil)).Return(nil)

	_, err := svc.UpdateProfile(context.Background(), userID, ProfileInput{Industry: "Fintech", Experience: 2})

	assert.NoError(t, err)
	txInsights.AssertNotCalled(t, "CreatePlaceholder", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_PlaceholderRaceIsBenign(t *testing.T) {
	users := new(MockUserRepository)
	txUsers := new(MockUserRepository)
	txInsights := new(MockInsightRepository)
	tx := &stubTransactor{users: txUsers, insights: txInsights}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	txInsights.On("FindByIndustry", mock.Anything, "Gaming").Return(nil, gorm.ErrRecordNotFound)
	txInsights.On("CreatePlaceholder", mock.Anything, "Gaming").Return(nil, apperrors.ErrIndustryExists)
	txUsers.On("UpdateProfile", mock.Anything, userID, "Gaming", 0, "", model.StringList(nil)).Return(nil)

	_, err := svc.UpdateProfile(context.Background(), userID, ProfileInput{Industry: "Gaming"})

	assert.NoError(t, err)
	txUsers.AssertExpectations(t)
}

func TestProfileService_UpdateProfile_UserWriteFailureRollsBack(t *testing.T) {
	users := new(MockUserRepository)
	txUsers := new(MockUserRepository)
	txInsights := new(MockInsightRepository)
	tx := &stubTransactor{users: txUsers, insights: txInsights}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	placeholder := &model.IndustryInsight{ID: uuid.New(), Industry: "EdTech"}

	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	txInsights.On("FindByIndustry", mock.Anything, "EdTech").Return(nil, gorm.ErrRecordNotFound)
	txInsights.On("CreatePlaceholder", mock.Anything, "EdTech").Return(placeholder, nil)
	txUsers.On("UpdateProfile", mock.Anything, userID, "EdTech", 0, "", model.StringList(nil)).
		Return(errors.New("deadlock"))

	_, err := svc.UpdateProfile(context.Background(), userID, ProfileInput{Industry: "EdTech"})

	// the cause stays internal; callers only see the opaque profile error
	assert.ErrorIs(t, err, apperrors.ErrProfileUpdate)
	assert.NotContains(t, err.Error(), "deadlock")
	// nothing was written outside the failed transaction
	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_TransactionFailure(t *testing.T) {
	users := new(MockUserRepository)
	tx := &stubTransactor{err: errors.New("connection reset")}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)

	_, err := svc.UpdateProfile(context.Background(), userID, ProfileInput{Industry: "Fintech"})

	assert.ErrorIs(t, err, apperrors.ErrProfileUpdate)
}

func TestProfileService_UpdateProfile_UserNotFound(t *testing.T) {
	users := new(MockUserRepository)
	txUsers := new(MockUserRepository)
	txInsights := new(MockInsightRepository)
	tx := &stubTransactor{users: txUsers, insights: txInsights}
	svc := NewProfileService(users, tx, zerolog.Nop())

	userID := uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateProfile(context.Background(), userID, ProfileInput{Industry: "Fintech"})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	txInsights.AssertNotCalled(t, "FindByIndustry", mock.Anything, mock.Anything)
}

func TestProfileService_GetOnboardingStatus(t *testing.T) {
	industry := "Fintech"
	tests := []struct {
		name     string
		user     *model.User
		expected bool
	}{
		{name: "onboarded", user: &model.User{ID: uuid.New(), Industry: &industry}, expected: true},
		{name: "not onboarded", user: &model.User{ID: uuid.New()}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			svc := NewProfileService(users, &stubTransactor{}, zerolog.Nop())
			users.On("FindByID", mock.Anything, tt.user.ID).Return(tt.user, nil)

			got, err := svc.GetOnboardingStatus(context.Background(), tt.user.ID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
