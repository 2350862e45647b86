package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/model"
	"github.com/utkarshp579/career-orbit/internal/repository"
)

// profileUpdateTimeout bounds the onboarding transaction. Longer than a
// typical default to tolerate the placeholder-creation path.
const profileUpdateTimeout = 10 * time.Second

// ProfileInput carries the onboarding form fields.
type ProfileInput struct {
	Industry   string
	Experience int
	Bio        string
	Skills     []string
}

// ProfileService owns the onboarding workflow.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.User, error)
	GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (bool, error)
}

type profileService struct {
	users repository.UserRepository
	tx    repository.Transactor
	log   zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(users repository.UserRepository, tx repository.Transactor, log zerolog.Logger) ProfileService {
	return &profileService{users: users, tx: tx, log: log}
}

// UpdateProfile applies the onboarding form in a single transaction: the
// chosen industry gets an insight row (a zero-valued placeholder if none
// exists, never a generation call), then the user's profile fields are
// written. Any mid-transaction failure rolls everything back and surfaces as
// ErrProfileUpdate with a generic message; the cause is only logged.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.User, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, profileUpdateTimeout)
	defer cancel()

	err := s.tx.WithinTransaction(txCtx, func(ctx context.Context, users repository.UserRepository, insights repository.InsightRepository) error {
		if _, err := insights.FindByIndustry(ctx, input.Industry); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if _, err := insights.CreatePlaceholder(ctx, input.Industry); err != nil {
				// Another onboarding raced us to the same new industry;
				// the existing row satisfies the invariant.
				if !errors.Is(err, apperrors.ErrIndustryExists) {
					return err
				}
			}
		}
		return users.UpdateProfile(ctx, userID, input.Industry, input.Experience, input.Bio, model.StringList(input.Skills))
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Str("industry", input.Industry).
			Msg("profile update transaction failed")
		return nil, apperrors.ErrProfileUpdate
	}

	return s.users.FindByID(ctx, userID)
}

// GetOnboardingStatus reports whether the user has completed onboarding.
func (s *profileService) GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		return false, err
	}
	return user.IsOnboarded(), nil
}
