package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/utkarshp579/career-orbit/internal/cache"
	apperrors "github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/model"
	"github.com/utkarshp579/career-orbit/internal/repository"
)

const (
	// insightRefreshInterval is how long generated content stays fresh.
	insightRefreshInterval = 7 * 24 * time.Hour
	// insightCacheTTL bounds the Redis read-through cache; well under the
	// refresh interval so a regenerated row is picked up promptly.
	insightCacheTTL = time.Hour
)

// InsightGenerator produces a payload for an industry. It never fails: the
// implementation substitutes a fallback payload when generation does.
type InsightGenerator interface {
	Generate(ctx context.Context, industry string) *model.InsightPayload
}

// InsightService resolves a user to their industry's insight record,
// generating it lazily on first request and regenerating once stale.
type InsightService interface {
	GetInsightsForUser(ctx context.Context, userID uuid.UUID) (*model.IndustryInsight, error)
}

type insightService struct {
	users     repository.UserRepository
	insights  repository.InsightRepository
	generator InsightGenerator
	cache     *cache.Client
	log       zerolog.Logger
}

// NewInsightService creates a new insight service.
func NewInsightService(
	users repository.UserRepository,
	insights repository.InsightRepository,
	generator InsightGenerator,
	cache *cache.Client,
	log zerolog.Logger,
) InsightService {
	return &insightService{
		users:     users,
		insights:  insights,
		generator: generator,
		cache:     cache,
		log:       log,
	}
}

func insightCacheKey(industry string) string {
	return fmt.Sprintf("insight:%s", industry)
}

// GetInsightsForUser returns the insight record for the user's industry.
// First request for an industry triggers exactly one generation call; later
// requests are lookups until NextUpdate elapses, which triggers one
// regeneration. A placeholder row left by onboarding is filled in on first
// view rather than waiting out its scheduled refresh. Two callers racing on
// first creation resolve by insert-or-fetch: the loser re-reads the
// winner's row.
func (s *insightService) GetInsightsForUser(ctx context.Context, userID uuid.UUID) (*model.IndustryInsight, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsOnboarded() {
		return nil, apperrors.ErrNotOnboarded
	}
	industry := *user.Industry

	if cached := s.fromCache(ctx, industry); cached != nil {
		return cached, nil
	}

	existing, err := s.insights.FindByIndustry(ctx, industry)
	switch {
	case err == nil && !existing.IsStale(time.Now()) && !existing.IsPlaceholder():
		s.putCache(ctx, existing)
		return existing, nil
	case err == nil:
		// stale content, or a placeholder from onboarding that has never
		// been generated; either way the row gets fresh content now
		return s.regenerate(ctx, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.createFromGeneration(ctx, industry)
	default:
		return nil, err
	}
}

func (s *insightService) createFromGeneration(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	payload := s.generator.Generate(ctx, industry)

	insight := &model.IndustryInsight{
		Industry:   industry,
		NextUpdate: time.Now().Add(insightRefreshInterval),
	}
	insight.ApplyPayload(payload)

	if err := s.insights.Create(ctx, insight); err != nil {
		if errors.Is(err, apperrors.ErrIndustryExists) {
			// Lost the first-creation race; the winner's row is authoritative.
			existing, ferr := s.insights.FindByIndustry(ctx, industry)
			if ferr != nil {
				return nil, ferr
			}
			s.putCache(ctx, existing)
			return existing, nil
		}
		return nil, err
	}

	s.log.Info().Str("industry", industry).Msg("industry insight generated")
	s.putCache(ctx, insight)
	return insight, nil
}

func (s *insightService) regenerate(ctx context.Context, insight *model.IndustryInsight) (*model.IndustryInsight, error) {
	payload := s.generator.Generate(ctx, insight.Industry)
	insight.ApplyPayload(payload)
	insight.NextUpdate = time.Now().Add(insightRefreshInterval)

	if err := s.insights.Update(ctx, insight); err != nil {
		return nil, err
	}

	s.log.Info().Str("industry", insight.Industry).Msg("industry insight refreshed")
	s.putCache(ctx, insight)
	return insight, nil
}

func (s *insightService) fromCache(ctx context.Context, industry string) *model.IndustryInsight {
	data, _ := s.cache.Get(ctx, insightCacheKey(industry))
	if data == nil {
		return nil
	}
	var cached model.IndustryInsight
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil
	}
	if cached.IsStale(time.Now()) || cached.IsPlaceholder() {
		return nil
	}
	return &cached
}

func (s *insightService) putCache(ctx context.Context, insight *model.IndustryInsight) {
	if payload, err := json.Marshal(insight); err == nil {
		_ = s.cache.Set(ctx, insightCacheKey(insight.Industry), payload, insightCacheTTL)
	}
}
