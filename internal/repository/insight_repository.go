package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/utkarshp579/career-orbit/internal/errors"
	"github.com/utkarshp579/career-orbit/internal/model"
)

// InsightRepository defines industry insight persistence operations. Industry
// name is the logical key; a duplicate create surfaces as ErrIndustryExists so
// callers can resolve first-writer-wins races by re-fetching.
type InsightRepository interface {
	FindByIndustry(ctx context.Context, industry string) (*model.IndustryInsight, error)
	Create(ctx context.Context, insight *model.IndustryInsight) error
	CreatePlaceholder(ctx context.Context, industry string) (*model.IndustryInsight, error)
	Update(ctx context.Context, insight *model.IndustryInsight) error
}

type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository builds a GORM-backed repository.
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) FindByIndustry(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	var insight model.IndustryInsight
	if err := r.db.WithContext(ctx).Where("industry = ?", industry).First(&insight).Error; err != nil {
		return nil, err
	}
	return &insight, nil
}

func (r *insightRepository) Create(ctx context.Context, insight *model.IndustryInsight) error {
	if err := r.db.WithContext(ctx).Create(insight).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrIndustryExists
		}
		return err
	}
	return nil
}

// CreatePlaceholder inserts a zero-valued row so a user's industry reference
// is always satisfiable before any generation has been attempted.
func (r *insightRepository) CreatePlaceholder(ctx context.Context, industry string) (*model.IndustryInsight, error) {
	insight := model.NewPlaceholderInsight(industry)
	if err := r.Create(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}

func (r *insightRepository) Update(ctx context.Context, insight *model.IndustryInsight) error {
	return r.db.WithContext(ctx).Save(insight).Error
}
