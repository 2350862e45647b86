package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemandLevel classifies hiring demand for an industry.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "HIGH"
	DemandMedium DemandLevel = "MEDIUM"
	DemandLow    DemandLevel = "LOW"
)

// MarketOutlook classifies the overall market sentiment for an industry.
type MarketOutlook string

const (
	OutlookPositive MarketOutlook = "POSITIVE"
	OutlookNeutral  MarketOutlook = "NEUTRAL"
	OutlookNegative MarketOutlook = "NEGATIVE"
)

// IndustryInsight is the cached, industry-keyed bundle of market data.
// Exactly one row exists per distinct industry string.
type IndustryInsight struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Industry          string          `json:"industry" gorm:"uniqueIndex;size:255;not null"`
	SalaryRanges      SalaryRangeList `json:"salary_ranges" gorm:"type:json"`
	GrowthRate        float64         `json:"growth_rate"`
	DemandLevel       DemandLevel     `json:"demand_level" gorm:"type:varchar(10);not null;default:'MEDIUM'"`
	TopSkills         StringList      `json:"top_skills" gorm:"type:json"`
	MarketOutlook     MarketOutlook   `json:"market_outlook" gorm:"type:varchar(10);not null;default:'NEUTRAL'"`
	KeyTrends         StringList      `json:"key_trends" gorm:"type:json"`
	RecommendedSkills StringList      `json:"recommended_skills" gorm:"type:json"`
	NextUpdate        time.Time       `json:"next_update"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *IndustryInsight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// PlaceholderRefreshDelay is how far in the future a placeholder row
// schedules its first real generation.
const PlaceholderRefreshDelay = 7 * 24 * time.Hour

// NewPlaceholderInsight returns a zero-valued record for an industry nobody
// has requested insights for yet. It keeps a user's industry reference
// satisfiable without calling the generator.
func NewPlaceholderInsight(industry string) *IndustryInsight {
	return &IndustryInsight{
		Industry:          industry,
		SalaryRanges:      SalaryRangeList{},
		GrowthRate:        0,
		DemandLevel:       DemandMedium,
		TopSkills:         StringList{},
		MarketOutlook:     OutlookNeutral,
		KeyTrends:         StringList{},
		RecommendedSkills: StringList{},
		NextUpdate:        time.Now().Add(PlaceholderRefreshDelay),
	}
}

// IsStale reports whether the insight is past its scheduled refresh time.
func (i *IndustryInsight) IsStale(now time.Time) bool {
	return !now.Before(i.NextUpdate)
}

// IsPlaceholder reports whether the record has never held generated content.
// Every generated or fallback payload carries at least one salary band.
func (i *IndustryInsight) IsPlaceholder() bool {
	return len(i.SalaryRanges) == 0
}

// ApplyPayload copies generated content onto the record, leaving key and
// timestamps untouched.
func (i *IndustryInsight) ApplyPayload(p *InsightPayload) {
	i.SalaryRanges = p.SalaryRanges
	i.GrowthRate = p.GrowthRate
	i.DemandLevel = p.DemandLevel
	i.TopSkills = p.TopSkills
	i.MarketOutlook = p.MarketOutlook
	i.KeyTrends = p.KeyTrends
	i.RecommendedSkills = p.RecommendedSkills
}

// InsightPayload is the JSON document the text model is asked to produce.
// Field names match the schema embedded in the generation prompt.
type InsightPayload struct {
	SalaryRanges      SalaryRangeList `json:"salaryRanges"`
	GrowthRate        float64         `json:"growthRate"`
	DemandLevel       DemandLevel     `json:"demandLevel"`
	TopSkills         StringList      `json:"topSkills"`
	MarketOutlook     MarketOutlook   `json:"marketOutlook"`
	KeyTrends         StringList      `json:"keyTrends"`
	RecommendedSkills StringList      `json:"recommendedSkills"`
}
