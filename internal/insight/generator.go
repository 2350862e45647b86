package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/utkarshp579/career-orbit/internal/llm"
	"github.com/utkarshp579/career-orbit/internal/model"
)

var (
	// ErrParse means the model response was not valid JSON after fence stripping.
	ErrParse = fmt.Errorf("insight response is not valid JSON")
	// ErrValidation means the parsed response is missing required content.
	ErrValidation = fmt.Errorf("insight response missing salaryRanges")
)

// codeFenceRe matches Markdown code-fence delimiters, with or without a
// "json" language tag, that models like to wrap JSON payloads in.
var codeFenceRe = regexp.MustCompile("```(?:json)?\n?")

// Generator produces industry insight payloads from a text model. Generation
// failures never escape Generate: the caller always receives a structurally
// valid payload, degrading to the static fallback when the model is
// unreachable or returns garbage.
type Generator struct {
	textGen llm.TextGenerator
	timeout time.Duration
	log     zerolog.Logger
}

// NewGenerator creates a Generator. timeout bounds each model call; zero
// means no deadline beyond the caller's context.
func NewGenerator(textGen llm.TextGenerator, timeout time.Duration, log zerolog.Logger) *Generator {
	return &Generator{textGen: textGen, timeout: timeout, log: log}
}

// Generate returns insights for an industry. Exactly one model attempt is
// made; on any transport, parse, or validation failure the fixed fallback
// payload is substituted and the cause is logged.
func (g *Generator) Generate(ctx context.Context, industry string) *model.InsightPayload {
	payload, err := g.generate(ctx, industry)
	if err != nil {
		g.log.Error().Err(err).Str("industry", industry).
			Msg("insight generation failed, serving fallback payload")
		return FallbackPayload()
	}
	return payload
}

func (g *Generator) generate(ctx context.Context, industry string) (*model.InsightPayload, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.textGen.GenerateText(ctx, BuildPrompt(industry))
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	var payload model.InsightPayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(payload.SalaryRanges) == 0 {
		return nil, ErrValidation
	}
	return &payload, nil
}

// stripCodeFences removes Markdown code-fence delimiters so wrapped and
// unwrapped JSON parse identically.
func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
}

// FallbackPayload returns the static payload served when live generation
// fails. Exported so callers and tests can compare against it.
func FallbackPayload() *model.InsightPayload {
	return &model.InsightPayload{
		SalaryRanges: model.SalaryRangeList{
			{Role: "Entry Level", Min: decimal.NewFromInt(45000), Max: decimal.NewFromInt(65000), Median: decimal.NewFromInt(55000), Location: "Remote"},
			{Role: "Mid Level", Min: decimal.NewFromInt(65000), Max: decimal.NewFromInt(95000), Median: decimal.NewFromInt(80000), Location: "Remote"},
			{Role: "Senior Level", Min: decimal.NewFromInt(95000), Max: decimal.NewFromInt(140000), Median: decimal.NewFromInt(115000), Location: "Remote"},
			{Role: "Lead", Min: decimal.NewFromInt(120000), Max: decimal.NewFromInt(170000), Median: decimal.NewFromInt(145000), Location: "Remote"},
			{Role: "Director", Min: decimal.NewFromInt(150000), Max: decimal.NewFromInt(220000), Median: decimal.NewFromInt(185000), Location: "Remote"},
		},
		GrowthRate:        5.0,
		DemandLevel:       model.DemandMedium,
		TopSkills:         model.StringList{"Communication", "Problem Solving", "Adaptability", "Teamwork", "Time Management"},
		MarketOutlook:     model.OutlookNeutral,
		KeyTrends:         model.StringList{"Remote Work", "Digital Transformation", "Automation", "Upskilling", "AI Adoption"},
		RecommendedSkills: model.StringList{"Data Literacy", "Project Management", "Cloud Fundamentals"},
	}
}
