package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// IndustryGroup is one taxonomy entry for the onboarding form.
type IndustryGroup struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SubIndustries []string `json:"sub_industries"`
}

// industryGroups is the static taxonomy the onboarding form selects from.
var industryGroups = []IndustryGroup{
	{ID: "tech", Name: "Technology", SubIndustries: []string{"Software Development", "Cybersecurity", "Cloud Computing", "Artificial Intelligence", "Data Science"}},
	{ID: "finance", Name: "Financial Services", SubIndustries: []string{"Banking", "Investment Management", "Insurance", "Fintech", "Accounting"}},
	{ID: "healthcare", Name: "Healthcare", SubIndustries: []string{"Biotechnology", "Pharmaceuticals", "Medical Devices", "Healthcare IT", "Telemedicine"}},
	{ID: "manufacturing", Name: "Manufacturing", SubIndustries: []string{"Automotive", "Aerospace", "Electronics", "Industrial Automation", "Consumer Goods"}},
	{ID: "media", Name: "Media & Entertainment", SubIndustries: []string{"Digital Media", "Gaming", "Publishing", "Advertising", "Streaming"}},
	{ID: "education", Name: "Education", SubIndustries: []string{"EdTech", "Higher Education", "Corporate Training", "K-12 Education"}},
	{ID: "energy", Name: "Energy & Utilities", SubIndustries: []string{"Renewable Energy", "Oil & Gas", "Utilities", "Clean Technology"}},
	{ID: "retail", Name: "Retail & E-commerce", SubIndustries: []string{"E-commerce", "Consumer Retail", "Supply Chain", "Logistics"}},
}

// IndustryHandler serves the industry taxonomy.
type IndustryHandler struct{}

// NewIndustryHandler creates a new industry handler.
func NewIndustryHandler() *IndustryHandler {
	return &IndustryHandler{}
}

// ListIndustries godoc
// @Summary List the industry taxonomy for onboarding
// @Tags industries
// @Produce json
// @Success 200 {array} IndustryGroup
// @Router /industries [get]
func (h *IndustryHandler) ListIndustries(c echo.Context) error {
	return c.JSON(http.StatusOK, industryGroups)
}
