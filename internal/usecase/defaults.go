package usecase

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imagine-ke/imagine-api/internal/models"
)

//go:embed default_modes.yaml
var defaultModesData []byte

//go:embed default_pricing_plans.yaml
var defaultPricingPlansData []byte

// DefaultModes returns the four fixed game modes shipped with the service.
// They are served directly by GET /modes on an unseeded store and written by
// POST /seed.
func DefaultModes() ([]models.Mode, error) {
	var modes []models.Mode
	if err := yaml.Unmarshal(defaultModesData, &modes); err != nil {
		return nil, fmt.Errorf("unmarshal default modes: %w", err)
	}
	return modes, nil
}

// DefaultPricingPlans returns the three fixed pricing plans.
func DefaultPricingPlans() ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	if err := yaml.Unmarshal(defaultPricingPlansData, &plans); err != nil {
		return nil, fmt.Errorf("unmarshal default pricing plans: %w", err)
	}
	return plans, nil
}
