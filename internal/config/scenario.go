package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"market-intel/internal/model"
	"market-intel/internal/simulation"
)

// Scenario describes one simulation run for the CLI. Type selects which
// section is used; the others may be present and are ignored.
type Scenario struct {
	Type      model.Scenario              `yaml:"type"`
	Seed      uint64                      `yaml:"seed"`
	PriceWar  *simulation.PriceWarParams  `yaml:"price_war"`
	Launch    *simulation.LaunchParams    `yaml:"launch"`
	Promotion *simulation.PromotionParams `yaml:"promotion"`
}

func (s Scenario) validate() error {
	var missing bool
	switch s.Type {
	case "":
		return nil
	case model.ScenarioPriceWar:
		missing = s.PriceWar == nil
	case model.ScenarioNewProduct:
		missing = s.Launch == nil
	case model.ScenarioPromotion:
		missing = s.Promotion == nil
	default:
		return fmt.Errorf("config invalid: %w", model.Invalid("scenario.type", "unknown scenario type %q", s.Type))
	}
	if missing {
		return fmt.Errorf("config invalid: %w", model.Invalid("scenario", "type %s has no matching section", s.Type))
	}
	return nil
}

type scenarioFileWrapper struct {
	Scenario Scenario `yaml:"scenario"`
}

// LoadScenarioFile reads a YAML file holding a top-level scenario key.
func LoadScenarioFile(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Scenario{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Scenario, nil
}

// MergeScenario overlays set fields from override onto base. Sections are
// replaced whole, not merged field by field.
func MergeScenario(base, override Scenario) Scenario {
	out := base
	if override.Type != "" {
		out.Type = override.Type
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.PriceWar != nil {
		out.PriceWar = override.PriceWar
	}
	if override.Launch != nil {
		out.Launch = override.Launch
	}
	if override.Promotion != nil {
		out.Promotion = override.Promotion
	}
	return out
}
