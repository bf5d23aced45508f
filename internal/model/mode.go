package model

// ResponseMode is how competitors react to a promotion.
// Keep these values stable; they appear in API requests and CSV output.
type ResponseMode string

const (
	ResponseNone     ResponseMode = "none"
	ResponseMatch    ResponseMode = "match"
	ResponseUndercut ResponseMode = "undercut"
)

func (m ResponseMode) Valid() bool {
	switch m {
	case ResponseNone, ResponseMatch, ResponseUndercut:
		return true
	default:
		return false
	}
}

// Scenario tags each simulation result variant.
type Scenario string

const (
	ScenarioPriceWar   Scenario = "price-war"
	ScenarioNewProduct Scenario = "new-product"
	ScenarioPromotion  Scenario = "promotion"
)
