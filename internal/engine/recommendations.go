package engine

// maxRecommendations caps the emission-reduction recommendation list.
const maxRecommendations = 8

// activityAdvice keys category-specific reduction guidance by the activity
// type with the largest share of total emissions.
var activityAdvice = map[string][]string{ //nolint:gochecknoglobals // Static decision table
	"electricity": {
		"Switch to renewable energy sources or green electricity tariffs",
		"Implement energy-efficient LED lighting systems",
		"Install programmable thermostats and energy management systems",
		"Consider solar panels or other on-site renewable energy generation",
	},
	"fuel": {
		"Transition to electric or hybrid vehicles",
		"Optimize delivery routes and consolidate trips",
		"Consider biofuels or other alternative fuel sources",
		"Implement fuel-efficient driving practices and training",
	},
	"transportation": {
		"Promote remote work and video conferencing",
		"Encourage public transportation or carpooling",
		"Consider electric vehicle fleet transition",
		"Implement travel policies to reduce business travel",
	},
	"heating": {
		"Upgrade to high-efficiency heating systems",
		"Improve building insulation and weatherproofing",
		"Consider heat pumps or other renewable heating sources",
		"Implement smart building controls and zoning",
	},
}

// genericAdvice is appended after any activity-specific guidance.
var genericAdvice = []string{ //nolint:gochecknoglobals // Static decision table
	"Conduct regular energy audits to identify improvement opportunities",
	"Set science-based emission reduction targets",
	"Engage employees in sustainability initiatives",
	"Consider carbon offset programs for remaining emissions",
}

// reductionRecommendations builds the ranked recommendation list for an
// emissions calculation: guidance keyed to the highest-emitting activity
// type, then generic actions, capped at maxRecommendations.
func reductionRecommendations(byActivity *Totals) []string {
	maxActivity, _, ok := byActivity.Max()
	if !ok {
		return nil
	}

	var recs []string
	recs = append(recs, activityAdvice[maxActivity]...)
	recs = append(recs, genericAdvice...)

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
