// Package goal implements the savings-goal calculator: a small advisory
// projection kept separate from the main budgeting aggregate.
package goal

// Goal is the user's ad hoc savings target.
type Goal struct {
	Name         string `json:"goalName"`
	TotalCost    int64  `json:"totalCost"` // in paise
	TargetMonths int    `json:"targetMonths"`
}

// Tone mirrors the insight tones used elsewhere in the dashboard.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
)

// Plan is the derived projection for a goal against the current budget.
type Plan struct {
	RequiredMonthly int64  `json:"requiredMonthly"`
	MonthlySurplus  int64  `json:"monthlySurplus"`
	RemainingBuffer int64  `json:"remainingBuffer"`
	Tone            Tone   `json:"tone"`
	Label           string `json:"label"`
}

// Evaluate projects a goal against the remaining lifestyle balance. The
// surplus is floored at zero: an overspent month cannot fund a goal.
func Evaluate(g Goal, lifestyleBalance int64) Plan {
	surplus := lifestyleBalance
	if surplus < 0 {
		surplus = 0
	}

	var required int64
	if g.TotalCost > 0 && g.TargetMonths > 0 {
		required = g.TotalCost / int64(g.TargetMonths)
	}

	plan := Plan{
		RequiredMonthly: required,
		MonthlySurplus:  surplus,
		RemainingBuffer: surplus - required,
	}

	switch {
	case required <= 0:
		plan.Tone = ToneWarning
		plan.Label = "Add a goal cost and timeline to continue."
	case surplus >= required:
		plan.Tone = TonePositive
		plan.Label = "On track with current surplus."
	default:
		plan.Tone = ToneWarning
		plan.Label = "Goal exceeds current surplus."
	}

	return plan
}
