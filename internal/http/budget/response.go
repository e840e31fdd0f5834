package budget

import (
	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/state"
)

type summaryResponse struct {
	Income           int64         `json:"income"`
	Config           budget.Config `json:"config"`
	Budget           budget.Budget `json:"budget"`
	CurrentMonth     string        `json:"currentMonth"`
	CarryoverBalance int64         `json:"carryoverBalance"`
}

func toSummary(st state.State) summaryResponse {
	return summaryResponse{
		Income:           st.Income,
		Config:           st.Config,
		Budget:           st.Budget,
		CurrentMonth:     st.CurrentMonth,
		CarryoverBalance: st.CarryoverBalance,
	}
}
