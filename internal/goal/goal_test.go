package goal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arand/kharcha/internal/goal"
	"github.com/arand/kharcha/internal/state"
)

func TestEvaluate(t *testing.T) {
	type testCase struct {
		name      string
		g         goal.Goal
		lifestyle int64
		wantPlan  goal.Plan
	}

	tests := []testCase{
		{
			name:      "OnTrack",
			g:         goal.Goal{Name: "Laptop", TotalCost: 8500000, TargetMonths: 10},
			lifestyle: 1500000,
			wantPlan: goal.Plan{
				RequiredMonthly: 850000,
				MonthlySurplus:  1500000,
				RemainingBuffer: 650000,
				Tone:            goal.TonePositive,
				Label:           "On track with current surplus.",
			},
		},
		{
			name:      "ExceedsSurplus",
			g:         goal.Goal{Name: "Car", TotalCost: 60000000, TargetMonths: 6},
			lifestyle: 1500000,
			wantPlan: goal.Plan{
				RequiredMonthly: 10000000,
				MonthlySurplus:  1500000,
				RemainingBuffer: -8500000,
				Tone:            goal.ToneWarning,
				Label:           "Goal exceeds current surplus.",
			},
		},
		{
			name:      "IncompleteGoal",
			g:         goal.Goal{Name: "Someday"},
			lifestyle: 1500000,
			wantPlan: goal.Plan{
				MonthlySurplus:  1500000,
				RemainingBuffer: 1500000,
				Tone:            goal.ToneWarning,
				Label:           "Add a goal cost and timeline to continue.",
			},
		},
		{
			name:      "OverspentMonthHasNoSurplus",
			g:         goal.Goal{Name: "Phone", TotalCost: 3000000, TargetMonths: 6},
			lifestyle: -200000,
			wantPlan: goal.Plan{
				RequiredMonthly: 500000,
				MonthlySurplus:  0,
				RemainingBuffer: -500000,
				Tone:            goal.ToneWarning,
				Label:           "Goal exceeds current surplus.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPlan, goal.Evaluate(tt.g, tt.lifestyle))
		})
	}
}

func TestService_SaveAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := state.NewMockStore(ctrl)
	svc := goal.NewService(store)

	g := goal.Goal{Name: "Laptop", TotalCost: 8500000, TargetMonths: 10}

	var written []byte

	store.EXPECT().
		Set(gomock.Any(), goal.StorageKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte) error {
			written = value
			return nil
		})

	require.NoError(t, svc.Save(context.Background(), g))

	store.EXPECT().Get(gomock.Any(), goal.StorageKey).Return(written, nil)
	assert.Equal(t, g, svc.Get(context.Background()))
}

func TestService_Get_AbsentOrFailing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := state.NewMockStore(ctrl)
	svc := goal.NewService(store)

	store.EXPECT().Get(gomock.Any(), goal.StorageKey).Return(nil, nil)
	assert.Equal(t, goal.Goal{}, svc.Get(context.Background()))

	store.EXPECT().Get(gomock.Any(), goal.StorageKey).Return(nil, errors.New("io error"))
	assert.Equal(t, goal.Goal{}, svc.Get(context.Background()))
}
