package model_test

import (
	"testing"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNewUpdateResult(t *testing.T) {
	user := model.RemoteUser{ID: 7, Email: "seven@example.com"}

	t.Run("success", func(t *testing.T) {
		r := model.NewUpdateResult(user, 22, false, nil)
		gt.Equal(t, r.UserID, types.UserID(7))
		gt.Equal(t, r.Email, "seven@example.com")
		gt.Equal(t, r.TargetMask, model.NotificationMask(22))
		gt.Equal(t, r.PermissionCount, 3)
		gt.Equal(t, r.Outcome, types.OutcomeOK)
		gt.False(t, r.Simulated)
		gt.Equal(t, r.Error, "")
	})

	t.Run("simulated success", func(t *testing.T) {
		r := model.NewUpdateResult(user, 0, true, nil)
		gt.True(t, r.IsOK())
		gt.True(t, r.Simulated)
		gt.Equal(t, r.PermissionCount, 0)
	})

	t.Run("failure keeps the reason", func(t *testing.T) {
		r := model.NewUpdateResult(user, 22, true, goerr.New("boom"))
		gt.Equal(t, r.Outcome, types.OutcomeFail)
		gt.False(t, r.Simulated)
		gt.S(t, r.Error).Contains("boom")
	})
}

func TestSummarize(t *testing.T) {
	ok := model.UpdateResult{Outcome: types.OutcomeOK}
	simulated := model.UpdateResult{Outcome: types.OutcomeOK, Simulated: true}
	fail := model.UpdateResult{Outcome: types.OutcomeFail}

	testCases := []struct {
		name     string
		results  []model.UpdateResult
		expected model.RunSummary
		exitCode int
	}{
		{
			name:     "no users",
			results:  nil,
			expected: model.RunSummary{},
			exitCode: 0,
		},
		{
			name:     "all live successes",
			results:  []model.UpdateResult{ok, ok, ok},
			expected: model.RunSummary{TotalUsers: 3, SuccessCount: 3},
			exitCode: 0,
		},
		{
			name:     "partial failure still fails the run",
			results:  []model.UpdateResult{ok, fail, ok},
			expected: model.RunSummary{TotalUsers: 3, SuccessCount: 2, FailureCount: 1},
			exitCode: 1,
		},
		{
			name:     "all failures",
			results:  []model.UpdateResult{fail, fail},
			expected: model.RunSummary{TotalUsers: 2, FailureCount: 2},
			exitCode: 1,
		},
		{
			name:     "dry run",
			results:  []model.UpdateResult{simulated, simulated},
			expected: model.RunSummary{TotalUsers: 2, SuccessCount: 2, TestMode: true},
			exitCode: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := model.Summarize(tc.results)
			gt.Equal(t, summary, tc.expected)
			gt.Equal(t, summary.ExitCode(), tc.exitCode)
		})
	}
}

func TestFailed(t *testing.T) {
	results := []model.UpdateResult{
		{UserID: 1, Outcome: types.OutcomeOK},
		{UserID: 2, Outcome: types.OutcomeFail},
		{UserID: 3, Outcome: types.OutcomeOK},
		{UserID: 4, Outcome: types.OutcomeFail},
	}

	failed := model.Failed(results)
	gt.A(t, failed).Length(2)
	gt.Equal(t, failed[0].UserID, types.UserID(2))
	gt.Equal(t, failed[1].UserID, types.UserID(4))
}
