package model

import (
	"log/slog"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
)

// UpdateResult is the outcome of applying the target mask to one user.
// It is created once by the driver and never mutated afterwards.
type UpdateResult struct {
	UserID          types.UserID
	Email           string
	TargetMask      NotificationMask
	PermissionCount int
	Outcome         types.Outcome
	Simulated       bool   // Dry-run success, nothing was transmitted
	Error           string // Failure reason when Outcome is FAIL
}

// NewUpdateResult builds the result record for a user
func NewUpdateResult(user RemoteUser, mask NotificationMask, simulated bool, err error) UpdateResult {
	result := UpdateResult{
		UserID:          user.ID,
		Email:           user.Email,
		TargetMask:      mask,
		PermissionCount: mask.PopCount(),
		Outcome:         types.OutcomeOK,
		Simulated:       simulated,
	}
	if err != nil {
		result.Outcome = types.OutcomeFail
		result.Simulated = false
		result.Error = err.Error()
	}
	return result
}

// IsOK returns true if the update succeeded (including simulated success)
func (r UpdateResult) IsOK() bool {
	return r.Outcome == types.OutcomeOK
}

// RunSummary aggregates the results of one run
type RunSummary struct {
	RunID        types.RunID
	TotalUsers   int
	SuccessCount int
	FailureCount int
	TestMode     bool
}

// Summarize derives the run summary from the result sequence.
// TestMode is set when every result was simulated.
func Summarize(results []UpdateResult) RunSummary {
	summary := RunSummary{
		TotalUsers: len(results),
		TestMode:   len(results) > 0,
	}
	for _, r := range results {
		if r.IsOK() {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
		}
		if !r.Simulated {
			summary.TestMode = false
		}
	}
	return summary
}

// ExitCode returns the process exit status for the run.
// Any failure makes the run fail, even when other users succeeded.
func (s RunSummary) ExitCode() int {
	if s.FailureCount > 0 {
		return 1
	}
	return 0
}

// Failed returns the failed results in order
func Failed(results []UpdateResult) []UpdateResult {
	var failed []UpdateResult
	for _, r := range results {
		if !r.IsOK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// LogValue returns structured log value
func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID.String()),
		slog.Int("total", s.TotalUsers),
		slog.Int("success", s.SuccessCount),
		slog.Int("failure", s.FailureCount),
		slog.Bool("test_mode", s.TestMode),
	)
}

// RunReport bundles the summary with the per-user results of a run
type RunReport struct {
	Summary RunSummary
	Results []UpdateResult
}
