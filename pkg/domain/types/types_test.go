package types_test

import (
	"testing"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestAPIRevisionValidation(t *testing.T) {
	tests := []struct {
		name     string
		revision types.APIRevision
		expected bool
	}{
		{"Valid user", types.APIRevisionUser, true},
		{"Valid settings", types.APIRevisionSettings, true},
		{"Valid lowercase literal", types.APIRevision("settings"), true},
		{"Invalid empty", types.APIRevision(""), false},
		{"Invalid mixed case", types.APIRevision("Settings"), false},
		{"Invalid unknown", types.APIRevision("v2"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.revision.IsValid()
			if result != tt.expected {
				t.Errorf("APIRevision(%q).IsValid() = %v, want %v", tt.revision, result, tt.expected)
			}
		})
	}
}

func TestOutcomeValidation(t *testing.T) {
	gt.True(t, types.OutcomeOK.IsValid())
	gt.True(t, types.OutcomeFail.IsValid())
	gt.False(t, types.Outcome("ok").IsValid())
	gt.False(t, types.Outcome("").IsValid())
	gt.Equal(t, types.OutcomeFail.String(), "FAIL")
}

func TestUserIDString(t *testing.T) {
	gt.Equal(t, types.UserID(42).String(), "42")
	gt.Equal(t, types.UserID(7).Int(), 7)
}

func TestNewRunID(t *testing.T) {
	a := types.NewRunID()
	b := types.NewRunID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}
