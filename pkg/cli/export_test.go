package cli

import (
	"testing"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/prompt"
)

// RunWithIO runs the application against the given streams
var RunWithIO = run

// SetPromptOptions overrides prompter options for the duration of a test
func SetPromptOptions(t *testing.T, opts ...prompt.Option) {
	promptOptions = opts
	t.Cleanup(func() {
		promptOptions = nil
	})
}
