package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/prompt"
	"github.com/m-mizutani/gt"
)

func TestYesNo(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		def      bool
		expected bool
	}{
		{name: "yes", input: "y\n", def: false, expected: true},
		{name: "yes word", input: "YES\n", def: false, expected: true},
		{name: "no", input: "n\n", def: true, expected: false},
		{name: "no word with spaces", input: "  No  \n", def: true, expected: false},
		{name: "empty line takes default yes", input: "\n", def: true, expected: true},
		{name: "empty line takes default no", input: "\n", def: false, expected: false},
		{name: "EOF takes default", input: "", def: true, expected: true},
		{name: "answer without newline", input: "n", def: true, expected: false},
		{name: "unrecognized input asks again", input: "maybe\ny\n", def: false, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.New(strings.NewReader(tc.input), &out, prompt.WithInteractive(true))

			gt.Equal(t, p.YesNo(context.Background(), "Continue?", tc.def), tc.expected)
		})
	}
}

func TestYesNoHint(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\n\n"), &out, prompt.WithInteractive(true))

	p.YesNo(context.Background(), "First?", true)
	p.YesNo(context.Background(), "Second?", false)

	gt.S(t, out.String()).Contains("First? [Y/n]: ")
	gt.S(t, out.String()).Contains("Second? [y/N]: ")
}

func TestYesNoReask(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("what\nn\n"), &out, prompt.WithInteractive(true))

	gt.False(t, p.YesNo(context.Background(), "Proceed?", true))
	gt.S(t, out.String()).Contains("Please answer y or n.")
	gt.Equal(t, strings.Count(out.String(), "Proceed?"), 2)
}

func TestYesNoSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("y\nn\ny\n"), &out, prompt.WithInteractive(true))
	ctx := context.Background()

	gt.True(t, p.YesNo(ctx, "One?", false))
	gt.False(t, p.YesNo(ctx, "Two?", true))
	gt.True(t, p.YesNo(ctx, "Three?", false))
	// Input exhausted
	gt.True(t, p.YesNo(ctx, "Four?", true))
}

func TestYesNoNonInteractive(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("n\n"), &out)

	gt.False(t, p.Interactive())
	gt.True(t, p.YesNo(context.Background(), "Dry run?", true))
	gt.S(t, out.String()).Contains("Dry run? [Y/n]: yes")
}

func TestYesNoTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	p := prompt.New(pr, &out, prompt.WithInteractive(true), prompt.WithTimeout(20*time.Millisecond))

	start := time.Now()
	gt.True(t, p.YesNo(context.Background(), "Wait?", true))
	gt.True(t, time.Since(start) < 5*time.Second)
	gt.S(t, out.String()).Contains("yes")
}

func TestYesNoContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := prompt.New(pr, &out, prompt.WithInteractive(true))
	gt.False(t, p.YesNo(ctx, "Cancelled?", false))
}
