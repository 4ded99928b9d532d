package usecase

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const enabledMark = "✓"

// Reporter renders the flag legend and run outcome for the operator
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	header lipgloss.Style
	cell   lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	notice lipgloss.Style
}

// NewReporter creates a new Reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	return &Reporter{
		w:        w,
		renderer: renderer,
		header:   renderer.NewStyle().Bold(true).Padding(0, 1),
		cell:     renderer.NewStyle().Padding(0, 1),
		ok:       renderer.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("2")),
		fail:     renderer.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("1")),
		notice:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// RenderPlan shows what is about to be applied before the operator confirms
func (r *Reporter) RenderPlan(flags *model.FlagTable, opts model.SyncOptions) error {
	mode := "LIVE"
	if opts.DryRun {
		mode = "TEST MODE (no changes will be sent)"
	}

	if _, err := fmt.Fprintf(r.w, "%s\n%s\nMask: %d (%d permissions)\nMode: %s\n",
		r.notice.Render("Email notification settings to apply"),
		r.legend(flags, opts.Mask),
		opts.Mask.Int(), opts.Mask.PopCount(), mode,
	); err != nil {
		return goerr.Wrap(err, "failed to write plan")
	}
	return nil
}

// Render writes the legend, the per-user outcome table and the totals
func (r *Reporter) Render(summary model.RunSummary, results []model.UpdateResult, flags *model.FlagTable) error {
	var mask model.NotificationMask
	if len(results) > 0 {
		mask = results[0].TargetMask
	}

	out := r.legend(flags, mask) + "\n"
	if len(results) > 0 {
		out += r.outcomes(results) + "\n"
	}
	out += r.totals(summary) + "\n"

	if _, err := io.WriteString(r.w, out); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}

func (r *Reporter) legend(flags *model.FlagTable, mask model.NotificationMask) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.renderer.NewStyle().Faint(true)).
		Headers("Flag", "Bit", "Enabled")

	if flags != nil {
		for _, f := range flags.Flags {
			mark := ""
			if mask.Has(f) {
				mark = enabledMark
			}
			t.Row(f.Name, strconv.FormatUint(f.Bit, 10), mark)
		}
	}

	return t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return r.header
		}
		return r.cell
	}).String()
}

func (r *Reporter) outcomes(results []model.UpdateResult) string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		outcome := res.Outcome.String()
		if res.Simulated {
			outcome += " (simulated)"
		}
		rows = append(rows, []string{
			res.UserID.String(),
			res.Email,
			strconv.Itoa(res.TargetMask.Int()),
			strconv.Itoa(res.PermissionCount),
			outcome,
			res.Error,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.renderer.NewStyle().Faint(true)).
		Headers("User ID", "Email", "Mask", "Permissions", "Outcome", "Error").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			if col == 4 && row >= 0 && row < len(results) {
				if results[row].Outcome == types.OutcomeFail {
					return r.fail
				}
				return r.ok
			}
			return r.cell
		}).
		String()
}

func (r *Reporter) totals(summary model.RunSummary) string {
	line := fmt.Sprintf("Total: %d  Success: %d  Failure: %d",
		summary.TotalUsers, summary.SuccessCount, summary.FailureCount)
	if summary.TestMode {
		line += "  " + r.notice.Render("[TEST MODE]")
	}
	if summary.RunID != "" {
		line += fmt.Sprintf("  (run %s)", summary.RunID)
	}
	return line
}
