package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/ports/primary"
	"github.com/example/secondbrain/internal/wire"
)

// ProcessCmd returns the process command
func ProcessCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Classify and file unprocessed inbox items",
		Long: `Run the classification pipeline over unprocessed inbox items,
oldest first. Prefixed notes are routed directly; the rest go through
the local model. Items the pipeline cannot place confidently are marked
needs_review instead of being filed.

Examples:
  brain process
  brain process --limit 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cmd.Flags().Changed("limit") {
				limit = wire.Config().BatchLimit
			}

			report, err := wire.ProcessService().ProcessInbox(ctx, limit)
			if err != nil {
				return fmt.Errorf("processing failed: %w", err)
			}

			if len(report.Results) == 0 {
				fmt.Println("Nothing to process.")
				return nil
			}

			for _, r := range report.Results {
				fmt.Printf("  [%d] %s\n", r.InboxID, formatResult(r))
			}

			fmt.Println()
			fmt.Printf("Processed %d item(s): %s, %s",
				len(report.Results),
				color.New(color.FgGreen).Sprintf("%d filed", report.Processed),
				color.New(color.FgYellow).Sprintf("%d need review", report.NeedsReview))
			if report.Failed > 0 {
				fmt.Printf(", %s", color.New(color.FgRed).Sprintf("%d failed", report.Failed))
			}
			fmt.Println()

			if report.NeedsReview > 0 {
				fmt.Println()
				fmt.Println("Resolve flagged items:")
				fmt.Println("  brain review")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum items per run (defaults to config batch_limit)")

	return cmd
}

// formatResult renders a single item line for the process summary.
func formatResult(r primary.ItemResult) string {
	switch r.Status {
	case primary.ResultError:
		return color.New(color.FgRed).Sprintf("error: %s", r.Detail)
	case "needs_review":
		detail := r.Detail
		if detail == "" {
			detail = "low confidence"
		}
		return color.New(color.FgYellow).Sprintf("needs review (%s)", detail)
	default:
		return color.New(color.FgGreen).Sprintf("filed under %s (%s)", r.Category, r.Model)
	}
}
