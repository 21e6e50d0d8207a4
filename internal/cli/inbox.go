package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/wire"
)

// InboxCmd returns the inbox command
func InboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Capture and inspect raw notes",
		Long:  `Add raw notes to the inbox and list them by status.`,
	}

	cmd.AddCommand(inboxAddCmd())
	cmd.AddCommand(inboxListCmd())

	return cmd
}

func inboxAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Add a raw note to the inbox",
		Long: `Add a raw note to the inbox for later processing.

Notes starting with a category prefix (admin:, project:, idea:, person:)
are routed deterministically; everything else goes to the classifier.

Examples:
  brain inbox add "call mom about dinner"
  brain inbox add admin: renew passport before june`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rawText := strings.Join(args, " ")

			id, err := wire.InboxService().AddItem(ctx, rawText)
			if err != nil {
				return fmt.Errorf("failed to add note: %w", err)
			}

			fmt.Printf("✓ Captured note %d\n", id)
			return nil
		},
	}
}

func inboxListCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbox items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			items, err := wire.InboxService().ListItems(ctx, status, limit)
			if err != nil {
				return fmt.Errorf("failed to list inbox items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("Inbox is empty.")
				fmt.Println()
				fmt.Println("Capture your first note:")
				fmt.Println("  brain inbox add \"call mom about dinner\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tCATEGORY\tCONF\tTEXT")
			fmt.Fprintln(w, "--\t------\t--------\t----\t----")
			for _, item := range items {
				category := item.Category
				if category == "" {
					category = "-"
				}
				conf := "-"
				if item.Status != "unprocessed" && item.Model != "" {
					conf = fmt.Sprintf("%.2f", item.Confidence)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					item.ID, item.Status, category, conf, truncate(item.RawText, 60))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (unprocessed, processed, needs_review)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of items (0 = all)")

	return cmd
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
