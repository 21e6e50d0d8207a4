package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/wire"
)

// ReviewCmd returns the review command
func ReviewCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List items flagged for manual review",
		Long: `List inbox items the pipeline could not place confidently,
with the reason each one was flagged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			items, err := wire.InboxService().ListReview(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list review items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("Nothing needs review.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tCONF\tREASON\tTEXT")
			fmt.Fprintln(w, "--\t--------\t----\t------\t----")
			for _, item := range items {
				category := item.Category
				if category == "" {
					category = "-"
				}
				reason := item.Error
				if reason == "" {
					reason = "low confidence"
				}
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n",
					item.ID, category, item.Confidence,
					truncate(reason, 40), truncate(item.RawText, 50))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of items (0 = all)")

	return cmd
}
