package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the processing audit trail",
		Long:  `Show audit log events from past processing runs, newest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := wire.LogService().ListEvents(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list log events: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No log events yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tEVENT\tITEM\tDETAILS")
			fmt.Fprintln(w, "----\t-----\t----\t-------")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					e.CreatedAt, e.Event, e.InboxID, truncate(e.Details, 70))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of events")

	return cmd
}
