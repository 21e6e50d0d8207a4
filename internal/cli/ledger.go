package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/wire"
)

// PeopleCmd returns the people command
func PeopleCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Browse people records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			people, err := wire.PeopleService().ListPeople(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}

			if len(people) == 0 {
				fmt.Println("No people recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCONTEXT\tFOLLOW-UP\tLAST CONTACT")
			fmt.Fprintln(w, "--\t----\t-------\t---------\t------------")
			for _, p := range people {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, dash(truncate(p.Context, 40)),
					dash(truncate(p.FollowUp, 40)), dash(p.LastContact))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of records (0 = all)")

	return cmd
}

// ProjectsCmd returns the projects command
func ProjectsCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse project records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			projects, err := wire.ProjectService().ListProjects(ctx, status, limit)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tNEXT ACTION")
			fmt.Fprintln(w, "--\t----\t------\t-----------")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					p.ID, p.Name, p.Status, dash(truncate(p.NextAction, 50)))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (active, waiting, blocked, someday, done)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of records (0 = all)")

	return cmd
}

// IdeasCmd returns the ideas command
func IdeasCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Browse idea records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ideas, err := wire.IdeaService().ListIdeas(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list ideas: %w", err)
			}

			if len(ideas) == 0 {
				fmt.Println("No ideas recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tONE-LINER")
			fmt.Fprintln(w, "--\t-----\t---------")
			for _, i := range ideas {
				fmt.Fprintf(w, "%d\t%s\t%s\n",
					i.ID, i.Title, dash(truncate(i.OneLiner, 60)))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of records (0 = all)")

	return cmd
}

// AdminCmd returns the admin command
func AdminCmd() *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Browse admin tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			tasks, err := wire.AdminService().ListTasks(ctx, status, limit)
			if err != nil {
				return fmt.Errorf("failed to list admin tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No admin tasks recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTASK\tDUE\tSTATUS")
			fmt.Fprintln(w, "--\t----\t---\t------")
			for _, t := range tasks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					t.ID, truncate(t.Task, 60), dash(t.DueDate), t.Status)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (open, done)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of records (0 = all)")

	return cmd
}

// dash substitutes a placeholder for empty table cells.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
