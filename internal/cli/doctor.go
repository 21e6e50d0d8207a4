package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/secondbrain/internal/config"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the secondbrain environment",
		Long: `Environment health check.

Validates:
- ~/.secondbrain directory, database, and config
- Alias table syntax
- Ollama binary on PATH

Examples:
  brain doctor            # Run full health check
  brain doctor --quiet    # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir)
			if err != nil {
				cfg = config.Default(dir)
			}

			results := []CheckResult{
				checkDirectory(dir),
				checkDatabase(cfg.DBPath),
				checkAliases(cfg.AliasesPath),
				checkOllama(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'brain init' to set up the environment.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDirectory validates the dot-directory and config file
func checkDirectory(dir string) CheckResult {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Directory",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: brain init", dir),
		}
	}

	configPath := filepath.Join(dir, "config.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Directory",
			Status:  "⚠",
			Details: "  config.json missing (defaults in effect)",
		}
	}

	if _, err := config.Load(dir); err != nil {
		return CheckResult{
			Name:    "Directory",
			Status:  "✗",
			Details: "  config.json is malformed",
		}
	}

	return CheckResult{Name: "Directory", Status: "✓"}
}

// checkDatabase validates the database file exists
func checkDatabase(path string) CheckResult {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: brain init", path),
		}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

// checkAliases validates the alias table parses as a flat JSON object
func checkAliases(path string) CheckResult {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:    "Aliases",
			Status:  "⚠",
			Details: "  aliases.json missing (name inference limited to capitalization)",
		}
	}
	if err != nil {
		return CheckResult{
			Name:    "Aliases",
			Status:  "✗",
			Details: "  Cannot read " + path,
		}
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return CheckResult{
			Name:    "Aliases",
			Status:  "✗",
			Details: "  Invalid JSON in aliases.json (must be a flat object of name -> canonical name)",
		}
	}

	return CheckResult{Name: "Aliases", Status: "✓"}
}

// checkOllama validates the classifier binary is installed
func checkOllama() CheckResult {
	path, err := exec.LookPath("ollama")
	if err != nil {
		return CheckResult{
			Name:    "Ollama",
			Status:  "✗",
			Details: "  'ollama' not found in PATH\n  Install from https://ollama.com (prefix routing still works without it)",
		}
	}
	return CheckResult{Name: "Ollama", Status: "✓", Details: "  " + path}
}
