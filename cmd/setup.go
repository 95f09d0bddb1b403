package cmd

import (
	"fmt"
	"strings"

	"github.com/constructioncheck/ccgen/internal/tui"
	"github.com/constructioncheck/ccgen/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	theme.SetActive(cfg.Appearance.Theme)
	path := configPath()

	final, err := tea.NewProgram(tui.NewSetup(cfg, path), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	saved, aborted, err := final.(tui.Setup).Outcome()
	switch {
	case err != nil:
		return err
	case aborted:
		fmt.Println("\n  Setup cancelled, nothing saved.")
	case saved:
		fmt.Println()
		fmt.Printf("  Saved to %s\n", path)
		fmt.Println("  Run `ccgen generate` to build the dataset.")
		fmt.Println()
	}
	return nil
}

// maskDSN hides the password in a URL-style connection string.
func maskDSN(dsn string) string {
	scheme := 0
	if i := strings.Index(dsn, "://"); i >= 0 {
		scheme = i + 3
	}
	at := strings.LastIndex(dsn, "@")
	if at <= scheme {
		return dsn
	}
	user, _, ok := strings.Cut(dsn[scheme:at], ":")
	if !ok {
		return dsn
	}
	return dsn[:scheme] + user + ":****" + dsn[at:]
}
