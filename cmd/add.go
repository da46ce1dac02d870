package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"focushield/internal/audit"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <domain>...",
		Short: "Add domains to the block list",
		Long: `Add one or more domains to the persistent block list. Domains take
effect the next time focus mode is enabled; if focus mode is already on,
re-run 'focushield on' to pick them up.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	result, err := env.Store.Add(args)
	if err != nil {
		return err
	}

	if result.AlreadyPresent {
		fmt.Println("ℹ️  All of those domains are already on the block list")
		return nil
	}

	for _, domain := range result.Added {
		fmt.Printf("✅ Added %s\n", domain)
	}

	audit.Log(audit.EventListChanged, "info", "Domains added to block list", map[string]interface{}{
		"added": result.Added,
	})

	if on, err := env.Manager.FocusModeOn(); err == nil && on {
		fmt.Println("\n💡 Focus mode is on; run 'sudo focushield on' again to block the new domains")
	}

	return nil
}
