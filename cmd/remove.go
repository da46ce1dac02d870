package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"focushield/internal/audit"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <domain>...",
		Short: "Remove domains from the block list",
		Long: `Remove one or more domains from the persistent block list. When focus
mode is on, the hosts file is rewritten so the removed domains resolve
normally again.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	focusOn, err := env.Manager.FocusModeOn()
	if err != nil {
		return err
	}
	// Removing while blocking is active rewrites the hosts file too, so
	// verify privilege before touching the stored list.
	if focusOn {
		if err := env.System.CheckPrivilege(); err != nil {
			return err
		}
	}

	result, err := env.Store.Remove(args)
	if err != nil {
		return err
	}

	if !result.Matched {
		fmt.Println("ℹ️  None of those domains are on the block list")
		return nil
	}

	for _, domain := range result.Removed {
		fmt.Printf("✅ Removed %s\n", domain)
	}

	audit.Log(audit.EventListChanged, "info", "Domains removed from block list", map[string]interface{}{
		"removed": result.Removed,
	})

	if focusOn {
		remaining, err := env.Store.Load()
		if err != nil {
			return err
		}
		if err := env.Manager.Apply(remaining); err != nil {
			return err
		}
		if len(remaining) == 0 {
			fmt.Println("\n🔓 Focus mode off — the block list is now empty")
		}
	}

	return nil
}
