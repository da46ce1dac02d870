package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"focushield/internal/audit"
)

// NewClearCmd creates the clear command
func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the block list",
		Long: `Remove every domain from the persistent block list. When focus mode is
on, the managed section is removed from the hosts file as well.`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	focusOn, err := env.Manager.FocusModeOn()
	if err != nil {
		return err
	}
	if focusOn {
		if err := env.System.CheckPrivilege(); err != nil {
			return err
		}
	}

	if err := env.Store.Clear(); err != nil {
		return err
	}
	fmt.Println("✅ Block list cleared")

	audit.Log(audit.EventListChanged, "info", "Block list cleared", nil)

	if focusOn {
		if err := env.Manager.Clear(); err != nil {
			return err
		}
		fmt.Println("🔓 Focus mode off — all domains unblocked")
	}

	return nil
}
