package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"focushield/internal/audit"
)

// NewOnCmd creates the on command
func NewOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on",
		Short: "Enable focus mode",
		Long: `Block every domain on the block list by writing the managed section
into the system hosts file. Requires privileges to modify the hosts file.`,
		Args: cobra.NoArgs,
		RunE: runOn,
	}
}

// NewOffCmd creates the off command
func NewOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disable focus mode",
		Long: `Remove the managed section from the system hosts file, unblocking all
domains. The block list itself is kept for the next time focus mode is
enabled.`,
		Args: cobra.NoArgs,
		RunE: runOff,
	}
}

func runOn(cmd *cobra.Command, args []string) error {
	if err := env.System.CheckPrivilege(); err != nil {
		return err
	}

	domains, err := env.Store.Load()
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		fmt.Println("ℹ️  The block list is empty; add domains first with 'focushield add'")
		return nil
	}

	if err := env.Manager.Apply(domains); err != nil {
		return err
	}

	audit.Log(audit.EventBlockEnabled, "info", "Focus mode enabled", map[string]interface{}{
		"domains": len(domains),
	})

	fmt.Printf("🔒 Focus mode on — blocking %d domain(s)\n", len(domains))
	return nil
}

func runOff(cmd *cobra.Command, args []string) error {
	if err := env.System.CheckPrivilege(); err != nil {
		return err
	}

	if err := env.Manager.Clear(); err != nil {
		return err
	}

	audit.Log(audit.EventBlockDisabled, "info", "Focus mode disabled", nil)

	fmt.Println("🔓 Focus mode off — all domains unblocked")
	return nil
}
