package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check FocusShield status",
		Long:  `Display the block list, the hosts file state and the derived focus mode state.`,
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 FocusShield Status")
	fmt.Println("=====================")

	if err := env.System.CheckPrivilege(); err == nil {
		fmt.Println("✅ Sufficient privileges to modify the hosts file")
	} else {
		fmt.Println("⚠️  Insufficient privileges (required for on/off)")
	}

	fmt.Println("\n📋 Block list:")
	domains, err := env.Store.Load()
	if err != nil {
		return err
	}
	fmt.Printf("✅ %d domain(s) stored in %s\n", len(domains), env.Store.Path())

	fmt.Println("\n📄 Hosts file:")
	fmt.Printf("✅ Managing %s\n", env.System.HostsPath)

	blocked, err := env.Manager.BlockedDomains()
	if err != nil {
		return err
	}

	fmt.Println("\n📊 Focus mode:")
	if len(blocked) > 0 {
		fmt.Printf("🔒 ON — %d domain(s) currently blocked:\n", len(blocked))
		for _, domain := range blocked {
			fmt.Printf("   %s\n", domain)
		}
	} else {
		fmt.Println("🔓 OFF — no domains currently blocked")
		if len(domains) > 0 {
			fmt.Println("\n💡 To start blocking:")
			fmt.Println("sudo focushield on")
		}
	}

	return nil
}
