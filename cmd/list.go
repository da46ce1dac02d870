package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"print"},
		Short:   "Print the block list",
		Long:    `Print the domains on the persistent block list and the current focus mode state.`,
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	domains, err := env.Store.Load()
	if err != nil {
		return err
	}

	if len(domains) == 0 {
		fmt.Println("The block list is empty.")
	} else {
		fmt.Printf("Block list (%d domain(s)):\n", len(domains))
		for i, domain := range domains {
			fmt.Printf("  %d. %s\n", i+1, domain)
		}
	}

	on, err := env.Manager.FocusModeOn()
	if err != nil {
		return err
	}
	if on {
		fmt.Println("\n🔒 Focus mode is ON")
	} else {
		fmt.Println("\n🔓 Focus mode is OFF")
	}

	return nil
}
