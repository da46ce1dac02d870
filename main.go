package main

import (
	"fmt"
	"os"

	"focushield/cmd"
	"focushield/internal/audit"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	cfgFile string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "focushield",
		Short: "Focus-mode website blocker using the system hosts file",
		Long: `FocusShield blocks distracting websites by inserting a managed section
of loopback mappings into the system hosts file, and removes that
section again when focus mode is switched off.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return cmd.Setup(cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.focushield/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAddCmd(),
		cmd.NewRemoveCmd(),
		cmd.NewOnCmd(),
		cmd.NewOffCmd(),
		cmd.NewListCmd(),
		cmd.NewStatusCmd(),
		cmd.NewClearCmd(),
		cmd.NewImportCmd(),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	audit.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("FocusShield v%s\n", version)
		},
	}
}
