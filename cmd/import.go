package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"focushield/internal/audit"
	"focushield/internal/rules"
	"focushield/internal/utils"
)

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <url|file>",
		Short: "Import a blocklist into the block list",
		Long: `Download or read a blocklist and add its domains to the block list.
Both hosts-file format ("0.0.0.0 example.com") and plain domain-per-line
lists are accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]
	parser := rules.NewParser()

	var domains []string
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		domains, err = parser.FetchURL(source)
	} else {
		var data []byte
		data, err = os.ReadFile(source)
		if err == nil && int64(len(data)) > utils.MaxBlocklistSize {
			err = fmt.Errorf("blocklist exceeds maximum size of %d bytes", utils.MaxBlocklistSize)
		}
		if err == nil {
			domains = parser.Parse(string(data))
		}
	}
	if err != nil {
		return fmt.Errorf("failed to import blocklist: %v", err)
	}

	if len(domains) == 0 {
		fmt.Println("ℹ️  No domains found in the blocklist")
		return nil
	}

	result, err := env.Store.Add(domains)
	if err != nil {
		return err
	}

	if result.AlreadyPresent {
		fmt.Printf("ℹ️  All %d domain(s) from the blocklist were already present\n", len(domains))
		return nil
	}

	audit.Log(audit.EventRulesImported, "info", "Blocklist imported", map[string]interface{}{
		"source": source,
		"added":  len(result.Added),
	})

	fmt.Printf("✅ Imported %d new domain(s) (%d already present)\n",
		len(result.Added), len(domains)-len(result.Added))

	if on, err := env.Manager.FocusModeOn(); err == nil && on {
		fmt.Println("\n💡 Focus mode is on; run 'sudo focushield on' again to block the new domains")
	}

	return nil
}
