package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "customquery",
		Short: "Build SQL fragments for CiviCRM custom field searches",
		Long: `customquery resolves custom field metadata from a CiviCRM database or a
YAML catalog and prints the select list, joins, where clause and the human
readable description of a custom field search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./customquery.yaml)")
	flags.String("driver", "mysql", "database driver, mysql or postgres")
	flags.String("dsn", "", "database connection string")
	flags.String("catalog", "", "YAML catalog used instead of the database")
	flags.Bool("verbose", false, "log database queries and progress")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "customquery %s (%s)\n", Version, GitCommit)
		},
	})
	return rootCmd
}
