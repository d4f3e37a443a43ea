// Command twalactl is the developer and operator CLI for the Twala Insights backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twala_backend/internal/platform/config"
	"twala_backend/internal/platform/logging"
)

// cli carries the state shared by every subcommand.
type cli struct {
	envFile    string
	jsonOutput bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "twalactl <command>",
		Short:         "Developer tools for the Twala Insights backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.envFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before the environment")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "output as JSON")

	root.AddGroup(
		&cobra.Group{ID: "dev", Title: "Development:"},
		&cobra.Group{ID: "data", Title: "Data:"},
	)
	root.AddCommand(
		newTokenCmd(c),
		newCatalogCmd(c),
		newMigrateCmd(c),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
