// Package versuscmder
package versuscmder

import (
	"github.com/spf13/cobra"

	versioncmder "github.com/timscodebase/versus/cmd/version"
	fightcmder "github.com/timscodebase/versus/cmd/versus/fight"
	servecmder "github.com/timscodebase/versus/cmd/versus/serve"
)

const versusLongDesc string = `Versus settles the important questions: who would win?

Run the server with:
  versus serve         Run the versus HTTP server

Or fight from the terminal:
  versus fight "a honey badger" "a grizzly bear"`

const versusShortDesc string = "Versus - who would win?"

func NewVersusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versus",
		Short: versusShortDesc,
		Long:  versusLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a config.toml")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(fightcmder.NewFightCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
