package cmd

import (
	"fmt"

	"gamedata-manager/feature/game"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the limits and languages of the configured game",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		info, ok := game.InfoFor(rt.loc.Version)
		if !ok {
			return fmt.Errorf("%w: %s", game.ErrUnknownVersion, rt.loc.Version)
		}
		return printJSON(info)
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
