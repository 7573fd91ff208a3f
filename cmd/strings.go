package cmd

import (
	"fmt"

	"gamedata-manager/feature/game/text"

	"github.com/spf13/cobra"
)

// stringsCmd represents the strings command
var stringsCmd = &cobra.Command{
	Use:   "strings <name>",
	Short: "Print a text table (species, moves, items, abilities, natures, types)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := text.ParseName(args[0])
		if err != nil {
			return err
		}

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		m, err := rt.openSession(cmd.Context())
		if err != nil {
			return err
		}

		lines, err := m.GetStrings(cmd.Context(), name)
		if err != nil {
			return err
		}
		for i, line := range lines {
			fmt.Printf("%4d  %s\n", i, line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(stringsCmd)
}
