package cmd

import (
	"fmt"

	"gamedata-manager/core/container"
	"gamedata-manager/feature/game"

	"github.com/spf13/cobra"
)

// filesCmd represents the files command
var filesCmd = &cobra.Command{
	Use:   "files [file]",
	Short: "List the file map, or the members of one file",
	Long: `Without arguments, prints where each game file lives for the configured
version and language. With a file identifier (e.g. move_stats), opens a
session and prints the members of that file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if len(args) == 0 {
			paths, err := game.MappedPaths(rt.loc.Version, rt.language)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("%-16s %-6s %-7s %s\n", p.File, p.Root, p.Kind, p.Path)
			}
			return nil
		}

		id, err := game.ParseFileID(args[0])
		if err != nil {
			return err
		}

		m, err := rt.openSession(cmd.Context())
		if err != nil {
			return err
		}

		c, err := m.GetFile(cmd.Context(), id)
		if err != nil {
			return err
		}
		if _, ok := c.(*container.Folder); ok {
			if c, err = m.GetFilteredFolder(cmd.Context(), id, nil); err != nil {
				return err
			}
		}

		members, err := c.Files()
		if err != nil {
			return err
		}
		for _, name := range members {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(filesCmd)
}
