package cmd

import (
	"fmt"
	"os"

	"gamedata-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gamedata-manager",
	Short: "Game data manager",
	Long: `Gamedata Manager opens an extracted game install, exposes its files and
structured data, and writes edits back in the game's own formats.
Installs can live on the local filesystem or in an S3/MinIO bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console + debug config gives readable timestamps for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("romfs", "", "data filesystem root (overrides GAME_ROMFS)")
	flags.String("exefs", "", "code filesystem root (overrides GAME_EXEFS)")
	flags.String("game", "", "game version tag: gg, swsh (overrides GAME_VERSION)")
	flags.Int("language", -1, "language index (overrides GAME_LANGUAGE)")
}
