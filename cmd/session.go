package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gamedata-manager/core/config"
	"gamedata-manager/core/database"
	"gamedata-manager/core/logger"
	"gamedata-manager/core/storage"
	"gamedata-manager/feature/game"
	"gamedata-manager/feature/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runtime is what every command builds from configuration and flags.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	open     storage.Opener
	loc      game.Location
	language int
}

func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Storage.IsValidBackend() {
		return nil, fmt.Errorf("invalid storage backend %q", cfg.Storage.Backend)
	}
	open, err := storage.NewOpener(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	version, err := game.ParseVersion(cfg.Game.Version)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:      cfg,
		logger:   logg,
		open:     open,
		loc:      game.Location{RomFS: cfg.Game.RomFS, ExeFS: cfg.Game.ExeFS, Version: version},
		language: cfg.Game.Language,
	}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("romfs"); v != "" {
		cfg.Game.RomFS = v
	}
	if v, _ := flags.GetString("exefs"); v != "" {
		cfg.Game.ExeFS = v
	}
	if v, _ := flags.GetString("game"); v != "" {
		cfg.Game.Version = v
	}
	if v, _ := flags.GetInt("language"); v >= 0 {
		cfg.Game.Language = v
	}
}

// openJournal connects the save journal. The journal is optional: failures
// are logged and a nil journal is returned.
func (rt *runtime) openJournal() *journal.Journal {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		rt.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	j, err := journal.New(db, rt.logger)
	if err != nil {
		rt.logger.Warn("Save journal unavailable", zap.Error(err))
		return nil
	}
	if err := j.Migrate(); err != nil {
		rt.logger.Warn("Save journal migration failed", zap.Error(err))
		return nil
	}
	return j
}

func (rt *runtime) openSession(ctx context.Context, opts ...game.Option) (*game.Manager, error) {
	opts = append([]game.Option{game.WithLogger(rt.logger)}, opts...)
	m, err := game.New(ctx, rt.loc, rt.open, rt.language, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open game session: %w", err)
	}
	return m, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
