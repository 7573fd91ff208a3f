package cmd

import (
	"fmt"
	"strings"

	"gamedata-manager/feature/game"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Load structured data and write it back",
	Long: `Materializes the requested data kinds and saves the session, rewriting
their files in canonical form. Every written file is recorded in the save
journal when a database is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		kindsFlag, _ := cmd.Flags().GetString("kinds")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		var opts []game.Option
		if j := rt.openJournal(); j != nil {
			opts = append(opts, game.WithRecorder(j))
		}

		m, err := rt.openSession(ctx, opts...)
		if err != nil {
			return err
		}

		kinds := m.Data().Kinds()
		if kindsFlag != "" {
			kinds = nil
			for _, k := range strings.Split(kindsFlag, ",") {
				kind := game.Kind(strings.TrimSpace(k))
				if !m.Data().Has(kind) {
					return fmt.Errorf("data kind %q is not available for %s", kind, m.Version())
				}
				kinds = append(kinds, kind)
			}
		}

		for _, kind := range kinds {
			if err := materialize(m.Data(), kind); err != nil {
				return err
			}
			rt.logger.Info("Loaded data", zap.String("kind", string(kind)))
		}

		if err := m.SaveAll(ctx, true); err != nil {
			return fmt.Errorf("save failed: %w", err)
		}
		fmt.Printf("Saved %d data kinds for session %s\n", len(kinds), m.SessionID())
		return nil
	},
}

func materialize(d *game.Data, kind game.Kind) error {
	var err error
	switch kind {
	case game.KindMoves:
		_, err = d.Moves.Get()
	case game.KindLearnsets:
		_, err = d.Learnsets.Get()
	case game.KindPersonal:
		_, err = d.Personal.Get()
	case game.KindMegaEvolutions:
		_, err = d.MegaEvolutions.Get()
	case game.KindEvolutions:
		_, err = d.Evolutions.Get()
	default:
		err = fmt.Errorf("unknown data kind %q", kind)
	}
	return err
}

func init() {
	saveCmd.Flags().String("kinds", "", "comma separated data kinds to rewrite (default: all)")
	RootCmd.AddCommand(saveCmd)
}
