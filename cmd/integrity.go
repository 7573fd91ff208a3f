package cmd

import (
	"fmt"

	"gamedata-manager/core/storage"
	"gamedata-manager/feature/integrity"
	"gamedata-manager/feature/journal"

	"github.com/spf13/cobra"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the configured game install",
	Long:  `Verifies that every file mapped for the game version exists, that the storage bucket is reachable and that the save journal schema matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newIntegrityService(cmd)
		if err != nil {
			return err
		}
		return printJSON(svc.CheckAll(cmd.Context()))
	},
}

// layoutCmd represents the integrity layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Check that every mapped game file exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newIntegrityService(cmd)
		if err != nil {
			return err
		}

		report, err := svc.CheckLayout(cmd.Context())
		if err != nil {
			return err
		}
		if err := printJSON(report); err != nil {
			return err
		}
		if !report.Matched {
			return fmt.Errorf("%d files missing", len(report.Missing))
		}
		return nil
	},
}

func newIntegrityService(cmd *cobra.Command) (*integrity.Service, error) {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return nil, err
	}
	return rt.integrityService(rt.openJournal())
}

func (rt *runtime) integrityService(j *journal.Journal) (*integrity.Service, error) {
	opts := integrity.Options{Journal: j}
	if rt.cfg.Storage.Backend == storage.BackendObject {
		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		opts.Client = client
		opts.Bucket = rt.cfg.Storage.Bucket
	}

	return integrity.NewService(rt.open, rt.loc, rt.language, rt.logger, opts), nil
}

func init() {
	integrityCmd.AddCommand(layoutCmd)
	RootCmd.AddCommand(integrityCmd)
}
