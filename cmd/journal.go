package cmd

import (
	"errors"

	"gamedata-manager/feature/journal"

	"github.com/spf13/cobra"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded saves",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		j := rt.openJournal()
		if j == nil {
			return errors.New("save journal unavailable, check the database configuration")
		}

		var records []journal.Record
		if session != "" {
			records, err = j.Session(cmd.Context(), session)
		} else {
			records, err = j.Recent(cmd.Context(), limit)
		}
		if err != nil {
			return err
		}
		return printJSON(records)
	},
}

func init() {
	journalCmd.Flags().Int("limit", 50, "number of records to show")
	journalCmd.Flags().String("session", "", "only show records of this session id")
	RootCmd.AddCommand(journalCmd)
}
