package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehearse/internal/adapters/sqlite"
	"rehearse/internal/domain"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [list|clear]",
	Short: "Manage saved playback sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open("")
		if err != nil {
			return err
		}
		defer store.Close()

		sessions, err := store.List()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No saved sessions.")
			return nil
		}
		for _, s := range sessions {
			fmt.Printf("%s  %s  %d triggered  %s\n",
				s.UpdatedAt.Format("2006-01-02 15:04"),
				domain.FormatTimestamp(s.PositionMs),
				len(s.Triggered),
				s.DocumentPath)
		}
		return nil
	},
}

var sessionsClearCmd = &cobra.Command{
	Use:   "clear <document-path>",
	Short: "Delete the saved session for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open("")
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Delete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsClearCmd)
}
