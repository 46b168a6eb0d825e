package cmd

import (
	"github.com/spf13/cobra"

	"rehearse/internal/adapters/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the annotation document in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.NewOpener().OpenFile(GetSource().Path())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
