package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehearse/internal/domain"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Print the table of contents",
	Long: `Print the document's sections and their annotations in authoring order.

Examples:
  rehearse-cli toc
  rehearse-cli toc -f walkthrough.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := GetSource().Load()
		if err != nil {
			return err
		}

		fmt.Println(doc.Title)
		for _, sec := range doc.Sections {
			fmt.Printf("  %s\n", sec.Title)
			for _, ann := range sec.Annotations {
				fmt.Printf("    %s  %s  %s\n", domain.FormatTimestamp(ann.TimestampMs), ann.ID, ann.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
}
