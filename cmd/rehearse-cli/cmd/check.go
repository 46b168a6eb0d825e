package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehearse/internal/application"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the annotation document",
	Long: `Report authoring problems the parser tolerates silently: duplicate ids,
missing timestamps, and sections whose annotations run backward in time.

Exits non-zero when issues are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := GetSource().Load()
		if err != nil {
			return err
		}

		issues := application.Lint(doc)
		if len(issues) == 0 {
			fmt.Println("No issues found.")
			return nil
		}
		for _, issue := range issues {
			fmt.Println(issue.String())
		}
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
