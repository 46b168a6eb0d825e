package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehearse/internal/adapters/share"
	"rehearse/internal/application"
	"rehearse/internal/config"
)

var (
	linkBaseURL string
	linkCopy    bool
)

var linkCmd = &cobra.Command{
	Use:   "link <annotation-id>",
	Short: "Build the shareable deep link for an annotation",
	Long: `Build the deep link that opens the player at a given annotation.

Examples:
  rehearse-cli link notebook-area
  rehearse-cli link notebook-area -c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := GetSource().Load()
		if err != nil {
			return err
		}
		if _, err := application.FindAnnotation(doc, args[0]); err != nil {
			return err
		}

		url := share.DeepLink(linkBaseURL, args[0])
		fmt.Println(url)
		if linkCopy {
			if err := share.CopyDeepLink(linkBaseURL, args[0]); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Println("(copied to clipboard)")
		}
		return nil
	},
}

func init() {
	linkCmd.Flags().StringVar(&linkBaseURL, "base-url", config.BaseURL(), "player base URL")
	linkCmd.Flags().BoolVarP(&linkCopy, "copy", "c", false, "also copy the link to the clipboard")
	rootCmd.AddCommand(linkCmd)
}
