package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehearse/internal/application"
	"rehearse/internal/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [annotation-id]",
	Short: "Summarize the document or show one annotation",
	Long: `Without arguments, print a summary of the document. With an annotation id,
print every field of that annotation.

Examples:
  rehearse-cli inspect
  rehearse-cli inspect notebook-area`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := GetSource().Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			s := application.Summarize(doc)
			fmt.Printf("title:       %s\n", s.Title)
			fmt.Printf("version:     %d\n", s.Version)
			fmt.Printf("sections:    %d\n", s.Sections)
			fmt.Printf("annotations: %d (%d with highlight scripts)\n", s.Annotations, s.Scripted)
			fmt.Printf("duration:    %s\n", domain.FormatTimestamp(s.EndMs))
			return nil
		}

		ann, err := application.FindAnnotation(doc, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("id:        %s\n", ann.ID)
		fmt.Printf("title:     %s\n", ann.Title)
		fmt.Printf("timestamp: %s (%dms)\n", domain.FormatTimestamp(ann.TimestampMs), ann.TimestampMs)
		if ann.Color != "" {
			fmt.Printf("color:     %s\n", ann.Color)
		}
		if ann.Autopause != nil {
			fmt.Printf("autopause: %v\n", *ann.Autopause)
		}
		if ann.SectionID != "" {
			fmt.Printf("section:   %s\n", ann.SectionID)
		}
		if ann.Description != "" {
			fmt.Printf("\n%s\n", ann.Description)
		}
		if ann.HasScript() {
			fmt.Printf("\nhighlight script:\n%s\n", ann.HighlightScript)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
