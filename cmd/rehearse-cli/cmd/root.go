package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rehearse/internal/adapters/filesystem"
	"rehearse/internal/config"
	"rehearse/internal/ports"
)

var (
	documentPath string
	source       ports.DocumentSource
)

var rootCmd = &cobra.Command{
	Use:   "rehearse-cli",
	Short: "CLI for inspecting annotation documents",
	Long: `rehearse-cli is a command-line interface for working with the annotation
documents the rehearse player consumes.

It provides commands to print the table of contents, inspect annotations,
lint a document, build shareable deep links, and manage saved sessions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		source = filesystem.NewSource(documentPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&documentPath, "file", "f", config.DocumentPath(), "path to the annotation document")
}

// GetSource returns the initialized document source
func GetSource() ports.DocumentSource {
	return source
}
