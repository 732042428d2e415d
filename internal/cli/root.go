// Package cli implements the tghtml command line.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tghtml",
	Short: "Convert Telegram message entities to HTML",
	Long: `tghtml turns a message text and its formatting entities into
Telegram-flavoured HTML with correctly nested tags.

Input messages are JSON objects in Bot API shape:
  {"text": "hello world", "entities": [{"type": "bold", "offset": 0, "length": 5}]}`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd, checkCmd, serveCmd, previewCmd, versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
