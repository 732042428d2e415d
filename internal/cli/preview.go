package cli

import (
	"github.com/spf13/cobra"
	"github.com/sprite-ai/tghtml/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Inspect a conversion in the terminal",
	Long: `Open an interactive view of a message: the styled text, the spans
built from its entities, and the produced HTML.

Navigation:
  j/k, up/down    Scroll
  Tab / n, N      Switch pane
  ?               Help
  q               Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	msg, err := readMessage(cmd, args)
	if err != nil {
		return err
	}
	text, entities := msg.Content()
	return tui.Run(text, entities)
}
