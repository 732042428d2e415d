package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprite-ai/tghtml/internal/markup"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert one message to HTML",
	Long: `Read a JSON message and print its HTML. Reads stdin when the file
is "-" or omitted and stdin is not a terminal.

Examples:
  tghtml convert message.json
  echo '{"text":"hi","entities":[{"type":"bold","offset":0,"length":2}]}' | tghtml convert`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("explain", false, "report dropped entities on stderr")
	convertCmd.Flags().Bool("fallback", true, "print the escaped text when nothing is produced")
}

func runConvert(cmd *cobra.Command, args []string) error {
	msg, err := readMessage(cmd, args)
	if err != nil {
		return err
	}
	text, entities := msg.Content()

	explain, _ := cmd.Flags().GetBool("explain")
	if explain {
		conv := markup.Explain(text, entities)
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "%d UTF-16 units, %d entities, %d span(s)\n",
			conv.UTF16Length, len(entities), len(conv.Spans))
		for _, d := range conv.Dropped {
			fmt.Fprintf(errOut, "  dropped #%d %s (offset %d, length %d): %s\n",
				d.Index, d.Entity.Type, d.Entity.Offset, d.Entity.Length, d.Reason)
		}
	}

	fallback, _ := cmd.Flags().GetBool("fallback")
	var out string
	if fallback {
		out = markup.ConvertOrEscape(text, entities)
	} else {
		out = markup.Convert(text, entities)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
