package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/sprite-ai/tghtml/internal/entity"
)

var errNoInput = errors.New("no input: pass a JSON file, or pipe one on stdin")

// readMessage loads a message from the file named in args, from stdin when
// the argument is "-", or from piped stdin when no argument is given.
func readMessage(cmd *cobra.Command, args []string) (entity.Message, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case len(args) == 1 && args[0] != "-":
		data, err = os.ReadFile(args[0])
	case len(args) == 1 || !isTerminal(cmd.InOrStdin()):
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		return entity.Message{}, errNoInput
	}
	if err != nil {
		return entity.Message{}, fmt.Errorf("reading input: %w", err)
	}

	var msg entity.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return entity.Message{}, fmt.Errorf("parsing message: %w", err)
	}
	return msg, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
