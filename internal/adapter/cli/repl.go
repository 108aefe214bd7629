package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
)

// REPL is the line-reading loop around the dispatcher. It reads one line at
// a time, tokenizes it, dispatches it and prints exactly one result line.
// One command is fully processed before the next line is read.
type REPL struct {
	parser      *Parser
	dispatcher  *Dispatcher
	logger      *logger.Logger
	prompt      string
	interactive bool
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a REPL over the given streams. The prompt is shown only
// when interactive is set.
func NewREPL(parser *Parser, dispatcher *Dispatcher, log *logger.Logger, prompt string, interactive bool, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		parser:      parser,
		dispatcher:  dispatcher,
		logger:      log.Named("REPL"),
		prompt:      prompt,
		interactive: interactive,
		in:          in,
		out:         out,
	}
}

// Run processes lines until EOF or context cancellation. Blank lines are
// skipped; malformed quoting produces an error line and the loop continues.
// No input line is ever fatal.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
	}()

	for {
		if r.interactive {
			fmt.Fprint(r.out, r.prompt)
		}
		select {
		case <-ctx.Done():
			// Interrupted mid-prompt; move to a fresh line before exiting.
			fmt.Fprintln(r.out)
			r.logger.Info("Input loop interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					r.logger.Error("Failed reading input", zap.Error(err))
					return err
				}
				r.logger.Debug("End of input")
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			command, args, err := r.parser.Parse(line)
			if err != nil {
				fmt.Fprintf(r.out, "Error - %v\n", err)
				continue
			}
			if command == "" {
				continue
			}

			result := r.dispatcher.Dispatch(ctx, command, args)
			fmt.Fprintln(r.out, result)
		}
	}
}
