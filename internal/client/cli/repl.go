package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const commandList = "register, login, profile, status, logout, ping, exit"

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	exec(ctx context.Context, cmd string) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and hands
// each one to a. Command handlers print their own results; only unknown
// commands are reported here. Handlers share reader for their prompts.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gophauth%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			if err := a.exec(ctx, cmd); errors.Is(err, ErrUnknownCommand) {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}
