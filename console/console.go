// Package console answers bot commands typed on a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Dispatcher answers command lines.
type Dispatcher interface {
	Prefix() string
	Names() []string
	DispatchLine(ctx context.Context, line, requester string) string
}

// Requester is the name console commands are logged under.
const Requester = "console"

// A Console reads commands from In and writes replies to Out.
type Console struct {
	d   Dispatcher
	In  io.Reader
	Out io.Writer
}

// New creates a Console.
func New(d Dispatcher, in io.Reader, out io.Writer) *Console {
	return &Console{d: d, In: in, Out: out}
}

var errExit = errors.New("exit")

// Run reads lines until EOF, "exit" or ctx is done. The command prefix is
// optional on the console.
func (c *Console) Run(ctx context.Context) error {
	reader := bufio.NewReader(c.In)
	fmt.Fprintln(c.Out, "bagelbot: type \"help\" for commands, \"exit\" to quit")
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			if cerr := c.runLine(ctx, strings.TrimSpace(line)); cerr != nil {
				if cerr == errExit {
					return nil
				}
				return cerr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read console")
		}
	}
}

func (c *Console) runLine(ctx context.Context, line string) error {
	prefix := c.d.Prefix()
	switch strings.ToLower(line) {
	case "":
		return nil
	case "exit", "quit":
		return errExit
	case "help":
		_, err := fmt.Fprintln(c.Out, "Commands:", prefix+strings.Join(c.d.Names(), ", "+prefix))
		return err
	}
	if !strings.HasPrefix(line, prefix) {
		line = prefix + line
	}
	reply := c.d.DispatchLine(ctx, line, Requester)
	if reply == "" {
		reply = "Unknown command: " + strings.TrimPrefix(line, prefix)
	}
	_, err := fmt.Fprintln(c.Out, reply)
	return err
}
