package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	Prompt                = `Enter a command (or "exit" to quit): `
	InvalidCommandMessage = "Please enter a valid command."

	exitCommand = "exit"
)

type Runner struct {
	logger     *slog.Logger
	dispatcher *Dispatcher
}

func NewRunner(logger *slog.Logger, service DirectoryService) *Runner {
	return &Runner{
		logger:     logger,
		dispatcher: NewDispatcher(service),
	}
}

func (runner Runner) execute(ctx context.Context, command Command) (string, error) {
	logger := runner.logger.With("requestId", uuid.NewString(), "command", command.Name)
	logger.DebugContext(ctx, "Executing a command", "args", command.Args)

	output, err := runner.dispatcher.Execute(ctx, command)
	if err != nil {
		logger.WarnContext(ctx, "Failed to execute a command", "error", err)
		return "", err
	}
	return output, nil
}

// RunOnce executes a single command line and writes its output, if any, to out.
func (runner Runner) RunOnce(ctx context.Context, line string, out io.Writer) error {
	command, err := Parse(line)
	if err != nil {
		return err
	}

	output, err := runner.execute(ctx, command)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(out, output)
	}
	return nil
}

// RunInteractive reads commands from in until "exit", the end of the input or
// the cancellation of ctx. A failed command is reported to out and doesn't stop the session.
func (runner Runner) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A read blocked on in isn't interrupted by ctx, so the scanner runs apart from
	// the command loop. Commands are still executed one at a time.
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, Prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		line = strings.TrimRight(line, "\r")
		if line == exitCommand {
			return nil
		}

		command, err := Parse(line)
		if err != nil {
			fmt.Fprintln(out, InvalidCommandMessage)
			continue
		}
		output, err := runner.execute(ctx, command)
		if err != nil {
			fmt.Fprintln(out, UserMessage(err))
			continue
		}
		if output != "" {
			fmt.Fprintln(out, output)
		}
	}

	fmt.Fprintln(out)
	select {
	case err := <-scanErr:
		if err != nil {
			return fmt.Errorf("scanner.Err: %w", err)
		}
	default:
	}
	return ctx.Err()
}

// UserMessage drops the call chain prepended by wrapping errors.
func UserMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		if !strings.HasSuffix(err.Error(), ": "+unwrapped.Error()) {
			return err.Error()
		}
		if _, ok := unwrapped.(interface{ Unwrap() error }); !ok {
			return err.Error()
		}
		err = unwrapped
	}
}
