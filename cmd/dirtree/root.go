package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/michael-freling/dirtree/internal/command"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string
	var commandLine string

	rootCommand := &cobra.Command{
		Use:   "dirtree",
		Short: "Manage a virtual directory tree",
		Long: `dirtree keeps a tree of directories in a database.

Run a single command with --command, for example --command="CREATE fruits/apples",
or start an interactive session without it. Available commands are
CREATE <path>, MOVE <sourcePath> <targetPath>, DELETE <path> and LIST.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			runner := command.NewRunner(app.logger, app.service)
			if cmd.Flags().Changed("command") {
				return runner.RunOnce(cmd.Context(), commandLine, cmd.OutOrStdout())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err = runner.RunInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	rootCommand.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")
	rootCommand.Flags().StringVar(&commandLine, "command", "", "a command to run instead of an interactive session")

	rootCommand.AddCommand(newServeCommand(&configPath))
	return rootCommand
}

// run executes rootCommand and reports an error the same way as an interactive session.
func run(rootCommand *cobra.Command) int {
	if err := rootCommand.Execute(); err != nil {
		message := command.UserMessage(err)
		if errors.Is(err, command.ErrInvalidCommand) {
			message = command.InvalidCommandMessage
		}
		fmt.Fprintln(rootCommand.ErrOrStderr(), message)
		return 1
	}
	return 0
}
