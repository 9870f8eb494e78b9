// Package commands provides the command-line interface for slotbuf.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/slotbuf/internal/cli/commands/internal"
	"github.com/mpyw/slotbuf/internal/cli/commands/insert"
	"github.com/mpyw/slotbuf/internal/cli/commands/positions"
	usecase "github.com/mpyw/slotbuf/internal/usecase/insert"
)

// ErrUnknownCommand is returned when the root command receives an unknown subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:  "slotbuf",
		Usage: "Shift-and-insert into a fixed-capacity sequence",
		Description: `Without a subcommand, inserts 25 at position 2 of 10 20 30 40 50 held in
six slots and prints the resulting elements, space-separated and without a
trailing newline. A --config file replaces these defaults.`,
		Version: "0.1.0",
		Flags: []cli.Flag{
			cliinternal.ConfigFlag(),
		},
		Commands: []*cli.Command{
			insert.Command(),
			positions.Command(),
		},
		Action: action,
	}
}

// App is the main CLI application.
var App = MakeApp()

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		name := cmd.Args().First()
		cliinternal.CommandNotFound(ctx, cmd, name)

		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	input, err := cliinternal.ResolveInput(cmd)
	if err != nil {
		return err
	}

	r := &insert.Runner{
		UseCase: &usecase.UseCase{},
		Stdout:  cmd.Root().Writer,
		Stderr:  cmd.Root().ErrWriter,
	}

	return r.Run(ctx, insert.Options{
		Input: input,
		Raw:   true,
	})
}
