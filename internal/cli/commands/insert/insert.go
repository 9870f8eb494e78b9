// Package insert provides the insert command.
package insert

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/slotbuf/internal/cli/commands/internal"
	"github.com/mpyw/slotbuf/internal/cli/output"
	usecase "github.com/mpyw/slotbuf/internal/usecase/insert"
)

// Runner executes the insert command.
type Runner struct {
	UseCase *usecase.UseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the insert command.
type Options struct {
	Input  usecase.Input
	Raw    bool
	Diff   bool
	Output output.Format
}

// JSONOutput represents the JSON output structure for the insert command.
type JSONOutput struct {
	Capacity int   `json:"capacity"`
	Position int   `json:"position"`
	Value    int   `json:"value"`
	Before   []int `json:"before"`
	After    []int `json:"after"`
}

// Command returns the insert command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "insert",
		Aliases:   []string{"ins"},
		Usage:     "Insert a value into a bounded sequence",
		ArgsUsage: "[values...]",
		Description: `Insert a value at a zero-based position, shifting the following elements
one slot to the right.

The sequence holds the given values and has --capacity slots in total.
Without --capacity, exactly one spare slot is allocated. Without values,
the sequence comes from --config or the built-in defaults (10 20 30 40 50).

Inserting fails without modifying anything when the position is outside
0..len(values) or when no spare slot is left.

Use --raw to output only the resulting elements (for piping/scripting).
Use --output=json for structured JSON output (cannot be used with --raw).

EXAMPLES:
  slotbuf insert -p 2 --value 25 10 20 30 40 50     Insert 25 at index 2
  slotbuf insert -p 0 --value 5 10 20               Prepend
  slotbuf insert -p 2 --value 5 10 20               Append
  slotbuf insert --raw -p 1 --value 7 1 2 3         Output "1 7 2 3" only
  slotbuf insert --diff -p 1 --value 7 1 2 3        Show a unified diff
  slotbuf insert --output=json -p 1 --value 7 1 2   Output as JSON
  slotbuf insert -p 0 --value 1 -- -3 -2            Negative values after --`,
		Flags: []cli.Flag{
			cliinternal.CapacityFlag(),
			cliinternal.PositionFlag(),
			cliinternal.ValueFlag(),
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Output the resulting elements only, without a trailing newline",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "Show the change as a unified diff, one element per line",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	outputFormat := output.ParseFormat(cmd.String("output"))
	raw := cmd.Bool("raw")
	diff := cmd.Bool("diff")

	// Check mutually exclusive options
	if raw && outputFormat == output.FormatJSON {
		return errors.New("--raw and --output=json cannot be used together")
	}

	if raw && diff {
		return errors.New("--raw and --diff cannot be used together")
	}

	input, err := cliinternal.ResolveInput(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &usecase.UseCase{},
		Stdout:  cmd.Root().Writer,
		Stderr:  cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Input:  input,
		Raw:    raw,
		Diff:   diff,
		Output: outputFormat,
	})
}

// Run executes the insert command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, opts.Input)
	if err != nil {
		cliinternal.PrintHint(r.Stderr, err, opts.Input)

		return err
	}

	switch {
	case opts.Output == output.FormatJSON:
		if opts.Diff {
			output.Warning(r.Stderr, "--diff has no effect with --output=json")
		}

		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(JSONOutput{
			Capacity: result.Capacity,
			Position: result.Position,
			Value:    result.Value,
			Before:   result.Before,
			After:    result.After,
		})

	case opts.Raw:
		// Raw mode: output elements only without trailing newline
		output.Print(r.Stdout, output.Elements(result.After, output.NoHighlight))

		return nil

	case opts.Diff:
		output.Print(r.Stdout, output.Diff("before", "after", output.Lines(result.Before), output.Lines(result.After)))

		return nil
	}

	out := output.New(r.Stdout)
	out.Field("Capacity", strconv.Itoa(result.Capacity))
	out.Field("Spare", strconv.Itoa(result.Capacity-len(result.After)))
	out.Field("Position", strconv.Itoa(result.Position))
	out.Field("Value", strconv.Itoa(result.Value))
	out.Field("Before", output.Elements(result.Before, output.NoHighlight))
	out.Field("After", output.Elements(result.After, result.Position))

	return nil
}
