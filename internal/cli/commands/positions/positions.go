// Package positions provides the positions command.
package positions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/slotbuf/internal/cli/commands/internal"
	"github.com/mpyw/slotbuf/internal/cli/colors"
	"github.com/mpyw/slotbuf/internal/cli/output"
	"github.com/mpyw/slotbuf/internal/cli/pager"
	usecase "github.com/mpyw/slotbuf/internal/usecase/insert"
)

// Runner executes the positions command.
type Runner struct {
	UseCase *usecase.UseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the positions command.
type Options struct {
	Input   usecase.Input
	NoPager bool
	Output  output.Format
}

// JSONOutputItem represents a single item in the JSON output for the positions command.
type JSONOutputItem struct {
	Position int    `json:"position"`
	After    []int  `json:"after,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Command returns the positions command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "positions",
		Aliases:   []string{"all"},
		Usage:     "Show the result of inserting at every valid position",
		ArgsUsage: "[values...]",
		Description: `Insert the value at each position from 0 through len(values) and list
every resulting sequence, one per line. Each insertion works on its own copy
of the sequence.

Output is paged when stdout is a terminal and the list is taller than it.

EXAMPLES:
  slotbuf positions --value 25 10 20 30           List all four results
  slotbuf positions --output=json --value 0 1 2   Output as JSON
  slotbuf positions --no-pager --value 1 $(seq 100)  Print without paging`,
		Flags: []cli.Flag{
			cliinternal.CapacityFlag(),
			cliinternal.ValueFlag(),
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
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
	input, err := cliinternal.ResolveInput(cmd)
	if err != nil {
		return err
	}

	opts := Options{
		Input:   input,
		NoPager: cmd.Bool("no-pager"),
		Output:  output.ParseFormat(cmd.String("output")),
	}

	// JSON output disables pager
	noPager := opts.NoPager || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &usecase.UseCase{},
			Stdout:  w,
			Stderr:  cmd.Root().ErrWriter,
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the positions command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	results, err := r.UseCase.Positions(ctx, opts.Input)
	if err != nil {
		cliinternal.PrintHint(r.Stderr, err, opts.Input)

		return err
	}

	if opts.Output == output.FormatJSON {
		items := lo.Map(results, func(res usecase.PositionResult, _ int) JSONOutputItem {
			item := JSONOutputItem{Position: res.Position, After: res.After}
			if res.Err != nil {
				item.Error = res.Err.Error()
			}

			return item
		})

		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(items)
	}

	width := len(strconv.Itoa(len(results) - 1))

	for _, res := range results {
		if res.Err != nil {
			output.Failed(r.Stdout, "position "+strconv.Itoa(res.Position), res.Err)

			continue
		}

		output.Printf(r.Stdout, "%s %s\n",
			colors.Position(fmt.Sprintf("%*d:", width, res.Position)),
			output.Elements(res.After, res.Position),
		)
	}

	return nil
}
