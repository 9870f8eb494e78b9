package internal

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/slotbuf/internal/cli/output"
	"github.com/mpyw/slotbuf/internal/config"
	"github.com/mpyw/slotbuf/internal/sequence"
	usecase "github.com/mpyw/slotbuf/internal/usecase/insert"
)

// Flag names shared by the root command and its subcommands.
const (
	FlagConfig   = "config"
	FlagCapacity = "capacity"
	FlagPosition = "position"
	FlagValue    = "value"
)

// ConfigFlag returns the --config flag.
func ConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FlagConfig,
		Usage:   "Path to an INI file with default values, capacity, position and value",
		Sources: cli.EnvVars("SLOTBUF_CONFIG"),
	}
}

// CapacityFlag returns the --capacity flag.
func CapacityFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    FlagCapacity,
		Aliases: []string{"c"},
		Usage:   "Total number of slots (default: one more than the number of values)",
		Sources: cli.EnvVars("SLOTBUF_CAPACITY"),
	}
}

// PositionFlag returns the --position flag.
func PositionFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    FlagPosition,
		Aliases: []string{"p"},
		Usage:   "Zero-based index to insert at",
		Sources: cli.EnvVars("SLOTBUF_POSITION"),
	}
}

// ValueFlag returns the --value flag.
func ValueFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    FlagValue,
		Usage:   "Value to insert",
		Sources: cli.EnvVars("SLOTBUF_VALUE"),
	}
}

// ResolveInput builds the use case input from positional values, flags and the config file.
// Flags (and their environment variables) take precedence over the config file,
// which takes precedence over the built-in defaults.
func ResolveInput(cmd *cli.Command) (usecase.Input, error) {
	cfg, err := config.Load(cmd.String(FlagConfig))
	if err != nil {
		return usecase.Input{}, err
	}

	input := usecase.Input{
		Values:   cfg.Values,
		Capacity: cfg.Capacity,
		Position: cfg.Position,
		Value:    cfg.Value,
	}

	if cmd.Args().Present() {
		values, err := ParseValues(cmd.Args().Slice())
		if err != nil {
			return usecase.Input{}, err
		}

		input.Values = values
		input.Capacity = 0
	}

	if cmd.IsSet(FlagCapacity) {
		input.Capacity = cmd.Int(FlagCapacity)
	}

	if cmd.IsSet(FlagPosition) {
		input.Position = cmd.Int(FlagPosition)
	}

	if cmd.IsSet(FlagValue) {
		input.Value = cmd.Int(FlagValue)
	}

	return input, nil
}

// ParseValues parses each argument as an integer.
func ParseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: must be an integer", arg)
		}

		values = append(values, v)
	}

	return values, nil
}

// PrintHint prints a suggestion for errors the user can fix by changing the input.
func PrintHint(w io.Writer, err error, input usecase.Input) {
	switch {
	case errors.Is(err, sequence.ErrInvalidPosition):
		output.Hint(w, "valid positions are 0 through %d", len(input.Values))
	case errors.Is(err, sequence.ErrCapacityExceeded):
		output.Hint(w, "use --capacity=%d or more to leave room for the new value", len(input.Values)+1)
	case errors.Is(err, sequence.ErrInvalidCapacity):
		output.Hint(w, "capacity must not be negative; omit --capacity to leave exactly one spare slot")
	}
}
