// Package pager provides terminal pager functionality for long outputs.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/slotbuf/internal/cli/terminal"
)

// Page displays text through the interactive pager.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var Page = func(text string) error {
	return moor.PageFromString(text, moor.Options{})
}

// WithPagerWriter executes fn with pager support.
// If noPager is true or stdout is not a TTY, output goes directly to stdout.
// If the output fits within the terminal height, it's written directly without paging.
// Otherwise, output is displayed through the pager.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager || !terminal.IsTerminalWriter(stdout) {
		return fn(stdout)
	}

	// Real TTY - collect output first
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	if fitsInTerminal(stdout, buf.String()) {
		_, err := stdout.Write(buf.Bytes())

		return err
	}

	return Page(buf.String())
}

// fitsInTerminal returns true if the content fits within the terminal height.
// Returns false if terminal size cannot be determined.
func fitsInTerminal(stdout io.Writer, content string) bool {
	height, ok := terminal.GetHeightFromWriter(stdout)
	if !ok {
		return false
	}

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	// Leave one line for the prompt
	return lines < height
}
