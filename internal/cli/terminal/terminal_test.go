package terminal_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/slotbuf/internal/cli/terminal"
)

func TestGetHeightFromWriter_NonFder(t *testing.T) {
	t.Parallel()

	// bytes.Buffer doesn't implement Fder
	var buf bytes.Buffer

	_, ok := terminal.GetHeightFromWriter(&buf)
	assert.False(t, ok)
}

func TestIsTerminalWriter_NonFder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.False(t, terminal.IsTerminalWriter(&buf))
}
