package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/slotbuf/internal/cli/commands"
)

func TestApp_Default(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	app := appcli.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	require.NoError(t, app.Run(t.Context(), []string{"slotbuf"}))
	assert.Equal(t, "10 20 25 30 40 50", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestApp_DefaultWithConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slotbuf.ini")
	require.NoError(t, os.WriteFile(path, []byte("[sequence]\nvalues = 1, 3\n\n[insert]\nposition = 1\nvalue = 2\n"), 0o600))

	var stdout bytes.Buffer

	app := appcli.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}

	require.NoError(t, app.Run(t.Context(), []string{"slotbuf", "--config", path}))
	assert.Equal(t, "1 2 3", stdout.String())
}

func TestApp_InvalidConfigPosition(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "slotbuf.ini")
	require.NoError(t, os.WriteFile(path, []byte("[insert]\nposition = 9\n"), 0o600))

	var stdout, stderr bytes.Buffer

	app := appcli.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(t.Context(), []string{"slotbuf", "--config", path})
	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "valid positions are 0 through 5")
}

func TestApp_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	app := appcli.MakeApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(t.Context(), []string{"slotbuf", "bogus"})
	require.ErrorIs(t, err, appcli.ErrUnknownCommand)
	assert.Contains(t, stdout.String()+stderr.String(), "Unknown command: bogus")
}
