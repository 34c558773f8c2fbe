package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTicketFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticket.ini")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTicketFile(t *testing.T) {
	path := writeTicketFile(t, `[ticket]
numbers = 5, 12, 23, 34, 45
megaball = 7
megaplier = true
draws = 4
purchased = 2023-01-01
`)

	ticket, err := LoadTicketFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5,12,23,34,45", ticket.Numbers)
	assert.Equal(t, "7", ticket.Megaball)
	assert.Equal(t, "4", ticket.Draws)
	assert.Equal(t, "2023-01-01", ticket.Purchased)
	assert.True(t, ticket.Megaplier)
}

func TestLoadTicketFileMissingNumbers(t *testing.T) {
	path := writeTicketFile(t, `[ticket]
megaball = 7
purchased = 2023-01-01
`)

	ticket, err := LoadTicketFile(path)
	assert.ErrorIs(t, err, ErrInvalidTicketFile)
	assert.Nil(t, ticket)
}

func TestLoadTicketFileMissingSection(t *testing.T) {
	path := writeTicketFile(t, `numbers = 5,12,23,34,45
megaball = 7
`)

	ticket, err := LoadTicketFile(path)
	assert.ErrorIs(t, err, ErrInvalidTicketFile)
	assert.Nil(t, ticket)
}

func TestLoadTicketFileNotFound(t *testing.T) {
	ticket, err := LoadTicketFile(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorIs(t, err, ErrTicketFileNotFound)
	assert.Nil(t, ticket)
}

func TestLoadTicketFileExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticket.ini")
	require.NoError(t, os.WriteFile(path, []byte("[ticket]\nnumbers = 1,2,3,4,5\n"), 0o644))
	t.Setenv("TICKET_DIR", dir)

	ticket, err := LoadTicketFile("$TICKET_DIR/ticket.ini")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5", ticket.Numbers)
}
