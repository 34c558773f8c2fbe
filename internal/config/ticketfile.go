package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrTicketFileNotFound is returned when the ticket file does not exist
	ErrTicketFileNotFound = errors.New("ticket file not found")
	// ErrInvalidTicketFile is returned when the ticket file cannot be parsed
	// or is missing the ticket section
	ErrInvalidTicketFile = errors.New("invalid ticket file")
)

// TicketFile holds the raw fields read from a ticket file. Values are not
// validated here; the ticket service validator produces the canonical ticket.
type TicketFile struct {
	Numbers   string
	Megaball  string
	Draws     string
	Purchased string
	Megaplier bool
}

// LoadTicketFile reads an INI-style ticket file with a [ticket] section
// containing the keys numbers, megaball, megaplier, draws and purchased.
// Environment variables and a leading ~ in the path are expanded.
func LoadTicketFile(path string) (*TicketFile, error) {
	filename := expandPath(path)

	info, err := os.Stat(filename)
	if err != nil || info.IsDir() {
		return nil, ErrTicketFileNotFound
	}

	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, ErrInvalidTicketFile
	}

	if !v.IsSet("ticket.numbers") {
		return nil, ErrInvalidTicketFile
	}

	ticket := &TicketFile{
		Numbers:   strings.ReplaceAll(v.GetString("ticket.numbers"), " ", ""),
		Megaball:  v.GetString("ticket.megaball"),
		Draws:     v.GetString("ticket.draws"),
		Purchased: v.GetString("ticket.purchased"),
		Megaplier: v.GetBool("ticket.megaplier"),
	}

	return ticket, nil
}

// expandPath expands environment variables and a leading ~ in a file path
func expandPath(path string) string {
	expanded := os.ExpandEnv(path)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
		}
	}
	return expanded
}
