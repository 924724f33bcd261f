// Package ui renders modelgen's terminal output: per-table status lines,
// the run summary, table listings and Cargo-style error reports.
//
// Colour is enabled only when stdout is a terminal, NO_COLOR is unset and
// TERM is not "dumb". Every styling helper returns plain text otherwise.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Mode determines how output is formatted.
type Mode int

const (
	// ModeTTY enables styled output for interactive terminals.
	ModeTTY Mode = iota
	// ModePlain outputs text without escape sequences (pipes, CI).
	ModePlain
)

// DetectMode inspects stdout and the environment.
func DetectMode() Mode {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ModePlain
	}
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return ModePlain
	}
	return ModeTTY
}

var mode = DetectMode()

// SetMode overrides the mode detected from NO_COLOR, TERM and the terminal.
func SetMode(m Mode) {
	mode = m
}

// EnableColors reports whether styling is applied.
func EnableColors() bool {
	return mode == ModeTTY
}
