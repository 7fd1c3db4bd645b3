// Command strong-hash reads a pass-phrase from the terminal and prints its
// encoded PBKDF2 hash, ready to be stored and later checked with
// hashing.PasswordHasher.Verify.
//
// Usage:
//
//	strong-hash
//
// The pass-phrase must be typed interactively; the command refuses to read
// it from a pipe or file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/cmosher01/Strong-Password-Hash/hashing"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errNotTerminal = errors.New("pass-phrases must be entered manually in a terminal")

// terminal is the interactive input channel.
type terminal interface {
	IsTerminal() bool
	ReadPassword(prompt string) ([]byte, error)
}

// stdinTerminal reads from standard input without echo, prompting on
// standard error so standard output carries only the hash.
type stdinTerminal struct{}

func (stdinTerminal) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (stdinTerminal) ReadPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	h, err := hashing.NewDefaultPasswordHasher()
	if err != nil {
		logger.Error("initialise hasher", "err", err)
		os.Exit(exitError)
	}
	os.Exit(run(os.Args[1:], stdinTerminal{}, h, os.Stdout, logger))
}

func run(args []string, tty terminal, h hashing.Hasher, stdout io.Writer, logger *slog.Logger) int {
	if len(args) > 0 {
		logger.Error("invalid option specified; usage: strong-hash", "args", args)
		return exitUsage
	}
	if !tty.IsTerminal() {
		logger.Error("refusing to read pass-phrase", "err", errNotTerminal)
		return exitError
	}

	password, err := tty.ReadPassword("pass-phrase: ")
	if err != nil {
		logger.Error("read pass-phrase", "err", err)
		return exitError
	}

	stored, err := h.Hash(string(password))
	clear(password)
	if err != nil {
		logger.Error("hash pass-phrase", "err", err)
		return exitError
	}

	if _, err := fmt.Fprintln(stdout, stored); err != nil {
		logger.Error("write hash", "err", err)
		return exitError
	}
	return exitOK
}
