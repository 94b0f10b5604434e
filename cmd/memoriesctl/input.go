package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

var errEmptyPassword = errors.New("empty password")

// readSecret reads a password without echo from a terminal, or one line from
// the app's reader otherwise. fromStdin forces the line read.
func readSecret(c *cli.Context, prompt string, fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if !fromStdin && isTerminal(fd) {
		fmt.Fprint(c.App.ErrWriter, prompt)
		pw, err := readPassword(fd)
		fmt.Fprintln(c.App.ErrWriter)
		if err != nil {
			return "", err
		}
		if len(pw) == 0 {
			return "", errEmptyPassword
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(c.App.Reader).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errEmptyPassword
		}
		return "", err
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errEmptyPassword
	}
	return pw, nil
}
