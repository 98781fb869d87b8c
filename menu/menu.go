// Package menu implements the numbered instance picker of the interactive CLI.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Selector prints a numbered list and reads the user's choice line by line.
type Selector struct {
	in    *bufio.Scanner
	out   io.Writer
	title string
}

// New returns a Selector reading from in and prompting on out.
func New(in io.Reader, out io.Writer, title string) *Selector {
	return &Selector{in: bufio.NewScanner(in), out: out, title: title}
}

// Choose shows items as 1..len(items) plus "0 - Quit" and returns the
// zero-based index of the picked item. ok is false when the user quits or
// the input ends. Invalid or out-of-range entries print a message and show
// the list again.
func (s *Selector) Choose(items []string) (idx int, ok bool, err error) {
	for {
		if err = s.show(items); err != nil {
			return 0, false, err
		}
		if !s.in.Scan() {
			if err = s.in.Err(); err != nil {
				return 0, false, fmt.Errorf("menu: read: %w", err)
			}
			return 0, false, nil // EOF
		}
		opt, convErr := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		switch {
		case convErr == nil && opt == 0:
			return 0, false, nil
		case convErr == nil && opt >= 1 && opt <= len(items):
			return opt - 1, true, nil
		}
		if _, err = fmt.Fprintln(s.out, "Invalid option. Try again."); err != nil {
			return 0, false, err
		}
	}
}

func (s *Selector) show(items []string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== %s ===\nChoose an instance:\n", s.title)
	for i, it := range items {
		fmt.Fprintf(&sb, "  %d - %s\n", i+1, it)
	}
	sb.WriteString("  0 - Quit\nOption: ")
	_, err := io.WriteString(s.out, sb.String())

	return err
}
