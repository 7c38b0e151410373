// Package terminal drives a real terminal for the menu: raw mode, cursor and
// screen control, and decoding of key presses.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/moasq/pickmenu/internal/menu"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by EnterRaw when the input is not a tty.
var ErrNotTerminal = errors.New("input is not a terminal")

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Driver implements menu.Terminal on top of an input stream and an output
// writer. Lines are terminated with CRLF because raw mode disables output
// post-processing.
type Driver struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

var (
	_ menu.Terminal = (*Driver)(nil)
	_ menu.RawModer = (*Driver)(nil)
)

// NewDriver creates a driver reading keys from in and drawing to out.
func NewDriver(in io.Reader, out io.Writer) *Driver {
	return &Driver{
		in:  in,
		r:   bufio.NewReaderSize(in, 64),
		out: out,
	}
}

// Stdio returns a driver reading stdin and drawing on stderr, leaving stdout
// free for the result.
func Stdio() *Driver {
	return NewDriver(os.Stdin, os.Stderr)
}

// IsTerminal reports whether the driver's input is a tty.
func (d *Driver) IsTerminal() bool {
	f, ok := d.in.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EnterRaw puts the input terminal into raw mode.
func (d *Driver) EnterRaw() (func() error, error) {
	if !d.IsTerminal() {
		return nil, ErrNotTerminal
	}
	fd := int(d.in.(fder).Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("make raw: %w", err)
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}

// ClearScreen erases the whole screen. The draw cursor is not moved.
func (d *Driver) ClearScreen() error {
	return d.Write(clearScreen)
}

// MoveCursor moves to the 1-based column and row.
func (d *Driver) MoveCursor(col, row int) error {
	return d.Write(fmt.Sprintf("\033[%d;%dH", row, col))
}

// HideCursor makes the terminal cursor invisible.
func (d *Driver) HideCursor() error {
	return d.Write(hideCursor)
}

// ShowCursor makes the terminal cursor visible again.
func (d *Driver) ShowCursor() error {
	return d.Write(showCursor)
}

// Write sends text to the output unchanged, escape sequences included.
func (d *Driver) Write(text string) error {
	_, err := io.WriteString(d.out, text)
	return err
}

// WriteLine writes text followed by CRLF.
func (d *Driver) WriteLine(text string) error {
	return d.Write(text + "\r\n")
}

// NextKey blocks until the next key press and decodes it.
func (d *Driver) NextKey() (menu.Key, error) {
	return DecodeKey(d.r)
}
