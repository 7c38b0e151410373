package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/moasq/pickmenu/internal/menu"
)

func TestDriverOutputSequences(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(strings.NewReader(""), &out)

	steps := []struct {
		do   func() error
		want string
	}{
		{d.ClearScreen, "\033[2J"},
		{func() error { return d.MoveCursor(1, 1) }, "\033[1;1H"},
		{func() error { return d.MoveCursor(4, 7) }, "\033[7;4H"},
		{d.HideCursor, "\033[?25l"},
		{d.ShowCursor, "\033[?25h"},
		{func() error { return d.Write("abc") }, "abc"},
		{func() error { return d.WriteLine("line") }, "line\r\n"},
	}
	for _, s := range steps {
		out.Reset()
		if err := s.do(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.String(); got != s.want {
			t.Errorf("wrote %q, want %q", got, s.want)
		}
	}
}

func TestStdioDrawsOnStderr(t *testing.T) {
	d := Stdio()
	if d.out != os.Stderr {
		t.Fatal("menu must draw on stderr so stdout only carries the result")
	}
	if d.in != os.Stdin {
		t.Fatal("keys must be read from stdin")
	}
}

func TestDriverEnterRawRequiresTerminal(t *testing.T) {
	d := NewDriver(strings.NewReader(""), &bytes.Buffer{})
	if d.IsTerminal() {
		t.Fatal("string reader reported as terminal")
	}
	if _, err := d.EnterRaw(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}

func TestDriverMenuOnNonTerminalFails(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(strings.NewReader("\r"), &out)
	res, err := menu.Run(d, "prompt", []string{"a"}, menu.Simple)
	if !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if res != nil || out.Len() != 0 {
		t.Fatalf("expected nothing drawn, got result=%v output=%q", res, out.String())
	}
}

func TestDriverFullMenuFrame(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(strings.NewReader("\x1b[B \r"), &out)

	// Hide EnterRaw so the draw loop runs on a plain buffer.
	var tty menu.Terminal = struct {
		menu.Output
		menu.Input
	}{d, d}

	res, err := menu.Run(tty, "Choose", []string{"one", "two"}, menu.Check)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := res.Texts(); len(got) != 1 || got[0] != "two" {
		t.Fatalf("selected %v, want [two]", got)
	}

	screen := out.String()
	if !strings.HasPrefix(screen, "\033[?25l\033[2J\033[1;1HChoose\r\n\r\n") {
		t.Fatalf("unexpected frame start: %q", screen)
	}
	lastFrame := screen[strings.LastIndex(screen, "\033[2J"):]
	wantRows := "[ ] one" + menu.ResetColor + "\r\n" + menu.HighlightColor + "[*] two" + menu.ResetColor + "\r\n"
	if !strings.Contains(lastFrame, wantRows) {
		t.Fatalf("last frame %q does not contain %q", lastFrame, wantRows)
	}
	if !strings.HasSuffix(screen, "\033[?25h") {
		t.Fatalf("cursor not restored: %q", screen)
	}
}
