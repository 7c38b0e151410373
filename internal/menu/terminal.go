package menu

// KeyKind identifies a logical key event.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyRune
)

// Key is one logical key press. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func (k Key) String() string {
	switch k.Kind {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyRune:
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	}
	return "unknown"
}

// Convenience keys.
var (
	Up    = Key{Kind: KeyUp}
	Down  = Key{Kind: KeyDown}
	Enter = Key{Kind: KeyEnter}
	Space = Key{Kind: KeyRune, Rune: ' '}
	Quit  = Key{Kind: KeyRune, Rune: 'q'}
)

// Output is the drawing side of the terminal.
type Output interface {
	ClearScreen() error
	// MoveCursor positions the draw cursor. col and row are 1-based.
	MoveCursor(col, row int) error
	HideCursor() error
	ShowCursor() error
	Write(text string) error
	WriteLine(text string) error
}

// Input delivers key events. NextKey blocks until a key is available.
type Input interface {
	NextKey() (Key, error)
}

// Terminal is everything the menu needs from the terminal.
type Terminal interface {
	Output
	Input
}

// RawModer is implemented by terminals that must be switched into raw mode
// before keys can be read one at a time. The returned function restores the
// previous mode.
type RawModer interface {
	EnterRaw() (restore func() error, err error)
}
