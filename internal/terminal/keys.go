package terminal

import (
	"bufio"

	"github.com/moasq/pickmenu/internal/menu"
)

const esc = 0x1b

// DecodeKey reads one key press from r.
//
// Arrow keys arrive as a single burst (ESC [ A), so the rest of an escape
// sequence is only consumed while it is already buffered. A lone Esc, Alt
// combinations and sequences other than plain Up/Down decode as KeyUnknown.
func DecodeKey(r *bufio.Reader) (menu.Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return menu.Key{}, err
	}

	switch {
	case b == esc:
		return decodeEscape(r), nil
	case b == '\r' || b == '\n':
		return menu.Enter, nil
	case b < 0x20 || b == 0x7f:
		return menu.Key{Kind: menu.KeyUnknown}, nil
	case b < 0x80:
		return menu.Key{Kind: menu.KeyRune, Rune: rune(b)}, nil
	}

	// Multi-byte UTF-8.
	if err := r.UnreadByte(); err != nil {
		return menu.Key{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return menu.Key{}, err
	}
	return menu.Key{Kind: menu.KeyRune, Rune: ch}, nil
}

func decodeEscape(r *bufio.Reader) menu.Key {
	unknown := menu.Key{Kind: menu.KeyUnknown}
	if r.Buffered() == 0 {
		return unknown
	}

	intro, _ := r.ReadByte()
	if intro != '[' && intro != 'O' {
		return unknown
	}

	// Parameter and intermediate bytes, then a final byte in 0x40-0x7e.
	params := 0
	for r.Buffered() > 0 {
		c, _ := r.ReadByte()
		if c >= 0x40 && c <= 0x7e {
			if params > 0 {
				return unknown
			}
			switch c {
			case 'A':
				return menu.Up
			case 'B':
				return menu.Down
			}
			return unknown
		}
		params++
	}
	return unknown
}
