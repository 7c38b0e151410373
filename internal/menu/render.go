package menu

// Escape sequences for the highlighted row.
const (
	HighlightColor = "\033[38;5;4m"
	ResetColor     = "\033[39m"
)

// RenderItem builds the line for one option. The highlight color is only
// emitted for the highlighted row, the reset is always emitted.
func RenderItem(mode Mode, text string, selected, highlighted bool) string {
	start := ""
	if highlighted {
		start = HighlightColor
	}
	return start + mode.icon(selected) + " " + text + ResetColor
}

func (m *Menu) render(s *state) error {
	out := m.term
	if err := out.ClearScreen(); err != nil {
		return err
	}
	if err := out.MoveCursor(1, 1); err != nil {
		return err
	}
	if err := out.WriteLine(s.prompt); err != nil {
		return err
	}
	if err := out.WriteLine(""); err != nil {
		return err
	}
	for i, opt := range s.options {
		line := RenderItem(s.mode, opt, s.isSelected(i), i == s.cursor)
		if err := out.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
