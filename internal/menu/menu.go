// Package menu implements an interactive terminal selection menu.
//
// A Menu draws a prompt and a list of options, reads keys one at a time and
// returns the options the user picked. Up and Down move the highlight, Space
// marks the highlighted option (Radio and Check modes), Enter confirms and q
// cancels. Any other key is ignored without redrawing.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Item is one selected option together with its position in the option list.
type Item struct {
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
}

// Result holds the confirmed selection, ordered by index.
type Result struct {
	Items []Item `json:"selected_items" yaml:"selected_items"`
}

// Indices returns the selected option indices in ascending order.
func (r *Result) Indices() []int {
	out := make([]int, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Index
	}
	return out
}

// Texts returns the selected option texts in index order.
func (r *Result) Texts() []string {
	out := make([]string, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Text
	}
	return out
}

// Menu runs selection menus on a terminal.
type Menu struct {
	term   Terminal
	logger *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger used for debug tracing of key handling.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Menu drawing on t.
func New(t Terminal, opts ...Option) *Menu {
	m := &Menu{
		term:   t,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run is a shorthand for New(t).Run(prompt, options, mode).
func Run(t Terminal, prompt string, options []string, mode Mode) (*Result, error) {
	return New(t).Run(prompt, options, mode)
}

// Run shows the menu and blocks until the user confirms or cancels.
// A nil Result with a nil error means the user cancelled, or options was
// empty. A non-nil error means the terminal failed and the menu was aborted.
// The cursor is visible again when Run returns.
func (m *Menu) Run(prompt string, options []string, mode Mode) (res *Result, err error) {
	if len(options) == 0 {
		m.logger.Debug("no options, nothing to select")
		return nil, nil
	}

	if rm, ok := m.term.(RawModer); ok {
		restore, rerr := rm.EnterRaw()
		if rerr != nil {
			return nil, fmt.Errorf("enter raw mode: %w", rerr)
		}
		defer func() {
			if rerr := restore(); rerr != nil && err == nil {
				err = fmt.Errorf("restore terminal: %w", rerr)
			}
		}()
	}

	if err := m.term.HideCursor(); err != nil {
		return nil, fmt.Errorf("hide cursor: %w", err)
	}
	defer func() {
		if serr := m.term.ShowCursor(); serr != nil {
			err = errors.Join(err, fmt.Errorf("show cursor: %w", serr))
		}
	}()

	s := newState(prompt, options, mode)
	for {
		if err := m.render(s); err != nil {
			return nil, fmt.Errorf("render menu: %w", err)
		}

		// Unrecognized keys are swallowed here without a redraw.
		var act action
		for act == actionIgnore {
			key, err := m.term.NextKey()
			if err != nil {
				return nil, fmt.Errorf("read key: %w", err)
			}
			act = s.apply(key)
			m.logger.Debug("key", "key", key, "action", act, "cursor", s.cursor)
		}

		switch act {
		case actionConfirm:
			res := s.result()
			m.logger.Debug("confirmed", "mode", mode, "selected", res.Indices())
			return res, nil
		case actionCancel:
			m.logger.Debug("cancelled", "mode", mode)
			return nil, nil
		}
	}
}

type action int

const (
	actionIgnore action = iota
	actionRedraw
	actionConfirm
	actionCancel
)

func (a action) String() string {
	switch a {
	case actionIgnore:
		return "ignore"
	case actionRedraw:
		return "redraw"
	case actionConfirm:
		return "confirm"
	case actionCancel:
		return "cancel"
	}
	return "unknown"
}

// state is the cursor and selection of a single Run.
type state struct {
	prompt   string
	options  []string
	mode     Mode
	cursor   int
	selected map[int]struct{}
}

func newState(prompt string, options []string, mode Mode) *state {
	return &state{
		prompt:   prompt,
		options:  options,
		mode:     mode,
		selected: make(map[int]struct{}),
	}
}

func (s *state) isSelected(i int) bool {
	_, ok := s.selected[i]
	return ok
}

// apply performs the transition for key and reports what the loop should do next.
func (s *state) apply(key Key) action {
	switch key.Kind {
	case KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
		return actionRedraw
	case KeyDown:
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
		return actionRedraw
	case KeyEnter:
		if s.mode == Simple {
			s.selected = map[int]struct{}{s.cursor: {}}
		}
		return actionConfirm
	case KeyRune:
		switch key.Rune {
		case ' ':
			s.mark(s.cursor)
			return actionRedraw
		case 'q':
			return actionCancel
		}
	}
	return actionIgnore
}

// mark applies Space to row i.
func (s *state) mark(i int) {
	switch s.mode {
	case Simple:
		// Simple mode has no persistent marks.
	case Radio:
		s.selected = map[int]struct{}{i: {}}
	case Check:
		if s.isSelected(i) {
			delete(s.selected, i)
		} else {
			s.selected[i] = struct{}{}
		}
	}
}

// result builds the ordered selection.
func (s *state) result() *Result {
	idx := make([]int, 0, len(s.selected))
	for i := range s.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	items := make([]Item, len(idx))
	for n, i := range idx {
		items[n] = Item{Index: i, Text: s.options[i]}
	}
	return &Result{Items: items}
}
