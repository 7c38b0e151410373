package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/moasq/pickmenu/internal/menu"
	"gopkg.in/yaml.v3"
)

// DefaultPrompt is shown when neither a file nor a flag sets the prompt.
const DefaultPrompt = "Please, select your choice below.\r\n" +
	"Up and Down to navigate | Space for selection | Enter to confirm | Q to exit"

// MenuFile is the on-disk menu definition.
//
//	prompt: Pick your toppings
//	mode: check
//	options:
//	  - Cheese
//	  - Olives
type MenuFile struct {
	Prompt  string   `yaml:"prompt"`
	Mode    string   `yaml:"mode"`
	Options []string `yaml:"options"`
}

// Config holds a fully resolved menu invocation.
type Config struct {
	Prompt  string
	Mode    menu.Mode
	Options []string
}

// Overrides are values given on the command line. Empty fields are unset.
type Overrides struct {
	File    string
	Prompt  string
	Mode    string
	Options []string
}

// Default returns the demo menu used when no options are given anywhere.
func Default() *Config {
	opts := make([]string, 6)
	for i := range opts {
		opts[i] = fmt.Sprintf("Option %d", i+1)
	}
	return &Config{
		Prompt:  DefaultPrompt,
		Mode:    menu.Check,
		Options: opts,
	}
}

// Load reads a menu definition file.
func Load(path string) (*MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	var mf MenuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", path, err)
	}
	if mf.Mode != "" {
		if _, err := menu.ParseMode(mf.Mode); err != nil {
			return nil, fmt.Errorf("menu file %s: %w", path, err)
		}
	}
	return &mf, nil
}

// Resolve builds the Config for one run. Precedence, lowest first:
// defaults, menu file, flags, positional options.
// The demo options are only used when no file is given and no options are
// passed, so an explicitly empty option list stays empty.
func Resolve(o Overrides) (*Config, error) {
	cfg := Default()

	if o.File != "" {
		mf, err := Load(o.File)
		if err != nil {
			return nil, err
		}
		cfg.Options = mf.Options
		if mf.Prompt != "" {
			cfg.Prompt = crlf(strings.TrimRight(mf.Prompt, "\n"))
		}
		if mf.Mode != "" {
			cfg.Mode, _ = menu.ParseMode(mf.Mode)
		}
	}

	if o.Prompt != "" {
		cfg.Prompt = unescapePrompt(o.Prompt)
	}
	if o.Mode != "" {
		mode, err := menu.ParseMode(o.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if len(o.Options) > 0 {
		cfg.Options = o.Options
	}
	return cfg, nil
}

// unescapePrompt turns a literal \n typed on the command line into a line
// break.
func unescapePrompt(s string) string {
	return crlf(strings.ReplaceAll(s, `\n`, "\n"))
}

// crlf makes every line break \r\n, which raw mode needs.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
