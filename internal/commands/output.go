package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/moasq/pickmenu/internal/menu"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// resultDoc is the machine-readable form of a run. Cancelled runs have no
// selected items.
type resultDoc struct {
	Cancelled bool        `json:"cancelled" yaml:"cancelled"`
	Selected  []menu.Item `json:"selected_items" yaml:"selected_items"`
}

func writeResult(w io.Writer, format string, res *menu.Result) error {
	doc := resultDoc{Cancelled: res == nil, Selected: []menu.Item{}}
	if res != nil {
		doc.Selected = res.Items
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	if res == nil {
		_, err := fmt.Fprint(w, "\nexited\n")
		return err
	}
	if _, err := fmt.Fprint(w, "\nResponses:\n"); err != nil {
		return err
	}
	for _, it := range res.Items {
		if _, err := fmt.Fprintf(w, "%d - %s\n", it.Index, it.Text); err != nil {
			return err
		}
	}
	return nil
}
