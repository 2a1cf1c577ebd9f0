package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// texter is implemented by results with a human-readable rendering.
type texter interface {
	writeText(w io.Writer) error
}

// render writes v in the configured format.
func (a *app) render(v texter) error {
	switch a.cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return v.writeText(a.out)
	default:
		return fmt.Errorf("%w: %q for this command", ErrBadFormat, a.cfg.Format)
	}
}
