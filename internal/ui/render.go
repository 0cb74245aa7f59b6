package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output selects how command results are printed.
type Output string

const (
	OutputTable Output = "table"
	OutputJSON  Output = "json"
	OutputYAML  Output = "yaml"
)

// ParseOutput validates an --output flag value.
func ParseOutput(s string) (Output, error) {
	switch o := Output(strings.ToLower(s)); o {
	case OutputTable, OutputJSON, OutputYAML:
		return o, nil
	case "":
		return OutputTable, nil
	default:
		return "", fmt.Errorf("unknown output %q — use table, json or yaml", s)
	}
}

// Render writes v to w in the selected format. table is called for
// OutputTable and must return the fully styled view.
func Render(w io.Writer, out Output, v any, table func() string) error {
	switch out {
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, table())
		return err
	}
}

// RenderRaw writes a raw JSON body. YAML output re-encodes it; table output
// falls back to indented JSON since the shape is unknown.
func RenderRaw(w io.Writer, out Output, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if out == OutputYAML {
		return Render(w, out, v, nil)
	}
	return Render(w, OutputJSON, v, nil)
}
