package evalutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chaisql/scalar"
	"github.com/mattn/go-isatty"
)

// Format of the results printed by the CLI.
type Format int

const (
	// FormatText prints "TYPE VALUE" lines.
	FormatText Format = iota
	// FormatJSON prints one JSON object per result.
	FormatJSON
)

// FormatFor returns the text format if f is a terminal,
// and JSON otherwise.
func FormatFor(f *os.File) Format {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	return FormatJSON
}

type jsonResult struct {
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value"`
	Tainted bool            `json:"tainted,omitempty"`
}

// WriteValue prints v to w in the given format.
func WriteValue(w io.Writer, v *scalar.Value, format Format) error {
	if format == FormatJSON {
		data, err := v.MarshalJSON()
		if err != nil {
			return err
		}

		return json.NewEncoder(w).Encode(jsonResult{
			Type:    v.Type().String(),
			Value:   data,
			Tainted: v.IsTainted(),
		})
	}

	if v.IsUndefined() {
		_, err := fmt.Fprintln(w, v.Type())
		return err
	}

	_, err := fmt.Fprintf(w, "%s %s\n", v.Type(), v)
	return err
}
