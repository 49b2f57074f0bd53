package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// Printer encodes command results. A nil W writes to stdout.
type Printer struct {
	W      io.Writer
	Format Format
	Pretty bool // JSON only; YAML is always block style
}

// Default is the printer used by Print, set by the root command's flags.
var Default = &Printer{Format: FormatYAML}

// Configure points Default at the given --format and --pretty values.
func Configure(format string, pretty bool) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	Default.Format = f
	Default.Pretty = pretty
	return nil
}

// Print encodes v with Default.
func Print(v interface{}) error {
	return Default.Print(v)
}

// Print encodes v as one JSON line (or indented JSON when Pretty) or one YAML document.
func (p *Printer) Print(v interface{}) error {
	w := p.W
	if w == nil {
		w = os.Stdout
	}

	switch p.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if p.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", p.Format)
	}
}
