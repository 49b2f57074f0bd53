package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	OK     bool   `yaml:"ok"             json:"ok"`
	Status string `yaml:"status"         json:"status"`
	Note   string `yaml:"note,omitempty" json:"note,omitempty"`
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatYAML}
	if err := p.Print(sample{OK: true, Status: "success"}); err != nil {
		t.Fatal(err)
	}

	var decoded sample
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || decoded.Status != "success" {
		t.Errorf("decoded = %+v", decoded)
	}
	if strings.Contains(buf.String(), "note") {
		t.Errorf("empty note should be omitted:\n%s", buf.String())
	}
}

func TestPrinter_JSONCompact(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatJSON}
	if err := p.Print(sample{Status: "a<b"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", out)
	}
	if !strings.Contains(out, "a<b") {
		t.Errorf("HTML escaping should be disabled, got %s", out)
	}
	var decoded sample
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
}

func TestPrinter_JSONPretty(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatJSON, Pretty: true}
	if err := p.Print(sample{OK: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("pretty JSON should be multi-line, got:\n%s", buf.String())
	}
}

func TestPrinter_UnsupportedFormat(t *testing.T) {
	p := &Printer{W: &bytes.Buffer{}, Format: Format("xml")}
	if err := p.Print(sample{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestConfigure(t *testing.T) {
	old := *Default
	t.Cleanup(func() { *Default = old })

	if err := Configure("json", true); err != nil {
		t.Fatal(err)
	}
	if Default.Format != FormatJSON || !Default.Pretty {
		t.Errorf("Default = %+v", *Default)
	}
	if err := Configure("agent", false); err == nil {
		t.Error("expected error for unknown format")
	}
	if Default.Format != FormatJSON {
		t.Error("a rejected format should leave Default unchanged")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatYAML},
		{"yaml", FormatYAML},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseFormat("agent"); err == nil {
		t.Error("ParseFormat(\"agent\") should fail")
	}
}
