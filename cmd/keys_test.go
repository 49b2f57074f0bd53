package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mj1618/axpost/internal/output"
	"github.com/mj1618/axpost/internal/platform"
)

func TestKeyTable(t *testing.T) {
	entries := keyTable()
	if len(entries) != len(platform.KeyNames()) {
		t.Fatalf("entries = %d, want %d", len(entries), len(platform.KeyNames()))
	}
	for _, e := range entries {
		if e.Name == "return" && e.Code != 0x24 {
			t.Errorf("return = %#x, want 0x24", e.Code)
		}
	}
}

func TestKeysCommand_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	old := *output.Default
	output.Default.W = &buf
	t.Cleanup(func() {
		*output.Default = old
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("format", "yaml")
	})

	rootCmd.SetArgs([]string{"keys", "--format", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var entries []KeyEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(entries) == 0 {
		t.Error("no entries")
	}
}
