package cmd

import (
	"github.com/mj1618/axpost/internal/output"
	"github.com/mj1618/axpost/internal/platform"
	"github.com/spf13/cobra"
)

// KeyEntry is one row of the named key table.
type KeyEntry struct {
	Name string `yaml:"name" json:"name"`
	Code uint16 `yaml:"code" json:"code"`
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List named virtual key codes accepted by --key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(keyTable())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func keyTable() []KeyEntry {
	names := platform.KeyNames()
	entries := make([]KeyEntry, 0, len(names))
	for _, name := range names {
		code, _ := platform.LookupKeyCode(name)
		entries = append(entries, KeyEntry{Name: name, Code: uint16(code)})
	}
	return entries
}
