package cmd

import (
	"github.com/mj1618/axpost/internal/output"
	"github.com/mj1618/axpost/internal/platform"
	"github.com/spf13/cobra"
)

// PermissionsResult reports accessibility trust for this process.
type PermissionsResult struct {
	Trusted  bool   `yaml:"trusted"            json:"trusted"`
	Guidance string `yaml:"guidance,omitempty" json:"guidance,omitempty"`
}

const accessibilityGuidance = "Grant permission at: System Settings > Privacy & Security > Accessibility. " +
	"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command), then restart it."

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Report whether accessibility permission is granted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := platform.NewProvider()
		if err != nil {
			return err
		}
		return output.Print(checkPermissions(provider))
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}

func checkPermissions(provider *platform.Provider) PermissionsResult {
	if provider.Permissions != nil && provider.Permissions.IsTrusted() {
		return PermissionsResult{Trusted: true}
	}
	return PermissionsResult{Guidance: accessibilityGuidance}
}
