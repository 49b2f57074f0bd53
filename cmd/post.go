package cmd

import (
	"fmt"

	"github.com/mj1618/axpost/internal/output"
	"github.com/mj1618/axpost/internal/platform"
	"github.com/spf13/cobra"
)

// PostRequest is a fully resolved keyboard post, before the target handle is opened.
type PostRequest struct {
	App        string
	PID        int
	SystemWide bool
	CharCode   platform.CharCode
	KeyCode    platform.KeyCode
	KeyDown    bool
}

// PostResult is the output of a completed post. Status is the raw AXError.
type PostResult struct {
	OK         bool   `yaml:"ok"                    json:"ok"`
	Status     int32  `yaml:"status"                json:"status"`
	StatusName string `yaml:"status_name"           json:"status_name"`
	App        string `yaml:"app,omitempty"         json:"app,omitempty"`
	PID        int    `yaml:"pid,omitempty"         json:"pid,omitempty"`
	SystemWide bool   `yaml:"system_wide,omitempty" json:"system_wide,omitempty"`
	CharCode   uint16 `yaml:"char_code"             json:"char_code"`
	KeyCode    uint16 `yaml:"key_code"              json:"key_code"`
	KeyDown    bool   `yaml:"key_down"              json:"key_down"`
}

// postArgs holds raw, unparsed post parameters from either flags or tool arguments.
// A nil code was not given; a non-nil code is range-checked, never ignored.
type postArgs struct {
	App        string
	PID        int
	SystemWide bool
	Char       string
	CharCode   *int
	Key        string
	KeyCode    *int
	State      string
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post one key-down or key-up event to an application",
	Long: `Post a single synthetic keyboard event to an application's accessibility element.

The target defaults to the frontmost application. The accessibility status is
reported unchanged; "ok" means the accessibility subsystem accepted the
request, not that the application acted on it.

Examples:
  axpost post --app TextEdit --key a --char a
  axpost post --app TextEdit --key a --char a --state up
  axpost post --pid 4242 --key-code 36
  axpost post --key return --format json`,
	Args: cobra.NoArgs,
	RunE: runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().String("app", "", "Target application by name")
	postCmd.Flags().Int("pid", 0, "Target application by process ID")
	postCmd.Flags().Bool("system-wide", false, "Target the system-wide element instead of an application")
	postCmd.Flags().String("char", "", "Character the event represents (omit to derive it from the key)")
	postCmd.Flags().Int("char-code", 0, "Numeric character code (0-65535)")
	postCmd.Flags().String("key", "", "Key name (see `axpost keys`) or numeric key code")
	postCmd.Flags().Int("key-code", 0, "Numeric virtual key code (0-65535)")
	postCmd.Flags().String("state", "down", "Key transition: down or up")
	postCmd.MarkFlagsMutuallyExclusive("app", "pid", "system-wide")
	postCmd.MarkFlagsMutuallyExclusive("char", "char-code")
	postCmd.MarkFlagsMutuallyExclusive("key", "key-code")
	postCmd.MarkFlagsOneRequired("key", "key-code")
}

func runPost(cmd *cobra.Command, args []string) error {
	var a postArgs
	a.App, _ = cmd.Flags().GetString("app")
	a.PID, _ = cmd.Flags().GetInt("pid")
	a.SystemWide, _ = cmd.Flags().GetBool("system-wide")
	a.Char, _ = cmd.Flags().GetString("char")
	a.Key, _ = cmd.Flags().GetString("key")
	a.CharCode = changedInt(cmd, "char-code")
	a.KeyCode = changedInt(cmd, "key-code")
	a.State, _ = cmd.Flags().GetString("state")

	req, err := parsePostRequest(a)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	result, err := executePost(provider, req)
	if result != nil {
		if printErr := output.Print(result); printErr != nil {
			return printErr
		}
	}
	return err
}

// parsePostRequest converts raw parameters into a PostRequest.
func parsePostRequest(a postArgs) (PostRequest, error) {
	req := PostRequest{App: a.App, PID: a.PID, SystemWide: a.SystemWide}

	targets := 0
	if a.App != "" {
		targets++
	}
	if a.PID != 0 {
		targets++
	}
	if a.SystemWide {
		targets++
	}
	if targets > 1 {
		return req, fmt.Errorf("specify at most one of app, pid, or system-wide")
	}
	if a.PID < 0 {
		return req, fmt.Errorf("invalid pid %d", a.PID)
	}

	switch {
	case a.Char != "" && a.CharCode != nil:
		return req, fmt.Errorf("specify either char or char-code, not both")
	case a.CharCode != nil:
		c, err := codeFromInt("char-code", *a.CharCode)
		if err != nil {
			return req, err
		}
		req.CharCode = platform.CharCode(c)
	default:
		c, err := platform.ParseCharCode(a.Char)
		if err != nil {
			return req, err
		}
		req.CharCode = c
	}

	switch {
	case a.Key != "" && a.KeyCode != nil:
		return req, fmt.Errorf("specify either key or key-code, not both")
	case a.KeyCode != nil:
		c, err := codeFromInt("key-code", *a.KeyCode)
		if err != nil {
			return req, err
		}
		req.KeyCode = platform.KeyCode(c)
	case a.Key != "":
		c, err := platform.ParseKeyCode(a.Key)
		if err != nil {
			return req, err
		}
		req.KeyCode = c
	default:
		return req, fmt.Errorf("specify key or key-code")
	}

	state := a.State
	if state == "" {
		state = "down"
	}
	down, err := platform.ParseKeyTransition(state)
	if err != nil {
		return req, err
	}
	req.KeyDown = down
	return req, nil
}

// changedInt returns the flag's value only when it was set on the command line.
func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	n, _ := cmd.Flags().GetInt(name)
	return &n
}

func codeFromInt(name string, n int) (uint16, error) {
	if n < 0 || n > 0xFFFF {
		return 0, fmt.Errorf("%s %d out of range (0-65535)", name, n)
	}
	return uint16(n), nil
}

// executePost opens the target element, posts once, and releases the element.
// The returned result is nil when the post was never attempted.
// A non-success status yields both a result and a *platform.StatusError.
func executePost(provider *platform.Provider, req PostRequest) (*PostResult, error) {
	if provider.Poster == nil || provider.Elements == nil {
		return nil, fmt.Errorf("keyboard posting not available on this platform")
	}

	target, pid, err := openTarget(provider, req)
	if err != nil {
		return nil, err
	}
	defer provider.Elements.Release(target)

	logger.Debug("posting keyboard event",
		"pid", pid,
		"system_wide", req.SystemWide,
		"char_code", uint16(req.CharCode),
		"key_code", uint16(req.KeyCode),
		"key_down", req.KeyDown)

	status := provider.Poster.PostKeyboardEvent(target, req.CharCode, req.KeyCode, req.KeyDown)

	logger.Debug("keyboard event posted", "pid", pid, "status", int32(status), "status_name", status.String())

	return &PostResult{
		OK:         status.OK(),
		Status:     int32(status),
		StatusName: status.String(),
		App:        req.App,
		PID:        pid,
		SystemWide: req.SystemWide,
		CharCode:   uint16(req.CharCode),
		KeyCode:    uint16(req.KeyCode),
		KeyDown:    req.KeyDown,
	}, status.Err()
}

// openTarget returns a caller-owned element for the request's target and its PID
// (0 for the system-wide element).
func openTarget(provider *platform.Provider, req PostRequest) (platform.Element, int, error) {
	if req.SystemWide {
		el, err := provider.Elements.SystemWideElement()
		return el, 0, err
	}

	pid, err := resolvePID(provider, req)
	if err != nil {
		return 0, 0, err
	}
	el, err := provider.Elements.ApplicationElement(pid)
	if err != nil {
		return 0, 0, err
	}
	return el, pid, nil
}

func resolvePID(provider *platform.Provider, req PostRequest) (int, error) {
	if req.PID > 0 {
		return req.PID, nil
	}
	if provider.Apps == nil {
		return 0, fmt.Errorf("application lookup not available on this platform; use --pid")
	}
	if req.App != "" {
		pid, err := provider.Apps.PIDForApp(req.App)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve app: %w", err)
		}
		return pid, nil
	}
	pid, err := provider.Apps.FrontmostPID()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve frontmost app: %w", err)
	}
	return pid, nil
}
