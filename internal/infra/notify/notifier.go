// Package notify provides a desktop notification implementation of
// the Notifier port, shelling out to the platform notifier command.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mkondo/remindo/internal/domain"
)

// candidates are the notifier commands probed during permission
// requests, in preference order.
var candidates = []string{"notify-send", "terminal-notifier", "osascript"}

// permissionState is the JSON shape of the persisted state file.
type permissionState struct {
	Permission domain.Permission `json:"permission"`
}

// Notifier implements domain.Notifier. Permission state is persisted
// in a small JSON file so that a denial survives restarts; denial is
// terminal and is never re-probed.
type Notifier struct {
	lookPath  func(string) (string, error)
	runCmd    func(name string, args ...string) error
	logger    domain.Logger
	statePath string
	command   string // configured override, empty = probe candidates
}

// New creates a Notifier persisting permission state at statePath.
// command, when non-empty, overrides platform command detection.
func New(statePath, command string, logger domain.Logger) *Notifier {
	return &Notifier{
		statePath: statePath,
		command:   command,
		logger:    logger,
		lookPath:  exec.LookPath,
		runCmd: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Permission returns the persisted permission state. A missing or
// unreadable state file means permission was never requested.
func (n *Notifier) Permission() domain.Permission {
	data, err := os.ReadFile(n.statePath)
	if err != nil {
		return domain.PermissionDefault
	}
	var state permissionState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.PermissionDefault
	}
	switch state.Permission {
	case domain.PermissionGranted, domain.PermissionDenied:
		return state.Permission
	default:
		return domain.PermissionDefault
	}
}

// RequestPermission probes for a usable notifier command and persists
// the outcome. A previous denial is terminal and short-circuits.
func (n *Notifier) RequestPermission(ctx context.Context) (domain.Permission, error) {
	if err := ctx.Err(); err != nil {
		return domain.PermissionDefault, err
	}

	current := n.Permission()
	if current != domain.PermissionDefault {
		return current, nil
	}

	perm := domain.PermissionDenied
	if _, err := n.resolveCommand(); err == nil {
		perm = domain.PermissionGranted
	}

	if err := n.saveState(perm); err != nil {
		return domain.PermissionDefault, fmt.Errorf("save permission state: %w", err)
	}
	return perm, nil
}

// Notify emits a notification. No-op when permission is not granted
// or the command is unavailable; emission failures are logged, not
// surfaced.
func (n *Notifier) Notify(title, body string) error {
	if n.Permission() != domain.PermissionGranted {
		return nil
	}

	name, err := n.resolveCommand()
	if err != nil {
		return nil
	}

	if err := n.runCmd(name, notifyArgs(name, title, body)...); err != nil {
		if n.logger != nil {
			n.logger.Debug("notify", fmt.Sprintf("%s failed: %v", name, err))
		}
	}
	return nil
}

// resolveCommand returns the notifier command to use.
func (n *Notifier) resolveCommand() (string, error) {
	if n.command != "" {
		return n.lookPath(n.command)
	}
	for _, c := range candidates {
		if path, err := n.lookPath(c); err == nil {
			return path, nil
		}
	}
	return "", domain.ErrNotifierUnavailable
}

// notifyArgs builds the argument list for the given notifier command.
func notifyArgs(name, title, body string) []string {
	switch filepath.Base(name) {
	case "osascript":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		return []string{"-e", script}
	case "terminal-notifier":
		return []string{"-title", title, "-message", body}
	default:
		// notify-send and custom commands take positional title/body
		return []string{title, body}
	}
}

func (n *Notifier) saveState(perm domain.Permission) error {
	dir := filepath.Dir(n.statePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	content, err := json.Marshal(permissionState{Permission: perm})
	if err != nil {
		return err
	}

	tmpPath := n.statePath + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, n.statePath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Ensure Notifier implements the port.
var _ domain.Notifier = (*Notifier)(nil)
