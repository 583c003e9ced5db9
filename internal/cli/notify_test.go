package cli

import (
	"bytes"
	"testing"

	"github.com/mkondo/remindo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewNotifyEnableCommand_Grants(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newNotifyEnableCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Notifications enabled")
	assert.Equal(t, domain.PermissionGranted, deps.notifier.Perm)
}

func TestNewNotifyEnableCommand_Denied(t *testing.T) {
	container, deps := newTestContainer()
	deps.notifier.Perm = domain.PermissionDenied

	cmd := newNotifyEnableCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "denied")
}

func TestNewNotifyStatusCommand(t *testing.T) {
	container, deps := newTestContainer()
	deps.notifier.Perm = domain.PermissionGranted

	cmd := newNotifyStatusCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Permission: granted")
}
