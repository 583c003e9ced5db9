package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// EnableNotificationsInput contains the parameters for requesting
// notification permission.
type EnableNotificationsInput struct{}

// EnableNotificationsOutput contains the resulting permission state.
type EnableNotificationsOutput struct {
	Permission domain.Permission
}

// EnableNotifications is the use case for requesting notification
// permission. The request may block until the host prompt resolves;
// a previous denial is terminal and is returned as-is.
type EnableNotifications struct {
	notifier domain.Notifier
	logger   domain.Logger
}

// NewEnableNotifications creates a new EnableNotifications use case.
func NewEnableNotifications(notifier domain.Notifier, logger domain.Logger) *EnableNotifications {
	return &EnableNotifications{
		notifier: notifier,
		logger:   logger,
	}
}

// Execute requests notification permission from the host.
func (uc *EnableNotifications) Execute(ctx context.Context, _ EnableNotificationsInput) (*EnableNotificationsOutput, error) {
	perm, err := uc.notifier.RequestPermission(ctx)
	if err != nil {
		return nil, fmt.Errorf("request permission: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("notify", fmt.Sprintf("permission is %s", perm))
	}

	return &EnableNotificationsOutput{Permission: perm}, nil
}
