// Package sms delivers courier dispatch notifications. The current
// implementation logs the message instead of calling a gateway; the adapter
// boundary keeps a real SMS provider a drop-in replacement.
package sms

import (
	"context"
	"fmt"
	"log/slog"

	"orderhub/internal/core/ports"

	"github.com/google/uuid"
)

// Notifier implements ports.AssignmentNotifier over a simulated SMS gateway.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates an SMS notifier writing through the given logger.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		logger: logger.With("component", "sms_notifier"),
	}
}

// NotifyAssigned sends the dispatch message to the assigned courier's phone.
func (n *Notifier) NotifyAssigned(ctx context.Context, notice ports.AssignmentNotice) error {
	messageID := uuid.NewString()
	body := fmt.Sprintf("New delivery: order %s has been assigned to you.", notice.OrderID)

	n.logger.InfoContext(ctx, "SMS dispatched",
		"message_id", messageID,
		"to", notice.CourierPhone,
		"courier", notice.CourierName,
		"body", body,
	)

	return nil
}
