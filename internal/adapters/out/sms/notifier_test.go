package sms_test

import (
	"bytes"
	"log/slog"
	"testing"

	"orderhub/internal/adapters/out/sms"
	"orderhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_NotifyAssigned(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	notifier := sms.NewNotifier(logger)
	err := notifier.NotifyAssigned(t.Context(), ports.AssignmentNotice{
		OrderID:      "SP-12345",
		CourierName:  "Mert Aksoy",
		CourierPhone: "+90 532 123 45 67",
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "SP-12345")
	assert.Contains(t, out, "+90 532 123 45 67")
	assert.Contains(t, out, "sms_notifier")
}
