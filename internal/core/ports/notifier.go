package ports

import "context"

// AssignmentNotice carries the details of a courier dispatch message.
type AssignmentNotice struct {
	OrderID      string
	CourierName  string
	CourierPhone string
}

// AssignmentNotifier delivers the dispatch message to an assigned courier.
// Notification is fire-and-forget: a failure is logged by the caller but
// never retried and never fails the assignment itself.
type AssignmentNotifier interface {
	NotifyAssigned(ctx context.Context, notice AssignmentNotice) error
}
