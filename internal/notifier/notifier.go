package notifier

import "context"

// Notifier pushes scan reports to an external channel. Delivery is best
// effort: the scan result never depends on it.
type Notifier interface {
	SendReport(ctx context.Context, text string) error
	Name() string
}

// NoopNotifier discards all reports. Used when Telegram is not configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Name() string { return "noop" }

func (n *NoopNotifier) SendReport(_ context.Context, _ string) error { return nil }
