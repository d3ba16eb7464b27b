package sync

import "log/slog"

// Notifier receives the user-visible outcome of an operation.
// Implementations must not call back into the controller.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier surfaces notifications through structured logging.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(msg string) {
	n.logger().Info(msg)
}

func (n LogNotifier) Error(msg string) {
	n.logger().Error(msg)
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return slog.Default()
}
