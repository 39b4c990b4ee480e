package notify

import "github.com/casaflow/property-service/internal/utils"

// Notifier is the toast sink: human-readable outcome messages for the
// UI layer. Severity maps onto toast styling client-side.
type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// LogNotifier is the default sink. The web client renders its own
// toasts from response payloads; server-side we only keep the trail.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Success(msg string) { utils.Logger.Info(msg) }
func (n *LogNotifier) Warn(msg string)    { utils.Logger.Warn(msg) }
func (n *LogNotifier) Error(msg string)   { utils.Logger.Error(msg) }
