package workflow

// Alerter receives user-facing messages: validation failures, submission
// errors, and success acknowledgments. Silent failure paths (catalog and
// history fetches) never reach it; those go only to the log.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(message string)

// Alert calls f(message).
func (f AlertFunc) Alert(message string) { f(message) }
