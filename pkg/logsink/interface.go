// Package logsink provides the log sink capability used by code
// embedding a multicast registry. A sink accepts severity-tagged text
// messages and never reports failures back to the emitting code.
//
// The package only defines the capability and adapters for it, the
// registry core itself does not log.
package logsink

// Sink is the capability for a severity-tagged text sink. The tag
// groups messages by their origin. Implementations must swallow their
// own failures, emitting a message never fails for the caller.
type Sink interface {
	Debug(tag, msg string)
	Info(tag, msg string)
	Warn(tag, msg string)
	Error(tag, msg string)

	// ErrorE reports an error condition described by an error value
	// instead of a plain message. A nil error is ignored.
	ErrorE(tag string, err error)
}

// Discard is a Sink dropping all messages.
var Discard Sink = discard{}

type discard struct{}

func (discard) Debug(string, string) {}

func (discard) Info(string, string) {}

func (discard) Warn(string, string) {}

func (discard) Error(string, string) {}

func (discard) ErrorE(string, error) {}
