package scenario

import (
	"fmt"

	"github.com/mandelsoft/multicast/pkg/logsink"
)

// LogListener forwards events as info messages to a log sink.
type LogListener struct {
	name string
	tag  string
	sink logsink.Sink
}

var _ EventSink = (*LogListener)(nil)

func NewLogListener(name, tag string, sink logsink.Sink) *LogListener {
	if tag == "" {
		tag = name
	}
	return &LogListener{name: name, tag: tag, sink: sink}
}

func (l *LogListener) Name() string {
	return l.name
}

func (l *LogListener) OnEvent(ev Event) error {
	l.sink.Info(l.tag, fmt.Sprintf("event %s[%s]: %s", ev.Name, ev.Id, ev.Payload))
	return nil
}

// Counter tallies delivered events and remembers the run summary.
type Counter struct {
	name    string
	count   int
	summary *Summary
}

var (
	_ EventSink  = (*Counter)(nil)
	_ Completion = (*Counter)(nil)
)

func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) Summary() *Summary {
	return c.summary
}

func (c *Counter) OnEvent(ev Event) error {
	c.count++
	return nil
}

func (c *Counter) OnDone(s Summary) {
	c.summary = &s
}

// Recorder captures all delivered events.
type Recorder struct {
	name   string
	events []Event
}

var _ EventSink = (*Recorder)(nil)

func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

func (r *Recorder) Name() string {
	return r.name
}

func (r *Recorder) Events() []Event {
	return r.events
}

func (r *Recorder) OnEvent(ev Event) error {
	r.events = append(r.events, ev)
	return nil
}

// Failer accepts a fixed number of events and then refuses delivery.
// It is used to exercise the fail-fast behavior of a broadcast.
type Failer struct {
	name      string
	remaining int
}

var _ EventSink = (*Failer)(nil)

func NewFailer(name string, after int) *Failer {
	return &Failer{name: name, remaining: after}
}

func (f *Failer) Name() string {
	return f.name
}

func (f *Failer) OnEvent(ev Event) error {
	if f.remaining <= 0 {
		return fmt.Errorf("listener %s refused event %s", f.name, ev.Name)
	}
	f.remaining--
	return nil
}
