// Package scenario provides a file-driven harness for multicast
// registries. A scenario describes a set of listeners and a sequence
// of events; the runner registers the listeners and broadcasts the
// events through the registry. It is used by the mcast command and as
// a smoke vehicle for the library itself.
package scenario

import (
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

const (
	KIND_LOG    = "log"
	KIND_COUNT  = "count"
	KIND_RECORD = "record"
	KIND_FAIL   = "fail"
)

// Scenario is the external description of a run.
type Scenario struct {
	// Run is the human readable name of the run.
	Run string `json:"run,omitempty"`

	Listeners []ListenerSpec `json:"listeners,omitempty"`
	Events    []EventSpec    `json:"events,omitempty"`
}

// ListenerSpec describes a single listener to register for the run.
type ListenerSpec struct {
	// Kind selects the listener implementation (log, count, record
	// or fail).
	Kind string `json:"kind"`
	// Name identifies the listener in logs and summaries. A name is
	// generated if unset.
	Name string `json:"name,omitempty"`

	// Tag is the log tag used by log listeners.
	Tag string `json:"tag,omitempty"`
	// FailAfter is the number of events a fail listener accepts
	// before refusing delivery.
	FailAfter int `json:"failAfter,omitempty"`
}

// EventSpec describes an event to broadcast. The payload supports
// ${VAR} substitution from the process environment.
type EventSpec struct {
	Name    string `json:"name"`
	Payload string `json:"payload,omitempty"`
}

// Event is the value delivered to event sink listeners.
type Event struct {
	// Id is unique per delivery attempt.
	Id string `json:"id"`
	// Run correlates the event with its run.
	Run     string `json:"run"`
	Name    string `json:"name"`
	Payload string `json:"payload,omitempty"`
}

// Summary describes a finished run.
type Summary struct {
	Run string `json:"run"`
	// Events is the number of events broadcast without failure.
	Events int `json:"events"`
}

// EventSink is the capability of listeners interested in the events
// of a run.
type EventSink interface {
	OnEvent(ev Event) error
}

// Completion is the capability of listeners interested in the final
// run summary.
type Completion interface {
	OnDone(s Summary)
}

// Load reads a scenario from a file, applying environment variable
// substitution to the file content before parsing.
func Load(fs vfs.FileSystem, path string) (*Scenario, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes scenario data after environment variable substitution.
func Parse(data []byte) (*Scenario, error) {
	subst, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("cannot substitute scenario: %w", err)
	}

	var s Scenario
	err = yaml.Unmarshal([]byte(subst), &s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse scenario: %w", err)
	}
	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the listener kinds of the scenario.
func (s *Scenario) Validate() error {
	for i, l := range s.Listeners {
		switch l.Kind {
		case KIND_LOG, KIND_COUNT, KIND_RECORD, KIND_FAIL:
		case "":
			return fmt.Errorf("listener %d: kind missing", i)
		default:
			return fmt.Errorf("listener %d: unknown kind %q", i, l.Kind)
		}
	}
	for i, e := range s.Events {
		if e.Name == "" {
			return fmt.Errorf("event %d: name missing", i)
		}
	}
	return nil
}
