package scenario

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goombaio/namegenerator"
	"github.com/mandelsoft/goutils/general"

	"github.com/mandelsoft/multicast/pkg/logsink"
	"github.com/mandelsoft/multicast/pkg/multicast"
)

// Runner executes a scenario against a fresh multicast registry.
// It keeps its listeners alive for the duration of the run, the
// registry itself never does.
type Runner struct {
	scenario  *Scenario
	registry  multicast.Registry
	sink      logsink.Sink
	listeners []any
}

// NewRunner creates a runner for a scenario. The optional sink
// receives the output of log listeners, by default it is discarded.
func NewRunner(s *Scenario, sink ...logsink.Sink) (*Runner, error) {
	r := &Runner{
		scenario: s,
		registry: multicast.New(),
		sink:     general.OptionalDefaulted(logsink.Discard, sink...),
	}

	generator := namegenerator.NewNameGenerator(time.Now().UnixNano())
	for _, spec := range s.Listeners {
		name := spec.Name
		if name == "" {
			name = generator.Generate()
		}
		l, err := r.create(spec, name)
		if err != nil {
			return nil, err
		}
		r.listeners = append(r.listeners, l)
		r.registry.Register(multicast.NewAnchor(l))
	}
	return r, nil
}

func (r *Runner) create(spec ListenerSpec, name string) (any, error) {
	switch spec.Kind {
	case KIND_LOG:
		return NewLogListener(name, spec.Tag, r.sink), nil
	case KIND_COUNT:
		return NewCounter(name), nil
	case KIND_RECORD:
		return NewRecorder(name), nil
	case KIND_FAIL:
		return NewFailer(name, spec.FailAfter), nil
	}
	return nil, fmt.Errorf("unknown listener kind %q", spec.Kind)
}

// Registry exposes the registry driven by the runner, mainly for
// inspecting listeners after a run.
func (r *Runner) Registry() multicast.Registry {
	return r.registry
}

// Run broadcasts all scenario events in order. It stops at the first
// delivery failure. The summary of the run is broadcast to all
// completion listeners and returned, together with a potential
// delivery error.
func (r *Runner) Run() (*Summary, error) {
	sum := &Summary{Run: r.scenario.Run}

	log.Info("starting run {{run}} with {{amount}} listener(s)",
		"run", r.scenario.Run, "amount", len(r.listeners))

	var failure error
	for _, spec := range r.scenario.Events {
		ev := Event{
			Id:      uuid.NewString(),
			Run:     r.scenario.Run,
			Name:    spec.Name,
			Payload: spec.Payload,
		}
		err := multicast.Invoke[EventSink](r.registry, "OnEvent", ev)
		if err != nil {
			log.LogError(err, "delivery of {{event}} failed", "event", ev.Name)
			failure = err
			break
		}
		sum.Events++
	}

	// completion uses the typed query path, failures here cannot
	// abort anything anymore
	for _, c := range multicast.Get[Completion](r.registry) {
		c.OnDone(*sum)
	}

	log.Info("run {{run}} finished after {{amount}} event(s)",
		"run", r.scenario.Run, "amount", sum.Events)
	return sum, failure
}
