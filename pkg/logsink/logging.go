package logsink

import (
	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/logging"
)

// loggingSink adapts a logging context to the Sink capability. Tags
// are mapped to logging realms, so the usual context rules control
// which tags and severities become visible.
type loggingSink struct {
	ctx logging.Context
}

var _ Sink = (*loggingSink)(nil)

// New creates a Sink emitting to a logging context, by default the
// default logging context.
func New(ctx ...logging.Context) Sink {
	return &loggingSink{ctx: general.OptionalDefaulted(logging.DefaultContext(), ctx...)}
}

func (s *loggingSink) logger(tag string) logging.Logger {
	return s.ctx.Logger(logging.NewRealm(tag))
}

func (s *loggingSink) Debug(tag, msg string) {
	s.logger(tag).Debug(msg)
}

func (s *loggingSink) Info(tag, msg string) {
	s.logger(tag).Info(msg)
}

func (s *loggingSink) Warn(tag, msg string) {
	s.logger(tag).Warn(msg)
}

func (s *loggingSink) Error(tag, msg string) {
	s.logger(tag).Error(msg)
}

func (s *loggingSink) ErrorE(tag string, err error) {
	if err == nil {
		return
	}
	s.logger(tag).LogError(err, err.Error())
}
