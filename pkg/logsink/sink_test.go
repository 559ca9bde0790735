package logsink_test

import (
	"bytes"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"

	"github.com/mandelsoft/multicast/pkg/logsink"
)

var _ = Describe("Logging sink", func() {
	var buf *bytes.Buffer
	var sink logsink.Sink

	BeforeEach(func() {
		buf = bytes.NewBuffer(nil)
		logcfg := logrusl.Human(true).WithWriter(buf)
		lctx := logging.DefaultContext()
		lctx.SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
		lctx.SetDefaultLevel(logging.DebugLevel)
		sink = logsink.New(lctx)
	})

	It("emits severity-tagged messages", func() {
		sink.Debug("camera", "focus acquired")
		sink.Info("camera", "picture taken")
		sink.Warn("storage", "running low")
		sink.Error("storage", "write rejected")

		Expect(buf.String()).To(ContainSubstring("focus acquired"))
		Expect(buf.String()).To(ContainSubstring("picture taken"))
		Expect(buf.String()).To(ContainSubstring("running low"))
		Expect(buf.String()).To(ContainSubstring("write rejected"))
		Expect(buf.String()).To(ContainSubstring("camera"))
		Expect(buf.String()).To(ContainSubstring("storage"))
	})

	It("reports error values", func() {
		sink.ErrorE("storage", fmt.Errorf("disk gone"))

		Expect(buf.String()).To(ContainSubstring("disk gone"))
	})

	It("ignores nil errors", func() {
		sink.ErrorE("storage", nil)

		Expect(buf.String()).To(BeEmpty())
	})

	It("discards into the discard sink", func() {
		logsink.Discard.Info("camera", "nobody listens")
		logsink.Discard.ErrorE("camera", nil)
	})
})
