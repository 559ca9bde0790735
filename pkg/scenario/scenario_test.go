package scenario_test

import (
	"errors"
	"os"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-test/deep"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/multicast/pkg/multicast"
	"github.com/mandelsoft/multicast/pkg/scenario"
)

var _ = Describe("Scenario", func() {
	Context("loading", func() {
		var fs vfs.FileSystem

		BeforeEach(func() {
			fs = Must(projectionfs.New(osfs.OsFs, "testdata"))
			os.Setenv("SCENARIO_GREETING", "world")
		})

		AfterEach(func() {
			os.Unsetenv("SCENARIO_GREETING")
		})

		It("loads a scenario with environment substitution", func() {
			s := Must(scenario.Load(fs, "demo.yaml"))

			Expect(s.Run).To(Equal("demo"))
			Expect(s.Listeners).To(HaveLen(3))
			Expect(s.Events[0].Payload).To(Equal("hello world"))
			Expect(s.Events[1].Payload).To(Equal("bye"))
		})

		It("loads from an arbitrary filesystem", func() {
			mem := memoryfs.New()
			MustBeSuccessful(vfs.WriteFile(mem, "s.yaml", []byte(`
run: mem
listeners:
  - kind: count
events:
  - name: only
`), 0o644))

			s := Must(scenario.Load(mem, "s.yaml"))
			Expect(s.Run).To(Equal("mem"))
		})

		It("rejects unknown listener kinds", func() {
			_, err := scenario.Parse([]byte(`
listeners:
  - kind: telepathy
`))
			Expect(err).To(MatchError(ContainSubstring("unknown kind \"telepathy\"")))
		})

		It("rejects events without a name", func() {
			_, err := scenario.Parse([]byte(`
events:
  - payload: orphan
`))
			Expect(err).To(MatchError(ContainSubstring("name missing")))
		})
	})

	Context("running", func() {
		var fs vfs.FileSystem

		BeforeEach(func() {
			fs = Must(projectionfs.New(osfs.OsFs, "testdata"))
			os.Setenv("SCENARIO_GREETING", "world")
		})

		AfterEach(func() {
			os.Unsetenv("SCENARIO_GREETING")
		})

		It("delivers all events to all interested listeners", func() {
			s := Must(scenario.Load(fs, "demo.yaml"))
			runner := Must(scenario.NewRunner(s))

			sum := Must(runner.Run())
			Expect(sum.Events).To(Equal(2))

			reg := runner.Registry()

			var recorder *scenario.Recorder
			for _, l := range multicast.Get[scenario.EventSink](reg) {
				if r, ok := l.(*scenario.Recorder); ok {
					recorder = r
				}
			}
			Expect(recorder).NotTo(BeNil())
			Expect(recorder.Events()).To(HaveLen(2))

			got := []string{
				recorder.Events()[0].Name, recorder.Events()[0].Payload,
				recorder.Events()[1].Name, recorder.Events()[1].Payload,
			}
			want := []string{"started", "hello world", "stopped", "bye"}
			Expect(deep.Equal(got, want)).To(BeNil())
		})

		It("broadcasts the summary to completion listeners", func() {
			s := Must(scenario.Load(fs, "demo.yaml"))
			runner := Must(scenario.NewRunner(s))

			sum := Must(runner.Run())

			counters := multicast.Get[scenario.Completion](runner.Registry())
			Expect(counters).To(HaveLen(1))

			counter := counters[0].(*scenario.Counter)
			Expect(counter.Count()).To(Equal(2))
			Expect(deep.Equal(counter.Summary(), sum)).To(BeNil())
		})

		It("stops a run at the first refused delivery", func() {
			s := &scenario.Scenario{
				Run: "flaky",
				Listeners: []scenario.ListenerSpec{
					{Kind: scenario.KIND_COUNT, Name: "beans"},
					{Kind: scenario.KIND_FAIL, Name: "grumpy", FailAfter: 1},
				},
				Events: []scenario.EventSpec{
					{Name: "first"},
					{Name: "second"},
					{Name: "third"},
				},
			}
			runner := Must(scenario.NewRunner(s))

			sum, err := runner.Run()

			var inv *multicast.InvocationError
			Expect(errors.As(err, &inv)).To(BeTrue())
			Expect(inv.Err.Error()).To(ContainSubstring("grumpy refused event second"))
			Expect(sum.Events).To(Equal(1))
		})
	})
})
