package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/multicast/pkg/logsink"
	"github.com/mandelsoft/multicast/pkg/scenario"
)

type Run struct {
	cmd *cobra.Command

	mainopts *Options
	quiet    bool
}

func NewRun(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario file>",
		Short: "run a scenario file",
		Args:  cobra.ExactArgs(1),
	}

	c := &Run{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "discard listener log output")
	return cmd
}

func (c *Run) Run(args []string) error {
	err := c.mainopts.Complete()
	if err != nil {
		return err
	}

	s, err := scenario.Load(c.mainopts.fs, args[0])
	if err != nil {
		return err
	}

	sink := logsink.Discard
	if !c.quiet {
		sink = logsink.New()
	}

	runner, err := scenario.NewRunner(s, sink)
	if err != nil {
		return err
	}

	sum, err := runner.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "run %s: %d event(s) delivered\n", sum.Run, sum.Events)
	return nil
}
