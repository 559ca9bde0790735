package app

import (
	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
)

type Options struct {
	level string
	fs    vfs.FileSystem
}

func (o *Options) Complete() error {
	if o.level != "" {
		l, err := logging.ParseLevel(o.level)
		if err != nil {
			return err
		}
		lctx := logging.DefaultContext()
		lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("scenario")))
	}
	return nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: general.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "mcast <options> <cmd> <args>",
		Short: "drive multicast listener scenarios",
		Long: `
This command runs scenario files against a multicast listener
registry. It is intended as a demo and smoke vehicle for the
library.
`,
		Run:              nil,
		TraverseChildren: true,
	}

	flags := maincmd.Flags()
	flags.StringVarP(&opts.level, "log-level", "L", "", "log level for the scenario runner")

	maincmd.AddCommand(NewRun(opts))
	return maincmd
}
