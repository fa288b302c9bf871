package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/junparse/format"
	"github.com/dhamidi/junparse/pipeline"
)

func newWatchCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-render JSON syntax trees in a directory as they change",
		Long: `Render every .json tree in a directory to a .java file next to it,
then keep rendering trees as they are created or modified until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := pipeline.NewWatcher(args[0], &pipeline.Batch{Renderer: format.New(flags.options()...)})
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			log.Infof("press Ctrl-C to stop")
			return w.Run(cmd.Context())
		},
	}

	flags.register(cmd)

	return cmd
}
