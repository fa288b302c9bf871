package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("junparse")

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:          "junparse",
		Short:        "Render Java syntax trees back into source",
		Version:      Version().Core(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			return nil
		},
	}
	rootCmd.SetVersionTemplate(`{{.Name}}: version {{printf "%q" .Version}}` + "\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more information (repeatable)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
