package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dhamidi/junparse/format"
	"github.com/dhamidi/junparse/java/tree"
	"github.com/dhamidi/junparse/pipeline"
)

// renderFlags are the renderer settings shared by render and watch.
type renderFlags struct {
	indent int
	depth  int
	tabs   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.indent, "indent", format.DefaultIndentWidth, "spaces per indentation level")
	cmd.Flags().IntVar(&f.depth, "depth", 0, "indentation depth of the root node")
	cmd.Flags().BoolVar(&f.tabs, "tabs", false, "indent with tabs instead of spaces")
}

func (f *renderFlags) options() []format.Option {
	opts := []format.Option{format.WithIndentWidth(f.indent), format.WithDepth(f.depth)}
	if f.tabs {
		opts = append(opts, format.WithIndentUnit("\t"))
	}
	return opts
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	var overwrite bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "render [file.json ...]",
		Short: "Render JSON syntax trees as Java source",
		Long: `Render JSON syntax trees as Java source on stdout.

Each file must contain one tree with a .json extension.
If no file is provided, reads a single tree from stdin.

Use -w to write <name>.java next to each input instead (requires file arguments).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if overwrite {
					return fmt.Errorf("-w requires file arguments")
				}
				n, err := tree.Decode(os.Stdin)
				if err != nil {
					return fmt.Errorf("decode stdin: %w", err)
				}
				if err := format.NewJavaEncoder(os.Stdout, flags.options()...).Encode(n); err != nil {
					return fmt.Errorf("render: %w", err)
				}
				return nil
			}

			for _, arg := range args {
				if ext := filepath.Ext(arg); ext != pipeline.TreeExt {
					return fmt.Errorf("expected %s file, got %s", pipeline.TreeExt, arg)
				}
			}

			batch := &pipeline.Batch{Renderer: format.New(flags.options()...), Jobs: jobs, Write: overwrite}
			results, err := batch.RenderFiles(cmd.Context(), args)
			if !overwrite {
				for _, res := range results {
					if res.Err == nil {
						fmt.Fprint(os.Stdout, res.Source)
					}
				}
			}
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "write <name>.java next to each input")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of trees rendered concurrently")

	return cmd
}
