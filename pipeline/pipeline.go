// Package pipeline renders JSON syntax trees stored on disk into Java source
// files, either as a bounded concurrent batch or continuously for a watched
// directory.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/junparse/format"
	"github.com/dhamidi/junparse/java/tree"
)

var log = commonlog.GetLogger("junparse.pipeline")

const TreeExt = ".json"

// Result is the outcome of rendering one tree file.
type Result struct {
	Path   string // input tree
	Output string // written .java file, empty unless the batch writes files
	Source string
	Err    error
}

// Batch renders tree files with a shared renderer.
type Batch struct {
	Renderer *format.Renderer
	Jobs     int  // maximum concurrent renders, 0 or less means one per file
	Write    bool // write <name>.java next to each input
}

// OutputPath returns the .java path written for the tree file at path.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".java"
}

// RenderFile decodes and renders one tree file.
func (b *Batch) RenderFile(path string) Result {
	res := Result{Path: path}
	f, err := os.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("open tree: %w", err)
		return res
	}
	defer f.Close()

	n, err := tree.Decode(f)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	text, err := b.Renderer.Render(n)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	res.Source = text + "\n"

	if b.Write {
		out := OutputPath(path)
		if err := os.WriteFile(out, []byte(res.Source), 0644); err != nil {
			res.Err = fmt.Errorf("write %s: %w", out, err)
			return res
		}
		res.Output = out
		log.Infof("rendered %s -> %s", path, out)
	} else {
		log.Debugf("rendered %s", path)
	}
	return res
}

// RenderFiles renders paths concurrently and returns one result per path in
// input order. A failing file does not stop the others; the returned error
// joins every per-file error, or is the context's error when ctx is
// cancelled first.
func (b *Batch) RenderFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if b.Jobs > 0 {
		g.SetLimit(b.Jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.RenderFile(path)
			if results[i].Err != nil {
				log.Errorf("%s", results[i].Err.Error())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

// TreeFiles lists the tree files directly inside dir, sorted by name.
func TreeFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+TreeExt))
	if err != nil {
		return nil, fmt.Errorf("list trees: %w", err)
	}
	return matches, nil
}
