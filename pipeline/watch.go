package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-renders tree files in one directory whenever they change.
type Watcher struct {
	Dir   string
	Batch *Batch

	// Rendered, when set, receives the result of every render.
	Rendered chan<- Result

	w *fsnotify.Watcher
}

// NewWatcher starts watching dir. Rendered output is always written next to
// the input, whatever b.Write says.
func NewWatcher(dir string, b *Batch) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	batch := *b
	batch.Write = true
	return &Watcher{Dir: dir, Batch: &batch, w: w}, nil
}

// Run renders every tree already in the directory, then keeps rendering
// changed trees until ctx is done. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.w.Close()

	paths, err := TreeFiles(w.Dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		w.render(ctx, path)
	}
	log.Noticef("watching %s", w.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != TreeExt {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.render(ctx, ev.Name)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch %s: %s", w.Dir, err.Error())
		}
	}
}

func (w *Watcher) render(ctx context.Context, path string) {
	res := w.Batch.RenderFile(path)
	if res.Err != nil {
		log.Errorf("%s", res.Err.Error())
	}
	if w.Rendered == nil {
		return
	}
	select {
	case w.Rendered <- res:
	case <-ctx.Done():
	}
}
