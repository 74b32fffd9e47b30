package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/dbgreport/internal/testable"
)

// Load reads and decodes the manifest at path, then reads every referenced
// file. Files are read concurrently, at most parallel at a time (GOMAXPROCS
// when parallel <= 0). Only reading is concurrent; the result is consumed
// from a single goroutine.
func Load(ctx context.Context, fsys testable.FileSystem, path string, parallel int) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := m.readFiles(ctx, fsys, parallel); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) readFiles(ctx context.Context, fsys testable.FileSystem, parallel int) error {
	entries := m.fileEntries()
	if len(entries) == 0 {
		return nil
	}
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns one index, so no locking is needed.
	texts := make([]string, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(parallel, len(entries)))
	for i, e := range entries {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			p := e.File
			if !filepath.IsAbs(p) {
				p = filepath.Join(m.dir, p)
			}
			data, err := fsys.ReadFile(p)
			if err != nil {
				return fmt.Errorf("section %q: %w", e.ID, err)
			}
			texts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, e := range entries {
		e.text = texts[i]
	}
	slog.Debug("manifest files read", "files", len(entries), "parallel", min(parallel, len(entries)))
	return nil
}
