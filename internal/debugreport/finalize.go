// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

package debugreport

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// ErrNoDestination is returned by Close when the report has content but no
// output path is configured.
var ErrNoDestination = errors.New("debug report has sections but no output path is configured")

// Destination supplies the output path. It is consulted once, when the
// report is closed.
type Destination interface {
	ReportPath() string
}

// StaticPath is a Destination with a fixed path.
type StaticPath string

// ReportPath returns the path itself.
func (p StaticPath) ReportPath() string { return string(p) }

// Close finalizes the report. Sections still open are ended with the forced
// closure id and title, innermost first. A non-empty report is then written
// to the path from the Destination; an empty report writes nothing.
//
// Only the first call does any work. Later calls return nil.
func (r *Report) Close() error {
	if r.finalized {
		return nil
	}
	r.finalized = true

	r.closeOpenScopes()

	if r.Empty() {
		slog.Debug("debug report is empty, nothing written")
		return nil
	}

	path := r.dest.ReportPath()
	if path == "" {
		return ErrNoDestination
	}
	return r.writeFile(path)
}

// Finalized reports whether Close has run.
func (r *Report) Finalized() bool {
	return r.finalized
}

func (r *Report) writeFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create debug report directory %s: %w", dir, err)
		}
	}

	f, err := r.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create debug report %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := r.Print(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("write debug report %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write debug report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close debug report %s: %w", path, err)
	}

	slog.Info("debug report written", "path", path, "sections", len(r.sections))
	return nil
}

// Run builds a report, passes it to fn, and closes it on every exit path,
// including when fn fails or panics. Errors from fn and from Close are
// joined.
func Run(fn func(*Report) error, opts ...Option) (err error) {
	r := New(opts...)
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(r)
}
