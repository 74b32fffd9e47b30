// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

package debugreport

import (
	"errors"
	"log/slog"
	"time"

	"github.com/davetashner/dbgreport/internal/testable"
)

// ErrUnbalancedScope is returned by EndSection when no section is open.
var ErrUnbalancedScope = errors.New("end of section without matching start")

// Forced closures use a fixed id and title so they stand out in the output.
const (
	ForcedID    = "forced-closed"
	ForcedTitle = "Forcing end of unknown section"
)

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Debug Report"

// Report accumulates sections and renders them as one HTML document.
//
// A Report is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call themselves.
type Report struct {
	sections []Section
	scopes   [][]Section
	added    int // sections inserted by callers, excluding EndSection groups

	ids   *IDGenerator
	dest  Destination
	fs    testable.FileSystem
	title string
	runID string

	generated time.Time
	finalized bool
}

// Option configures a Report.
type Option func(*Report)

// WithIDs makes the report draw anchors from g instead of the process-wide
// generator.
func WithIDs(g *IDGenerator) Option {
	return func(r *Report) { r.ids = g }
}

// WithDestination sets where Close writes the document.
func WithDestination(d Destination) Option {
	return func(r *Report) { r.dest = d }
}

// WithFileSystem overrides the file system used by Close.
func WithFileSystem(fs testable.FileSystem) Option {
	return func(r *Report) { r.fs = fs }
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Report) {
		if title != "" {
			r.title = title
		}
	}
}

// WithRunID embeds an identifier for this run in the document header.
func WithRunID(id string) Option {
	return func(r *Report) { r.runID = id }
}

// WithClock overrides the time stamped into the document header.
func WithClock(now func() time.Time) Option {
	return func(r *Report) { r.generated = now() }
}

// New returns an empty report.
func New(opts ...Option) *Report {
	r := &Report{
		ids:       processIDs,
		dest:      StaticPath(""),
		fs:        testable.DefaultFS,
		title:     DefaultTitle,
		generated: time.Now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IDs returns the generator the report draws anchors from, for callers that
// build sections themselves before passing them to AddSection.
func (r *Report) IDs() *IDGenerator {
	return r.ids
}

// NewSection builds a leaf section using the report's generator. The section
// is not inserted.
func (r *Report) NewSection(id, title, body string) Section {
	return r.ids.NewSection(id, title, body)
}

// AddSection appends s to the innermost open section, or to the top level
// when none is open.
func (r *Report) AddSection(s Section) {
	r.added++
	r.insert(s)
}

func (r *Report) insert(s Section) {
	if n := len(r.scopes); n > 0 {
		r.scopes[n-1] = append(r.scopes[n-1], s)
		return
	}
	r.sections = append(r.sections, s)
}

// AddCodeSection inserts a leaf holding code in a preformatted block.
// Only "<" is escaped.
func (r *Report) AddCodeSection(id, title, code string) {
	r.AddSection(r.ids.NewCodeSection(id, title, code))
}

// StartSection opens a new nesting level. Everything inserted until the
// matching EndSection becomes a child of the section EndSection creates.
func (r *Report) StartSection() {
	r.scopes = append(r.scopes, nil)
}

// EndSection closes the innermost open level, wrapping what it collected in
// a new section that is inserted into the enclosing level.
func (r *Report) EndSection(id, title string) error {
	n := len(r.scopes)
	if n == 0 {
		return ErrUnbalancedScope
	}
	children := r.scopes[n-1]
	r.scopes[n-1] = nil
	r.scopes = r.scopes[:n-1]
	r.insert(r.ids.NewGroup(id, title, children, ""))
	return nil
}

// Empty reports whether no section was ever added through AddSection or
// AddCodeSection. Groups produced by EndSection around nothing do not count.
func (r *Report) Empty() bool {
	return r.added == 0
}

// Depth returns the number of sections started but not yet ended.
func (r *Report) Depth() int {
	return len(r.scopes)
}

// Sections returns a copy of the top-level sections.
func (r *Report) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// closeOpenScopes ends every open level, innermost first, with the forced
// closure id and title. It returns how many levels were closed.
func (r *Report) closeOpenScopes() int {
	closed := 0
	for r.Depth() > 0 {
		slog.Warn("forcing end of open debug report section", "depth", r.Depth())
		// Depth() > 0 so EndSection cannot fail.
		_ = r.EndSection(ForcedID, ForcedTitle)
		closed++
	}
	return closed
}
