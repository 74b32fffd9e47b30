package manifest

import (
	"fmt"

	"github.com/davetashner/dbgreport/internal/debugreport"
)

// ApplyOption configures Apply.
type ApplyOption func(*applier)

// WithFilter passes the text of every code and html entry through fn before
// it is inserted.
func WithFilter(fn func(string) string) ApplyOption {
	return func(a *applier) { a.filter = fn }
}

type applier struct {
	r      *debugreport.Report
	filter func(string) string
}

// Apply replays the manifest against r in document order. Groups become a
// StartSection/EndSection pair around their children.
func (m *Manifest) Apply(r *debugreport.Report, opts ...ApplyOption) error {
	a := &applier{r: r, filter: func(s string) string { return s }}
	for _, opt := range opts {
		opt(a)
	}
	return a.apply(m.Sections)
}

func (a *applier) apply(entries []Entry) error {
	for i := range entries {
		e := &entries[i]
		switch e.Kind() {
		case KindGroup:
			a.r.StartSection()
			if err := a.apply(e.Sections); err != nil {
				return err
			}
			if err := a.r.EndSection(e.ID, e.Title); err != nil {
				return fmt.Errorf("section %q: %w", e.ID, err)
			}
		case KindCode:
			a.r.AddCodeSection(e.ID, e.Title, a.filter(e.Text()))
		case KindHTML:
			a.r.AddSection(a.r.NewSection(e.ID, e.Title, a.filter(e.HTML)))
		default:
			return fmt.Errorf("section %q: invalid entry", e.ID)
		}
	}
	return nil
}
