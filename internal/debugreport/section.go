// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

// Package debugreport builds hierarchical HTML reports of diagnostic output.
//
// Callers insert leaf sections, or bracket several insertions between
// StartSection and EndSection to nest them under a new parent. When the
// report is closed, the section forest is rendered to one self-contained
// document: a nested index of links followed by the anchored content.
package debugreport

import (
	"fmt"
	"io"
)

// Section is one node of the report tree. It is immutable once built.
type Section struct {
	id       string
	title    string
	children []Section
	body     string
}

// NewSection builds a leaf section. body is an HTML fragment written verbatim.
func (g *IDGenerator) NewSection(id, title, body string) Section {
	return Section{
		id:    g.Next(id),
		title: title,
		body:  body,
	}
}

// NewGroup builds a section that wraps children. The slice is copied so later
// changes by the caller do not leak into the tree.
func (g *IDGenerator) NewGroup(id, title string, children []Section, body string) Section {
	var kids []Section
	if len(children) > 0 {
		kids = make([]Section, len(children))
		copy(kids, children)
	}
	return Section{
		id:       g.Next(id),
		title:    title,
		children: kids,
		body:     body,
	}
}

// NewCodeSection builds a leaf whose body is code in a preformatted block.
func (g *IDGenerator) NewCodeSection(id, title, code string) Section {
	return g.NewSection(id, title, CodeBody(code))
}

// ID returns the unique anchor of the section.
func (s Section) ID() string { return s.id }

// Title returns the display title.
func (s Section) Title() string { return s.title }

// Body returns the pre-rendered body fragment.
func (s Section) Body() string { return s.body }

// Children returns a copy of the subsections in insertion order.
func (s Section) Children() []Section {
	if len(s.children) == 0 {
		return nil
	}
	out := make([]Section, len(s.children))
	copy(out, s.children)
	return out
}

// HasChildren reports whether the section has subsections.
func (s Section) HasChildren() bool {
	return len(s.children) > 0
}

// PrintIndex writes a link to the section content followed, when there are
// subsections, by a nested list of their index entries.
func (s Section) PrintIndex(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<a href=\"#%s\">%s</a>\n", s.id, s.title); err != nil {
		return err
	}
	if !s.HasChildren() {
		return nil
	}
	if _, err := io.WriteString(w, "<ul>\n"); err != nil {
		return err
	}
	for _, child := range s.children {
		if _, err := io.WriteString(w, "<li>"); err != nil {
			return err
		}
		if err := child.PrintIndex(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</li>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul>\n")
	return err
}

// PrintTitle writes the anchored title header.
func (s Section) PrintTitle(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<a id=\"%s\"></a>\n<h3>%s</h3>\n", s.id, s.title)
	return err
}

// PrintContent writes the title header, the body, then the content of each
// subsection in order.
func (s Section) PrintContent(w io.Writer) error {
	if _, err := io.WriteString(w, "<div class=\"section\">\n"); err != nil {
		return err
	}
	if err := s.PrintTitle(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s.body); err != nil {
		return err
	}
	for _, child := range s.children {
		if err := child.PrintContent(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}
