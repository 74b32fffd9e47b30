// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

// Package manifest describes a debug report declaratively and replays it
// against a debugreport.Report.
//
// A manifest is a tree of entries. Each entry is exactly one of: a group
// (it has a sections list, possibly empty), a code block (inline code or a
// file read relative to the manifest), or a raw HTML fragment.
package manifest

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Kind classifies an entry.
type Kind int

// Entry kinds.
const (
	KindInvalid Kind = iota
	KindGroup
	KindCode
	KindHTML
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindCode:
		return "code"
	case KindHTML:
		return "html"
	default:
		return "invalid"
	}
}

// Manifest is the decoded form of a manifest file.
type Manifest struct {
	Title    string  `yaml:"title,omitempty" toml:"title,omitempty"`
	Output   string  `yaml:"output,omitempty" toml:"output,omitempty"`
	Sections []Entry `yaml:"sections" toml:"sections"`

	// dir is the directory relative file references resolve against.
	dir string
}

// Entry is one node of the manifest tree.
type Entry struct {
	ID       string  `yaml:"id" toml:"id"`
	Title    string  `yaml:"title" toml:"title"`
	File     string  `yaml:"file,omitempty" toml:"file,omitempty"`
	Code     string  `yaml:"code,omitempty" toml:"code,omitempty"`
	HTML     string  `yaml:"html,omitempty" toml:"html,omitempty"`
	Sections []Entry `yaml:"sections,omitempty" toml:"sections,omitempty"`

	// text holds the contents of File once read.
	text string
}

// Kind reports which kind of entry e is, or KindInvalid when it does not
// name exactly one.
func (e *Entry) Kind() Kind {
	kinds := 0
	k := KindInvalid
	if e.Sections != nil {
		kinds++
		k = KindGroup
	}
	if e.File != "" || e.Code != "" {
		kinds++
		k = KindCode
	}
	if e.HTML != "" {
		kinds++
		k = KindHTML
	}
	if kinds != 1 || (e.File != "" && e.Code != "") {
		return KindInvalid
	}
	return k
}

// Text returns the code of a code entry: the inline code, or the file
// contents after Load has read them.
func (e *Entry) Text() string {
	if e.File != "" {
		return e.text
	}
	return e.Code
}

// Decode parses manifest data. TOML is used when name ends in ".toml",
// YAML otherwise. The result is validated but file bodies are not read.
func Decode(name string, data []byte) (*Manifest, error) {
	var m Manifest
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		meta, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
		}
	} else {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m.dir = filepath.Dir(name)
	return &m, nil
}

// Validate checks every entry and returns all problems at once.
func (m *Manifest) Validate() error {
	var errs []string
	if len(m.Sections) == 0 {
		errs = append(errs, "sections: at least one entry is required")
	}
	walkValidate(m.Sections, "sections", &errs)

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func walkValidate(entries []Entry, path string, errs *[]string) {
	for i := range entries {
		e := &entries[i]
		at := fmt.Sprintf("%s[%d]", path, i)
		if e.Kind() == KindInvalid {
			*errs = append(*errs, fmt.Sprintf("%s (%q): needs exactly one of sections, file, code, html", at, e.ID))
			continue
		}
		if e.Sections != nil {
			walkValidate(e.Sections, at+".sections", errs)
		}
	}
}

// OutputPath returns the output path named by the manifest, resolved
// against the manifest's directory, or "" when none is set.
func (m *Manifest) OutputPath() string {
	if m.Output == "" {
		return ""
	}
	if filepath.IsAbs(m.Output) {
		return m.Output
	}
	return filepath.Join(m.dir, m.Output)
}

// Count returns the number of entries in the tree, groups included.
func (m *Manifest) Count() int {
	return count(m.Sections)
}

func count(entries []Entry) int {
	n := len(entries)
	for i := range entries {
		n += count(entries[i].Sections)
	}
	return n
}

// fileEntries returns pointers to every entry that references a file, in
// document order.
func (m *Manifest) fileEntries() []*Entry {
	var out []*Entry
	var walk func([]Entry)
	walk = func(entries []Entry) {
		for i := range entries {
			e := &entries[i]
			if e.File != "" {
				out = append(out, e)
			}
			walk(e.Sections)
		}
	}
	walk(m.Sections)
	return out
}
