package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
title: Compiler debug report
output: out/debug.html
sections:
  - id: input
    title: Input program
    code: "edge(x,y) <- path(x,y)."
  - id: passes
    title: Transformations
    sections:
      - id: pass
        title: After inlining
        file: inline.txt
      - id: empty
        title: Nothing recorded
        sections: []
  - id: note
    title: Notes
    html: "<p>done</p>"
`

func TestDecode_YAML(t *testing.T) {
	m, err := Decode("/work/report.yaml", []byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Compiler debug report", m.Title)
	assert.Equal(t, "/work/out/debug.html", m.OutputPath())
	require.Len(t, m.Sections, 3)
	assert.Equal(t, KindCode, m.Sections[0].Kind())
	assert.Equal(t, KindGroup, m.Sections[1].Kind())
	assert.Equal(t, KindHTML, m.Sections[2].Kind())

	passes := m.Sections[1].Sections
	require.Len(t, passes, 2)
	assert.Equal(t, "inline.txt", passes[0].File)
	assert.Equal(t, KindGroup, passes[1].Kind(), "an empty sections list is still a group")
	assert.Equal(t, 5, m.Count())
}

func TestDecode_TOML(t *testing.T) {
	data := `
title = "From TOML"

[[sections]]
id = "a"
title = "A"
code = "x < y"

[[sections]]
id = "g"
title = "G"

  [[sections.sections]]
  id = "b"
  title = "B"
  html = "<b>b</b>"
`
	m, err := Decode("report.toml", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, "From TOML", m.Title)
	require.Len(t, m.Sections, 2)
	assert.Equal(t, "x < y", m.Sections[0].Text())
	require.Len(t, m.Sections[1].Sections, 1)
	assert.Equal(t, KindHTML, m.Sections[1].Sections[0].Kind())
	assert.Equal(t, "", m.OutputPath())
}

func TestDecode_TOMLUnknownKey(t *testing.T) {
	_, err := Decode("r.toml", []byte("[[sections]]\nid = \"a\"\ntitle = \"A\"\ncode = \"c\"\ncolour = \"red\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: sections.colour")
}

func TestDecode_InvalidSyntax(t *testing.T) {
	_, err := Decode("r.yaml", []byte("{{nope"))
	assert.Error(t, err)

	_, err = Decode("r.toml", []byte("title = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no sections", "title: x\n", "at least one entry"},
		{"no kind", "sections:\n  - id: a\n    title: A\n", `sections[0] ("a"): needs exactly one`},
		{"two kinds", "sections:\n  - id: a\n    code: x\n    html: y\n", `sections[0] ("a")`},
		{"file and code", "sections:\n  - id: a\n    code: x\n    file: y\n", `sections[0] ("a")`},
		{"nested", "sections:\n  - id: g\n    sections:\n      - id: bad\n", `sections[0].sections[0] ("bad")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("m.yaml", []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	data := "sections:\n  - id: a\n  - id: b\n"
	_, err := Decode("m.yaml", []byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `("a")`)
	assert.Contains(t, err.Error(), `("b")`)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "group", KindGroup.String())
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "html", KindHTML.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestOutputPath_Absolute(t *testing.T) {
	m, err := Decode("/work/m.yaml", []byte("output: /abs/out.html\nsections:\n  - id: a\n    code: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "/abs/out.html", m.OutputPath())
}
