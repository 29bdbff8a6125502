package script

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-constrain"
)

func constraintStrings(e *constrain.Element) []string {
	var out []string
	for _, c := range e.Constraints() {
		out = append(out, c.String())
	}
	return out
}

func TestLoad_TOMLAndYAMLAgree(t *testing.T) {
	want := map[string][]string{
		"window": {
			"card.leading == window.leading * 1 + 8",
			"card.trailing == window.trailing * 1 + 8",
			"card.top == window.top * 1 + 8",
			"card.bottom == window.bottom * 1 + 8",
		},
		"card": {
			"title.top == card.top * 1 + 0",
			"title.leading == card.leading * 1 + 2",
			"title.height == 1",
			"divider.top == title.bottom * 1 + 0",
			"divider.width == title.width * 1 + 0",
			"divider.height == 1",
		},
	}

	for _, file := range []string{"card.toml", "card.yaml"} {
		t.Run(file, func(t *testing.T) {
			doc, err := Load(filepath.Join("testdata", file))
			require.NoError(t, err)

			res, err := Run(doc, Options{})
			require.NoError(t, err)

			require.Len(t, res.Roots, 1)
			assert.Equal(t, "window", res.Roots[0].Name())
			assert.Len(t, res.Elements, 4)
			assert.Equal(t, 10, res.Installed)
			for name, constraints := range want {
				assert.Equal(t, constraints, constraintStrings(res.Elements[name]), name)
			}
			assert.Empty(t, res.Elements["title"].Constraints())
		})
	}
}

func TestRun_ConstraintIDs(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "card.toml"))
	require.NoError(t, err)

	res, err := Run(doc, Options{})
	require.NoError(t, err)

	ids := make([]string, 0)
	for _, c := range res.Elements["card"].Constraints() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{
		"::card::group::2::top",
		"::card::group::2::leading[Static:2]",
		"::card::group::2::height[Static:1]",
		"::card::group::3::bottom{top}",
		"::card::group::3::width[Relative:1]",
		"::card::group::3::height[Static:1]",
	}, ids)
}

func TestRun_LogsToProvidedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	doc, err := Load(filepath.Join("testdata", "card.yaml"))
	require.NoError(t, err)
	_, err = Run(doc, Options{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "constraint installed")
	assert.Contains(t, out, "document applied")
	assert.Equal(t, 3, strings.Count(out, "element nested"))
	assert.Contains(t, out, "element=divider parent=card")
}

func TestDecode(t *testing.T) {
	type tc struct {
		input    string
		format   Format
		wantErr  bool
		wantMsg  string
		validate func(t *testing.T, doc *Document)
	}

	tests := map[string]tc{
		"toml values": {
			input: `
[[element]]
name = "a"
[[group]]
subject = "a"
  [[group.step]]
  op = "rectangleStatic"
  values = [10, 20.5]
`,
			format: FormatTOML,
			validate: func(t *testing.T, doc *Document) {
				require.Len(t, doc.Groups, 1)
				require.Len(t, doc.Groups[0].Steps, 1)
				assert.Equal(t, []float64{10, 20.5}, doc.Groups[0].Steps[0].Values)
				assert.Nil(t, doc.Groups[0].Steps[0].Value)
			},
		},
		"yaml value": {
			input: `
elements: [{name: a}]
groups:
  - subject: a
    steps: [{op: width, value: 3}]
`,
			format: FormatYAML,
			validate: func(t *testing.T, doc *Document) {
				require.NotNil(t, doc.Groups[0].Steps[0].Value)
				assert.Equal(t, 3.0, *doc.Groups[0].Steps[0].Value)
			},
		},
		"empty yaml": {
			input:  "",
			format: FormatYAML,
			validate: func(t *testing.T, doc *Document) {
				assert.Empty(t, doc.Elements)
			},
		},
		"yaml unknown field": {
			input:   "widgets: []\n",
			format:  FormatYAML,
			wantErr: true,
		},
		"toml misspelled key": {
			input: `
[[element]]
name = "a"
[[group]]
subject = "a"
  [[group.step]]
  op = "top"
  vlaue = 3
`,
			format:  FormatTOML,
			wantErr: true,
			wantMsg: "group.step.vlaue",
		},
		"yaml misspelled key": {
			input:   "groups: [{subject: a, steps: [{op: top, vlaue: 3}]}]\n",
			format:  FormatYAML,
			wantErr: true,
			wantMsg: "vlaue",
		},
		"bad toml": {
			input:   "[[element]\nname = ",
			format:  FormatTOML,
			wantErr: true,
		},
		"unknown format": {
			format:  Format("json"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.input), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, constrain.IsCode(err, constrain.ErrCodeInvalidDocument))
				assert.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, doc)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("layout.json")
	require.Error(t, err)
	assert.True(t, constrain.IsCode(err, constrain.ErrCodeInvalidDocument))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	f, ok := FormatFor("a/b.TOML")
	assert.True(t, ok)
	assert.Equal(t, FormatTOML, f)

	f, ok = FormatFor("b.yml")
	assert.True(t, ok)
	assert.Equal(t, FormatYAML, f)

	_, ok = FormatFor("b.txt")
	assert.False(t, ok)
}
