package constrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_RoundTrip(t *testing.T) {
	for _, a := range Attributes() {
		name := Describe(a)
		assert.NotEmpty(t, name, "attribute %d has no canonical name", int(a))
		assert.Equal(t, a, Lookup(name), "Lookup(Describe(%s))", name)
		assert.Equal(t, name, a.String())
	}
}

func TestLookup(t *testing.T) {
	type tc struct {
		name string
		want Attribute
	}

	tests := map[string]tc{
		"top":                {name: "top", want: Top},
		"center x":           {name: "centerX", want: CenterX},
		"first baseline":     {name: "firstBaseline", want: FirstBaseline},
		"margins":            {name: "centerYWithinMargins", want: CenterYWithinMargins},
		"plural is unknown":  {name: "tops", want: NotAnAttribute},
		"wrong case":         {name: "Top", want: NotAnAttribute},
		"empty":              {name: "", want: NotAnAttribute},
		"terminal done":      {name: "done", want: NotAnAttribute},
		"terminal apply":     {name: "apply", want: NotAnAttribute},
		"terminal passthru":  {name: "__", want: NotAnAttribute},
		"unrelated identity": {name: "layoutSubviews", want: NotAnAttribute},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.name))
		})
	}
}

func TestDescribe_Sentinels(t *testing.T) {
	assert.Equal(t, "", Describe(NotAnAttribute))
	assert.Equal(t, "", Describe(Attribute(-1)))
	assert.Equal(t, "", Describe(CenterYWithinMargins+1))
	assert.Equal(t, "notAnAttribute", NotAnAttribute.String())
	assert.False(t, NotAnAttribute.IsValid())
}

func TestAttributes(t *testing.T) {
	all := Attributes()
	assert.Len(t, all, 18)
	assert.Equal(t, Top, all[0])
	assert.Equal(t, CenterYWithinMargins, all[len(all)-1])
	assert.NotContains(t, all, NotAnAttribute)
}

func TestIsTerminal(t *testing.T) {
	for _, name := range []string{"done", "apply", "__"} {
		assert.True(t, IsTerminal(name), name)
	}
	assert.False(t, IsTerminal("top"))
	assert.False(t, IsTerminal(""))
}

func TestIsDimension(t *testing.T) {
	assert.True(t, Width.IsDimension())
	assert.True(t, Height.IsDimension())
	assert.False(t, Top.IsDimension())
}

func TestParseRelation(t *testing.T) {
	type tc struct {
		in   string
		want Relation
		ok   bool
	}

	tests := map[string]tc{
		"equal op":        {in: "==", want: Equal, ok: true},
		"equal name":      {in: "equal", want: Equal, ok: true},
		"less op":         {in: "<=", want: LessOrEqual, ok: true},
		"can shrink":      {in: "canShrink", want: LessOrEqual, ok: true},
		"greater op":      {in: ">=", want: GreaterOrEqual, ok: true},
		"greater name":    {in: "greaterOrEqual", want: GreaterOrEqual, ok: true},
		"can grow":        {in: "canGrow", want: GreaterOrEqual, ok: true},
		"unknown":         {in: "<", want: Equal, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseRelation(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				back, _ := ParseRelation(got.String())
				assert.Equal(t, got, back)
			}
		})
	}
}
