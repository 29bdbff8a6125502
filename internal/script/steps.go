package script

import (
	"fmt"
	"slices"
	"sort"

	"github.com/grindlemire/go-constrain"
)

// stepFunc applies one validated step to a builder.
type stepFunc func(b *constrain.Builder, s Step)

// Kind groups ops by what they do to a builder.
type Kind string

const (
	KindAttribute   Kind = "attribute"
	KindTerminal    Kind = "terminal"
	KindArming      Kind = "arming"
	KindModifier    Kind = "modifier"
	KindComposition Kind = "composition"
)

// stepEntry is a named step with the arguments it takes. Arguments an entry
// does not declare are rejected.
type stepEntry struct {
	kind     Kind
	values   int  // required len(Values); needValue means Value is required
	attrs    int  // required len(Attrs); -1 means at least one
	relation bool // Relation is required
	apply    stepFunc
}

const needValue = -1

func terminal() stepEntry {
	return stepEntry{kind: KindTerminal, apply: func(b *constrain.Builder, _ Step) { b.Apply() }}
}

// steps maps every non-attribute op to its builder call.
var steps = map[string]stepEntry{
	"apply": terminal(),
	"done":  terminal(),
	"__":    terminal(),

	"link": {kind: KindArming, attrs: 2, apply: func(b *constrain.Builder, s Step) {
		b.Link(constrain.Lookup(s.Attrs[0]), constrain.Lookup(s.Attrs[1]))
	}},
	"align": {kind: KindArming, attrs: -1, apply: func(b *constrain.Builder, s Step) {
		b.Align(lookupAll(s.Attrs)...)
	}},
	"alignBelow": {kind: KindArming, apply: func(b *constrain.Builder, _ Step) { b.AlignBelow() }},
	"alignAbove": {kind: KindArming, apply: func(b *constrain.Builder, _ Step) { b.AlignAbove() }},
	"alignRight": {kind: KindArming, apply: func(b *constrain.Builder, _ Step) { b.AlignRight() }},
	"alignLeft":  {kind: KindArming, apply: func(b *constrain.Builder, _ Step) { b.AlignLeft() }},

	"relate": {kind: KindModifier, relation: true, apply: func(b *constrain.Builder, s Step) {
		rel, _ := constrain.ParseRelation(s.Relation)
		b.Relate(rel)
	}},
	"canGrow":   {kind: KindModifier, apply: func(b *constrain.Builder, _ Step) { b.CanGrow() }},
	"canShrink": {kind: KindModifier, apply: func(b *constrain.Builder, _ Step) { b.CanShrink() }},
	"scale":     {kind: KindModifier, values: needValue, apply: func(b *constrain.Builder, s Step) { b.Scale(*s.Value) }},
	"offset":    {kind: KindModifier, values: needValue, apply: func(b *constrain.Builder, s Step) { b.Offset(*s.Value) }},
	"overrideSubject": {kind: KindModifier, attrs: 1, apply: func(b *constrain.Builder, s Step) {
		b.OverrideSubject(constrain.Lookup(s.Attrs[0]))
	}},
	"overrideCounterpart": {kind: KindModifier, attrs: 1, apply: func(b *constrain.Builder, s Step) {
		b.OverrideCounterpart(constrain.Lookup(s.Attrs[0]))
	}},

	"alignAll":             {kind: KindComposition, apply: func(b *constrain.Builder, _ Step) { b.AlignAll() }},
	"squareRestrictHeight": {kind: KindComposition, apply: func(b *constrain.Builder, _ Step) { b.SquareRestrictHeight() }},
	"squareRestrictWidth":  {kind: KindComposition, apply: func(b *constrain.Builder, _ Step) { b.SquareRestrictWidth() }},
	"squareStatic": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.SquareStatic(*s.Value)
	}},
	"horizontalLineStatic": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.HorizontalLineStatic(*s.Value)
	}},
	"horizontalLineRelative": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.HorizontalLineRelative(*s.Value)
	}},
	"verticalLineStatic": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.VerticalLineStatic(*s.Value)
	}},
	"verticalLineRelative": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.VerticalLineRelative(*s.Value)
	}},
	"rectangleStatic": {kind: KindComposition, values: 2, apply: func(b *constrain.Builder, s Step) {
		b.RectangleStatic(s.Values[0], s.Values[1])
	}},
	"rectangleRelative": {kind: KindComposition, values: 2, apply: func(b *constrain.Builder, s Step) {
		b.RectangleRelative(s.Values[0], s.Values[1])
	}},
	"insetStatic": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.InsetStatic(*s.Value)
	}},
	"insetRelative": {kind: KindComposition, values: needValue, apply: func(b *constrain.Builder, s Step) {
		b.InsetRelative(*s.Value)
	}},
	// values: top, leading, bottom, trailing
	"insetEdges": {kind: KindComposition, values: 4, apply: func(b *constrain.Builder, s Step) {
		b.InsetEdges(constrain.Insets{Top: s.Values[0], Leading: s.Values[1], Bottom: s.Values[2], Trailing: s.Values[3]})
	}},
}

// KindOf reports the kind of a step op.
func KindOf(op string) (Kind, bool) {
	if constrain.Lookup(op).IsValid() {
		return KindAttribute, true
	}
	entry, ok := steps[op]
	return entry.kind, ok
}

// attributeStep arms an attribute: Fix with a value, Set without.
func attributeStep(attr constrain.Attribute) stepFunc {
	return func(b *constrain.Builder, s Step) {
		if s.Value != nil {
			b.Fix(attr, *s.Value)
			return
		}
		b.Set(attr)
	}
}

// Ops returns every op name a step accepts, sorted: the attribute names
// followed by the named steps.
func Ops() []string {
	var attrs []string
	for _, a := range constrain.Attributes() {
		attrs = append(attrs, a.String())
	}
	named := make([]string, 0, len(steps))
	for name := range steps {
		named = append(named, name)
	}
	sort.Strings(named)
	return append(attrs, named...)
}

// resolve validates s and returns the call it stands for.
func resolve(s Step) (stepFunc, error) {
	if attr := constrain.Lookup(s.Op); attr.IsValid() {
		if len(s.Values) > 0 || len(s.Attrs) > 0 {
			return nil, fmt.Errorf("attribute step %q takes only an optional value", s.Op)
		}
		return attributeStep(attr), nil
	}

	entry, ok := steps[s.Op]
	if !ok {
		return nil, fmt.Errorf("unknown op %q", s.Op)
	}

	switch {
	case entry.values == needValue && s.Value == nil:
		return nil, fmt.Errorf("op %q needs a value", s.Op)
	case entry.values > 0 && len(s.Values) != entry.values:
		return nil, fmt.Errorf("op %q needs %d values, got %d", s.Op, entry.values, len(s.Values))
	case entry.attrs == -1 && len(s.Attrs) == 0:
		return nil, fmt.Errorf("op %q needs at least one attribute", s.Op)
	case entry.attrs > 0 && len(s.Attrs) != entry.attrs:
		return nil, fmt.Errorf("op %q needs %d attributes, got %d", s.Op, entry.attrs, len(s.Attrs))
	case entry.relation && s.Relation == "":
		return nil, fmt.Errorf("op %q needs a relation", s.Op)
	case entry.values != needValue && s.Value != nil:
		return nil, fmt.Errorf("op %q takes no value", s.Op)
	case entry.values <= 0 && len(s.Values) > 0:
		return nil, fmt.Errorf("op %q takes no values", s.Op)
	case entry.attrs == 0 && len(s.Attrs) > 0:
		return nil, fmt.Errorf("op %q takes no attributes", s.Op)
	case !entry.relation && s.Relation != "":
		return nil, fmt.Errorf("op %q takes no relation", s.Op)
	}
	if i := slices.IndexFunc(s.Attrs, func(name string) bool { return !constrain.Lookup(name).IsValid() }); i >= 0 {
		return nil, fmt.Errorf("op %q: unknown attribute %q", s.Op, s.Attrs[i])
	}
	if s.Op == "relate" {
		if _, ok := constrain.ParseRelation(s.Relation); !ok {
			return nil, fmt.Errorf("op %q: unknown relation %q", s.Op, s.Relation)
		}
	}
	return entry.apply, nil
}

func lookupAll(names []string) []constrain.Attribute {
	out := make([]constrain.Attribute, len(names))
	for i, name := range names {
		out[i] = constrain.Lookup(name)
	}
	return out
}
