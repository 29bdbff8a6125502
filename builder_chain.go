package constrain

// --- Arming calls ---

// Set arms a constraint equating attr on the subject and the counterpart.
// NotAnAttribute arms nothing, but the previously armed constraint is still
// emitted.
func (b *Builder) Set(attr Attribute) *Builder {
	b.finalize()
	if !attr.IsValid() {
		return b
	}
	b.subjectAttr = attr
	b.counterpartAttr = attr
	b.description += Describe(attr)
	b.arm()
	return b
}

// Named is Set with the attribute given by its canonical name. Unknown names
// and the terminal names ("done", "apply", "__") arm nothing.
func (b *Builder) Named(name string) *Builder {
	return b.Set(Lookup(name))
}

// Fix arms a constant constraint: the subject's attr equals value, with no
// counterpart item.
func (b *Builder) Fix(attr Attribute, value float64) *Builder {
	b.finalize()
	if !attr.IsValid() {
		return b
	}
	b.counterpart = nil
	b.subjectAttr = attr
	b.counterpartAttr = NotAnAttribute
	b.description += Describe(attr)
	b.Offset(value)
	b.arm()
	return b
}

// Link arms a constraint between two different attributes, e.g. the
// subject's top against the counterpart's bottom.
func (b *Builder) Link(subjectAttr, counterpartAttr Attribute) *Builder {
	b.finalize()
	b.subjectAttr = subjectAttr
	b.counterpartAttr = counterpartAttr
	b.description += Describe(counterpartAttr) + "{" + Describe(subjectAttr) + "}"
	b.arm()
	return b
}

// Align arms one equality per attribute, in order. The last one stays armed.
func (b *Builder) Align(attrs ...Attribute) *Builder {
	for _, attr := range attrs {
		b.Set(attr)
	}
	return b
}

// Each arms one equality per attribute, lets fn modify it, and emits it.
// Invalid attributes are skipped without calling fn. The builder is Idle
// when Each returns.
func (b *Builder) Each(attrs []Attribute, fn func(*Builder)) *Builder {
	for _, attr := range attrs {
		if !attr.IsValid() {
			continue
		}
		b.Set(attr)
		if fn != nil {
			fn(b)
		}
		b.Apply()
	}
	return b.Apply()
}

// insetAttributes are the edges Insets walks, in order.
var insetAttributes = []Attribute{Leading, Trailing, Top, Bottom}

// Insets is Each over the leading, trailing, top and bottom edges.
func (b *Builder) Insets(fn func(*Builder)) *Builder {
	return b.Each(insetAttributes, fn)
}

// --- Modifiers ---
// Modifiers change the pending constraint without emitting or arming.

// Relate sets the relation of the pending constraint.
func (b *Builder) Relate(rel Relation) *Builder {
	b.relation = rel
	return b
}

// CanGrow lets the subject attribute exceed its target (>=).
func (b *Builder) CanGrow() *Builder {
	return b.Relate(GreaterOrEqual)
}

// CanShrink lets the subject attribute fall below its target (<=).
func (b *Builder) CanShrink() *Builder {
	return b.Relate(LessOrEqual)
}

// Scale sets the multiplier of the pending constraint.
func (b *Builder) Scale(multiplier float64) *Builder {
	b.multiplier = multiplier
	b.description += "[Relative:" + formatFloat(multiplier) + "]"
	return b
}

// Offset sets the constant of the pending constraint.
func (b *Builder) Offset(constant float64) *Builder {
	b.constant = constant
	b.description += "[Static:" + formatFloat(constant) + "]"
	return b
}

// OverrideSubject replaces the subject attribute of the pending constraint.
func (b *Builder) OverrideSubject(attr Attribute) *Builder {
	b.subjectAttr = attr
	b.description += Describe(attr)
	return b
}

// OverrideCounterpart replaces the counterpart attribute of the pending
// constraint.
func (b *Builder) OverrideCounterpart(attr Attribute) *Builder {
	b.counterpartAttr = attr
	b.description += Describe(attr)
	return b
}

// --- Shorthands ---

// Top pins the subject's top to value.
func (b *Builder) Top(value float64) *Builder { return b.Fix(Top, value) }

// Bottom pins the subject's bottom to value.
func (b *Builder) Bottom(value float64) *Builder { return b.Fix(Bottom, value) }

// Leading pins the subject's leading edge to value.
func (b *Builder) Leading(value float64) *Builder { return b.Fix(Leading, value) }

// Trailing pins the subject's trailing edge to value.
func (b *Builder) Trailing(value float64) *Builder { return b.Fix(Trailing, value) }

// Width pins the subject's width to value.
func (b *Builder) Width(value float64) *Builder { return b.Fix(Width, value) }

// Height pins the subject's height to value.
func (b *Builder) Height(value float64) *Builder { return b.Fix(Height, value) }

// AlignBelow places the subject's top at the counterpart's bottom.
func (b *Builder) AlignBelow() *Builder { return b.Link(Top, Bottom) }

// AlignAbove places the subject's bottom at the counterpart's top.
func (b *Builder) AlignAbove() *Builder { return b.Link(Bottom, Top) }

// AlignRight places the subject's leading edge at the counterpart's trailing edge.
func (b *Builder) AlignRight() *Builder { return b.Link(Leading, Trailing) }

// AlignLeft places the subject's trailing edge at the counterpart's leading edge.
func (b *Builder) AlignLeft() *Builder { return b.Link(Trailing, Leading) }
