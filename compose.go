package constrain

// Compositions are chains of the primitive builder calls. Each one emits
// everything it arms, so the builder is Idle when it returns.

// Insets holds one offset per edge for InsetEdges.
type Insets struct {
	Top, Leading, Bottom, Trailing float64
}

// SquareRestrictHeight makes the subject's height equal its counterpart's width.
func (b *Builder) SquareRestrictHeight() *Builder {
	return b.Link(Height, Width).Apply()
}

// SquareRestrictWidth makes the subject's width equal its counterpart's height.
func (b *Builder) SquareRestrictWidth() *Builder {
	return b.Link(Width, Height).Apply()
}

// SquareStatic pins both dimensions to side.
func (b *Builder) SquareStatic(side float64) *Builder {
	return b.Height(side).Width(side).Apply()
}

// HorizontalLineStatic pins the width to length and the height to 1.
func (b *Builder) HorizontalLineStatic(length float64) *Builder {
	return b.Width(length).Height(1).Apply()
}

// HorizontalLineRelative scales the counterpart's width by multiplier and
// pins the height to 1.
func (b *Builder) HorizontalLineRelative(multiplier float64) *Builder {
	return b.Set(Width).Scale(multiplier).Height(1).Apply()
}

// VerticalLineStatic pins the height to length and the width to 1.
func (b *Builder) VerticalLineStatic(length float64) *Builder {
	return b.Height(length).Width(1).Apply()
}

// VerticalLineRelative scales the counterpart's height by multiplier and
// pins the width to 1.
func (b *Builder) VerticalLineRelative(multiplier float64) *Builder {
	return b.Set(Height).Scale(multiplier).Width(1).Apply()
}

// RectangleStatic pins the height and the width.
func (b *Builder) RectangleStatic(height, width float64) *Builder {
	return b.Height(height).Width(width).Apply()
}

// RectangleRelative scales the counterpart's height and width independently.
func (b *Builder) RectangleRelative(height, width float64) *Builder {
	return b.Set(Height).Scale(height).Set(Width).Scale(width).Apply()
}

// InsetStatic relates each edge to the counterpart's matching edge with the
// same constant.
func (b *Builder) InsetStatic(constant float64) *Builder {
	return b.Insets(func(b *Builder) { b.Offset(constant) })
}

// InsetRelative relates each edge to the counterpart's matching edge with the
// same multiplier.
func (b *Builder) InsetRelative(multiplier float64) *Builder {
	return b.Insets(func(b *Builder) { b.Scale(multiplier) })
}

// InsetEdges relates each edge to the counterpart's matching edge with its own
// constant, in leading, trailing, top, bottom order.
func (b *Builder) InsetEdges(in Insets) *Builder {
	return b.Set(Leading).Offset(in.Leading).
		Set(Trailing).Offset(in.Trailing).
		Set(Top).Offset(in.Top).
		Set(Bottom).Offset(in.Bottom).
		Apply()
}

// AlignAll equates height, width, centerX and centerY, in that order.
func (b *Builder) AlignAll() *Builder {
	return b.Align(Height, Width, CenterX, CenterY).Apply()
}
