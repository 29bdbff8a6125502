package constrain

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithChildren appends children to the element.
func WithChildren(children ...*Element) ElementOption {
	return func(e *Element) {
		e.AddChild(children...)
	}
}

// WithOnChildAdded sets the callback for when any descendant is added.
func WithOnChildAdded(fn func(*Element)) ElementOption {
	return func(e *Element) {
		e.onChildAdded = fn
	}
}

// WithOnConstraintAdded sets the callback for when a constraint is installed
// anywhere in the element's tree.
func WithOnConstraintAdded(fn func(*Element, Constraint)) ElementOption {
	return func(e *Element) {
		e.onConstraintAdded = fn
	}
}
