package constrain

import "github.com/google/uuid"

var (
	_ Item   = (*Element)(nil)
	_ Nested = (*Element)(nil)
)

// Element is a named node in a UI hierarchy that owns the constraints
// installed on it. It is the reference Item: AddConstraint accepts only
// constraints whose items live in the element's subtree.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	name string

	// Constraints installed on this element, in installation order
	constraints []Constraint

	// Tree notification
	onChildAdded      func(*Element)
	onConstraintAdded func(*Element, Constraint)
}

// NewElement creates a detached element. An empty name is replaced by a
// short generated id.
func NewElement(name string, opts ...ElementOption) *Element {
	if name == "" {
		name = uuid.NewString()[:8]
	}
	e := &Element{name: name}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the element's name.
func (e *Element) Name() string {
	return e.name
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.name
}

// Owner implements Nested.
func (e *Element) Owner() Item {
	if e == nil || e.parent == nil {
		return nil
	}
	return e.parent
}

// AddConstraint implements Item. Both items of c must be e or one of its
// descendants; anything else is rejected with ErrCodeEngineRejected.
func (e *Element) AddConstraint(c Constraint) error {
	if e == nil {
		return NewError(ErrCodeEngineRejected, "container is a nil element")
	}
	if err := e.checkItem("subject", c.Subject); err != nil {
		return err
	}
	if c.Counterpart != nil {
		if err := e.checkItem("counterpart", c.Counterpart); err != nil {
			return err
		}
	}
	e.constraints = append(e.constraints, c)
	e.notifyConstraintAdded(c)
	return nil
}

func (e *Element) checkItem(role string, it Item) error {
	el, ok := it.(*Element)
	if !ok || el == nil {
		return NewError(ErrCodeEngineRejected, "%s %T is not an element", role, it)
	}
	if !e.Contains(el) {
		return NewError(ErrCodeEngineRejected, "%s %q is not inside container %q", role, el.name, e.name)
	}
	return nil
}

// Constraints returns the constraints installed on this element.
func (e *Element) Constraints() []Constraint {
	return e.constraints
}

// RemoveConstraint removes the first installed constraint with the given ID.
// Returns true if one was found.
func (e *Element) RemoveConstraint(id string) bool {
	for i, c := range e.constraints {
		if c.ID == id {
			e.constraints = append(e.constraints[:i], e.constraints[i+1:]...)
			return true
		}
	}
	return false
}

// SetOnConstraintAdded sets the callback for when a constraint is installed
// on this element or any descendant. Only the root's callback fires.
func (e *Element) SetOnConstraintAdded(fn func(*Element, Constraint)) {
	e.onConstraintAdded = fn
}

func (e *Element) notifyConstraintAdded(c Constraint) {
	if root := e.Root(); root.onConstraintAdded != nil {
		root.onConstraintAdded(e, c)
	}
}
