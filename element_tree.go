package constrain

// --- Element's own API ---

// AddChild appends children to this Element.
// Notifies root's onChildAdded callback for each child.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
		e.notifyChildAdded(child)
	}
}

// notifyChildAdded walks up to root and calls its callback.
func (e *Element) notifyChildAdded(child *Element) {
	if root := e.Root(); root.onChildAdded != nil {
		root.onChildAdded(child)
	}
}

// SetOnChildAdded sets the callback for when any descendant is added.
func (e *Element) SetOnChildAdded(fn func(*Element)) {
	e.onChildAdded = fn
}

// RemoveChild removes a child from this Element.
// Constraints on this element and its ancestors that reference the removed
// subtree are uninstalled with it.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			for a := e; a != nil; a = a.parent {
				a.pruneConstraints(child)
			}
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for len(e.children) > 0 {
		e.RemoveChild(e.children[len(e.children)-1])
	}
}

// pruneConstraints drops constraints that reference an element of subtree.
func (e *Element) pruneConstraints(subtree *Element) {
	kept := e.constraints[:0]
	for _, c := range e.constraints {
		if refersTo(subtree, c.Subject) || refersTo(subtree, c.Counterpart) {
			continue
		}
		kept = append(kept, c)
	}
	clear(e.constraints[len(kept):])
	e.constraints = kept
}

func refersTo(subtree *Element, it Item) bool {
	el, ok := it.(*Element)
	return ok && subtree.Contains(el)
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root returns the topmost ancestor, or e itself.
func (e *Element) Root() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Walk calls fn for e and every descendant, depth first, parents before
// children.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.children {
		child.Walk(fn)
	}
}

// Find returns the first element named name in e's subtree, or nil.
func (e *Element) Find(name string) *Element {
	if e.name == name {
		return e
	}
	for _, child := range e.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
