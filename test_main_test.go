package constrain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// node is a minimal Item that records what it is asked to install.
// Nodes without a parent behave like opaque items with no containment.
type node struct {
	name      string
	parent    *node
	installed []Constraint
	reject    error
}

func newNode(name string) *node {
	return &node{name: name}
}

func (n *node) AddConstraint(c Constraint) error {
	if n.reject != nil {
		return n.reject
	}
	n.installed = append(n.installed, c)
	return nil
}

func (n *node) Owner() Item {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) String() string {
	return n.name
}

// testLocation is the call site stamped on every builder in these tests.
var testLocation = Location{File: "/src/app/view.go", Function: "app.(*View).layout", Line: 7}

const testTag = "::view::(*View).layout::7::"

func newTestBuilder(subject Item, opts ...Option) *Builder {
	return New(subject, append([]Option{WithLocation(testLocation)}, opts...)...)
}

// itemIdentity compares items by identity instead of by value.
var itemIdentity = cmp.Comparer(func(a, b Item) bool { return a == b })
