package constrain

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is a node in a UI hierarchy that can own installed constraints.
// Items are compared by identity, so implementations should be pointer types.
type Item interface {
	// AddConstraint installs c on the receiver. An error means the layout
	// engine refused the constraint; it is returned to the caller unchanged.
	AddConstraint(c Constraint) error
}

// Nested is implemented by items that can report their container.
// Builders use it to pick the owning container when none is given.
type Nested interface {
	// Owner returns the item's container, or nil for a root.
	Owner() Item
}

// Constraint is one linear relation between two item attributes:
//
//	Subject.SubjectAttribute <Relation> Multiplier * Counterpart.CounterpartAttribute + Constant
//
// A constraint with a nil Counterpart pins the subject attribute to Constant,
// and its CounterpartAttribute is NotAnAttribute.
type Constraint struct {
	Subject              Item
	SubjectAttribute     Attribute
	Relation             Relation
	Counterpart          Item
	CounterpartAttribute Attribute
	Multiplier           float64
	Constant             float64

	// ID tags the constraint with its call site and a description of the
	// chain that produced it.
	ID string
}

// IsConstant reports whether the constraint has no counterpart.
func (c Constraint) IsConstant() bool {
	return c.Counterpart == nil
}

// String renders the constraint as an equation, e.g.
// "card.top == root.bottom * 1 + 8".
func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(itemName(c.Subject))
	b.WriteByte('.')
	b.WriteString(c.SubjectAttribute.String())
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')
	if c.IsConstant() {
		b.WriteString(formatFloat(c.Constant))
		return b.String()
	}
	b.WriteString(itemName(c.Counterpart))
	b.WriteByte('.')
	b.WriteString(c.CounterpartAttribute.String())
	b.WriteString(" * ")
	b.WriteString(formatFloat(c.Multiplier))
	b.WriteString(" + ")
	b.WriteString(formatFloat(c.Constant))
	return b.String()
}

func itemName(it Item) string {
	if it == nil {
		return "nil"
	}
	if s, ok := it.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", it)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
